package main

import (
	"fmt"
	"strings"

	"navigator/internal/config"
	"navigator/internal/creds"
	"navigator/internal/logging"
	"navigator/internal/navigate"
)

func loadConfig() (*config.Config, error) {
	return config.Load(rootFlags.configPath)
}

// newClient builds an authenticated Navigate client from stored credentials.
// Missing credentials abort the run before any scheduling starts.
func newClient(cfg *config.Config) (*navigate.Client, error) {
	c, err := creds.Load(cfg.Service)
	if err != nil {
		return nil, fmt.Errorf("%w\n\nRun 'navigator creds set' or set NAVIGATE_USERNAME and NAVIGATE_API_KEY", err)
	}
	return navigate.New(cfg.BaseURL, c.Username, c.APIKey,
		navigate.WithLogger(logging.New("navigate")))
}

// parseParams converts repeated key=value flags into query options.
func parseParams(params []string) ([]navigate.QueryOption, error) {
	var opts []navigate.QueryOption
	for _, p := range params {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q, want key=value", p)
		}
		opts = append(opts, navigate.WithParam(key, value))
	}
	return opts, nil
}
