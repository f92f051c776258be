package creds

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// DefaultService is the keyring service name credentials are stored under.
const DefaultService = "NavigateService"

const (
	envUsername = "NAVIGATE_USERNAME"
	envAPIKey   = "NAVIGATE_API_KEY"

	usernameKey = "username"
	apiKeyKey   = "api_key"
)

// ErrNotFound is returned when no credentials are stored for the service.
var ErrNotFound = errors.New("creds: navigate credentials not found")

// Credentials is a Navigate username and API key pair.
type Credentials struct {
	Username string
	APIKey   string
}

// Load returns the credentials for service (DefaultService when empty). The
// NAVIGATE_USERNAME and NAVIGATE_API_KEY environment variables take precedence
// over the keyring, so non-interactive runs need no keyring at all.
func Load(service string) (Credentials, error) {
	if service == "" {
		service = DefaultService
	}
	if u, k := os.Getenv(envUsername), os.Getenv(envAPIKey); u != "" && k != "" {
		return Credentials{Username: u, APIKey: k}, nil
	}

	username, err := keyring.Get(service, usernameKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return Credentials{}, ErrNotFound
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("creds: read username: %w", err)
	}

	apiKey, err := keyring.Get(service, apiKeyKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return Credentials{}, ErrNotFound
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("creds: read api key: %w", err)
	}

	return Credentials{Username: username, APIKey: apiKey}, nil
}

// Save stores the credentials for service, replacing any existing values.
func Save(service string, c Credentials) error {
	if service == "" {
		service = DefaultService
	}
	if c.Username == "" || c.APIKey == "" {
		return fmt.Errorf("creds: username and api key are both required")
	}
	if err := keyring.Set(service, usernameKey, c.Username); err != nil {
		return fmt.Errorf("creds: store username: %w", err)
	}
	if err := keyring.Set(service, apiKeyKey, c.APIKey); err != nil {
		return fmt.Errorf("creds: store api key: %w", err)
	}
	return nil
}
