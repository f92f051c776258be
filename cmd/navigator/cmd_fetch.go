package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"navigator/internal/navigate"
)

var fetchFlags struct {
	params  []string
	page    int
	perPage int
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <endpoint>",
	Short: "Fetch records from a Navigate endpoint as JSON",
	Long: `Fetch issues a single GET against a v3 endpoint (alerts, users, notes,
reminders, visits, enrollment_attendances, assignments, ...) and prints
the records as JSON.

Usage:
  navigator fetch alerts --param created_after=01/01/2024
  navigator fetch users --page 2 --per-page 100`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	f := fetchCmd.Flags()
	f.StringArrayVar(&fetchFlags.params, "param", nil, "Query parameter as key=value (repeatable)")
	f.IntVar(&fetchFlags.page, "page", 0, "Page number for paginated results")
	f.IntVar(&fetchFlags.perPage, "per-page", 0, "Records per page")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	opts, err := parseParams(fetchFlags.params)
	if err != nil {
		return err
	}
	if fetchFlags.page > 0 {
		opts = append(opts, navigate.WithPage(fetchFlags.page))
	}
	if fetchFlags.perPage > 0 {
		opts = append(opts, navigate.WithPerPage(fetchFlags.perPage))
	}

	records, err := client.Endpoint(cmd.Context(), args[0], opts...)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
