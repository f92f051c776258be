package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
}

var rootCmd = &cobra.Command{
	Use:   "navigator",
	Short: "Bulk data connector for the EAB Navigate campus API",
	Long: "Navigator pulls advising records (appointments, alerts, visits, ...)\n" +
		"from the Navigate campus API, exports appointments as daily CSV files,\n" +
		"and moves export files over SFTP.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "navigate.yaml", "Path to config file")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(credsCmd)
	rootCmd.AddCommand(sftpCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
