package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"navigator/internal/creds"
)

var credsCmd = &cobra.Command{
	Use:   "creds",
	Short: "Manage stored Navigate credentials",
}

var credsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Prompt for and store Navigate credentials in the OS keyring",
	RunE:  runCredsSet,
}

var credsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored Navigate username",
	RunE:  runCredsShow,
}

func init() {
	credsCmd.AddCommand(credsSetCmd)
	credsCmd.AddCommand(credsShowCmd)
}

func runCredsSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Print("Enter Navigate username: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read username: %w", err)
	}
	username := strings.TrimSpace(line)

	fmt.Print("Enter Navigate API key: ")
	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read api key: %w", err)
	}

	c := creds.Credentials{Username: username, APIKey: strings.TrimSpace(string(keyBytes))}
	if err := creds.Save(cfg.Service, c); err != nil {
		return err
	}
	fmt.Println("Credentials stored.")
	return nil
}

func runCredsShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := creds.Load(cfg.Service)
	if err != nil {
		return err
	}
	// The API key is never printed.
	fmt.Printf("service:  %s\nusername: %s\n", cfg.Service, c.Username)
	return nil
}
