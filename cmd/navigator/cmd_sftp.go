package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"navigator/internal/config"
	"navigator/internal/transfer"
)

var sftpCmd = &cobra.Command{
	Use:   "sftp",
	Short: "Transfer files against the Navigate SFTP endpoint",
}

var sftpLsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List files in a remote directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSftpLs,
}

var sftpGetCmd = &cobra.Command{
	Use:   "get <remote> <local>",
	Short: "Download a file from the SFTP endpoint",
	Args:  cobra.ExactArgs(2),
	RunE:  runSftpGet,
}

var sftpPutCmd = &cobra.Command{
	Use:   "put <local> <remote>",
	Short: "Upload a file to the SFTP endpoint",
	Args:  cobra.ExactArgs(2),
	RunE:  runSftpPut,
}

func init() {
	sftpCmd.AddCommand(sftpLsCmd)
	sftpCmd.AddCommand(sftpGetCmd)
	sftpCmd.AddCommand(sftpPutCmd)
}

func connectSFTP() (*transfer.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := validateSFTP(cfg.SFTP); err != nil {
		return nil, err
	}
	return transfer.Connect(cfg.SFTP.Host, cfg.SFTP.User, cfg.SFTP.KeyFile)
}

func validateSFTP(s config.SFTPConfig) error {
	if s.Host == "" || s.User == "" || s.KeyFile == "" {
		return fmt.Errorf("sftp host, user, and key_file must be set in %s", rootFlags.configPath)
	}
	return nil
}

func runSftpLs(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	client, err := connectSFTP()
	if err != nil {
		return err
	}
	defer client.Close()

	names, err := client.List(dir)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runSftpGet(cmd *cobra.Command, args []string) error {
	client, err := connectSFTP()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Download(args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("Downloaded %s to %s\n", args[0], args[1])
	return nil
}

func runSftpPut(cmd *cobra.Command, args []string) error {
	client, err := connectSFTP()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Upload(args[0], args[1]); err != nil {
		return err
	}
	fmt.Printf("Uploaded %s to %s\n", args[0], args[1])
	return nil
}
