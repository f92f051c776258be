package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"navigator/internal/export"
	"navigator/internal/logging"
)

var exportFlags struct {
	beginDate   string
	endDate     string
	outDir      string
	concurrency int
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export appointments to daily CSV artifacts",
	Long: `Export splits the requested date range into one-day slices, fetches each
day's appointments with bounded parallelism, and writes one CSV file per
day that had data. A failed day is logged and skipped; the other days
still export.

Usage:
  navigator export --begin_date 03/01/2024 --end_date 03/31/2024`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.beginDate, "begin_date", "", "Begin date in mm/dd/yyyy format (required)")
	f.StringVar(&exportFlags.endDate, "end_date", "", "End date in mm/dd/yyyy format (required)")
	f.StringVarP(&exportFlags.outDir, "out", "o", "", "Artifact directory (default from config)")
	f.IntVar(&exportFlags.concurrency, "concurrency", 0, "Max days fetched in parallel (default from config)")
	exportCmd.MarkFlagRequired("begin_date")
	exportCmd.MarkFlagRequired("end_date")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	overall, err := export.ParseRange(exportFlags.beginDate, exportFlags.endDate)
	if err != nil {
		return err
	}

	// The log sink must be in place before newClient binds its component
	// logger to the default handler.
	if err := logging.InitFile(slog.LevelInfo, "text", cfg.LogFile); err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	outDir := exportFlags.outDir
	if outDir == "" {
		outDir = cfg.DataDir
	}
	concurrency := exportFlags.concurrency
	if concurrency <= 0 {
		concurrency = cfg.Concurrency
	}

	fmt.Printf("Export running. See %s for details.\n", cfg.LogFile)

	pipeline := &export.Pipeline{
		Fetcher: client,
		BaseDir: outDir,
		Logger:  logging.New("export"),
	}
	return pipeline.Run(cmd.Context(), overall, concurrency)
}
