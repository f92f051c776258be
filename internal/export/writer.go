package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ArtifactName returns the deterministic artifact filename for a range.
func ArtifactName(r DateRange) string {
	return fmt.Sprintf("apmts_%s_%s.csv", r.Start.Format(fileLayout), r.End.Format(fileLayout))
}

// Write serializes rows to the artifact for r under baseDir, creating baseDir
// if needed. The path depends only on r, so re-running a range overwrites its
// artifact in place. Callers skip the call entirely when rows is empty, which
// keeps the invariant that an artifact exists only for days that had data.
func Write(logger *slog.Logger, rows []FlatRow, r DateRange, baseDir string) (string, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", fmt.Errorf("export: create artifact dir: %w", err)
	}

	path := filepath.Join(baseDir, ArtifactName(r))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create artifact: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return "", fmt.Errorf("export: write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.record()); err != nil {
			f.Close()
			return "", fmt.Errorf("export: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("export: flush artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: close artifact: %w", err)
	}

	logger.Info("artifact written", "path", path, "rows", len(rows))
	return path, nil
}
