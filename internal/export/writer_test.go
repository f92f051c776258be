package export

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustRange(t *testing.T, begin, end string) DateRange {
	t.Helper()
	r, err := ParseRange(begin, end)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestWrite_DeterministicFilename(t *testing.T) {
	dir := t.TempDir()
	r := mustRange(t, "03/01/2024", "03/02/2024")

	path, err := Write(discard(), []FlatRow{{AppointmentID: "1"}}, r, dir)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := filepath.Join(dir, "apmts_03_01_2024_03_02_2024.csv")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestWrite_HeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	r := mustRange(t, "03/01/2024", "03/02/2024")
	rows := []FlatRow{
		{AppointmentID: "1", Location: "Main Hall", IsCancelled: "false", AttendeesPrimaryIDs: "A,B"},
		{AppointmentID: "2", StartTime: "2024-03-01T10:00:00Z"},
	}

	path, err := Write(discard(), rows, r, dir)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	want := [][]string{
		Header,
		{"1", "Main Hall", "", "", "", "", "", "false", "A,B"},
		{"2", "", "", "", "2024-03-01T10:00:00Z", "", "", "", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("artifact content mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "appointments")
	r := mustRange(t, "03/01/2024", "03/02/2024")

	if _, err := Write(discard(), []FlatRow{{AppointmentID: "1"}}, r, dir); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("base dir not created: %v", err)
	}
}

// TestWrite_OverwritesOnRerun verifies re-running an identical range replaces
// the artifact rather than appending to it.
func TestWrite_OverwritesOnRerun(t *testing.T) {
	dir := t.TempDir()
	r := mustRange(t, "03/01/2024", "03/02/2024")

	first := []FlatRow{{AppointmentID: "old-1"}, {AppointmentID: "old-2"}}
	if _, err := Write(discard(), first, r, dir); err != nil {
		t.Fatal(err)
	}
	second := []FlatRow{{AppointmentID: "new-1"}}
	path, err := Write(discard(), second, r, dir)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected header + 1 row after rerun, got %d lines", len(got))
	}
	if got[1][0] != "new-1" {
		t.Errorf("row = %v, want new-1", got[1])
	}
}
