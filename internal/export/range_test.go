package export

import (
	"testing"
	"time"
)

func TestParseRange(t *testing.T) {
	r, err := ParseRange("03/01/2024", "03/03/2024")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if r.Start.Month() != time.March || r.Start.Day() != 1 || r.Start.Year() != 2024 {
		t.Errorf("unexpected start: %v", r.Start)
	}
	if !r.Start.Before(r.End) {
		t.Errorf("start not before end: %v", r)
	}
}

func TestParseRange_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		begin, end string
	}{
		{"bad begin format", "2024-03-01", "03/03/2024"},
		{"bad end format", "03/01/2024", "March 3"},
		{"equal dates", "03/01/2024", "03/01/2024"},
		{"reversed dates", "03/03/2024", "03/01/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRange(tt.begin, tt.end); err == nil {
				t.Errorf("ParseRange(%q, %q): expected error", tt.begin, tt.end)
			}
		})
	}
}

// TestPartition_Coverage verifies the partitions tile [Start, End) with no
// gaps and no overlap, extending at most one day past End.
func TestPartition_Coverage(t *testing.T) {
	day := 24 * time.Hour
	start := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		r        DateRange
		wantDays int
	}{
		{"single day", DateRange{start, start.AddDate(0, 0, 1)}, 1},
		{"across leap day", DateRange{start, start.AddDate(0, 0, 4)}, 4},
		{"partial trailing day", DateRange{start, start.Add(36 * time.Hour)}, 2},
		{"sub-day range", DateRange{start, start.Add(6 * time.Hour)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := tt.r.Partition()
			if len(parts) != tt.wantDays {
				t.Fatalf("got %d partitions, want %d", len(parts), tt.wantDays)
			}
			cursor := tt.r.Start
			for i, p := range parts {
				if !p.Start.Equal(cursor) {
					t.Errorf("partition %d starts at %v, want %v", i, p.Start, cursor)
				}
				if got := p.End.Sub(p.Start); got != day {
					t.Errorf("partition %d spans %v, want 24h", i, got)
				}
				cursor = p.End
			}
			last := parts[len(parts)-1]
			if last.End.Before(tt.r.End) {
				t.Errorf("partitions stop at %v, before range end %v", last.End, tt.r.End)
			}
			if overrun := last.End.Sub(tt.r.End); overrun >= day {
				t.Errorf("last partition overruns range end by %v", overrun)
			}
		})
	}
}
