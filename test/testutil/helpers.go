// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// WriteCSV writes lines as a CSV file under dir and returns the full path.
// Lines are raw CSV text; a trailing newline is appended.
func WriteCSV(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write CSV fixture %s: %v", name, err)
	}
	return path
}

// ReadCSV parses a CSV file into its records, header included.
func ReadCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open CSV %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV %s: %v", path, err)
	}
	return records
}

// ColumnIndex returns the position of name in the header row, failing the
// test when the column is absent.
func ColumnIndex(t *testing.T, header []string, name string) int {
	t.Helper()

	for i, col := range header {
		if col == name {
			return i
		}
	}
	t.Fatalf("Column %q not found in header %v", name, header)
	return -1
}

// MustParseDate parses a YYYY-MM-DD date or fails the test.
func MustParseDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("Failed to parse date %q: %v", value, err)
	}
	return date
}

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }
