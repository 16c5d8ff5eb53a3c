package artifact

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skyroute/route-analytics/internal/domain"
)

// Table is a loaded artifact: its header and data rows, in file order.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Reader loads previously written artifacts for the presentation layer.
type Reader struct {
	processedDir string
	docsDir      string
}

// NewReader creates a Reader over the pipeline's output directories.
func NewReader(processedDir, docsDir string) *Reader {
	return &Reader{
		processedDir: processedDir,
		docsDir:      docsDir,
	}
}

// Load reads the named artifact file. A view depending on an artifact that
// was never produced is a failed precondition: the wrapped error is
// domain.ErrMissingArtifact and no partial table is returned.
func (r *Reader) Load(name string) (*Table, error) {
	dir := r.processedDir
	if name == IssueLogFile {
		dir = r.docsDir
	}
	path := filepath.Join(dir, name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run the pipeline first)", domain.ErrMissingArtifact, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedArtifact, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: no header row", domain.ErrMalformedArtifact, path)
	}

	return &Table{Columns: records[0], Rows: records[1:]}, nil
}
