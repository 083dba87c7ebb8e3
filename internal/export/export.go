// Package export renders a solved schedule to its four output formats:
// spreadsheet (xlsx), a Primavera-style interchange text, JSON, and a
// plain-text report. Exporters never mutate the schedule, and given the
// same schedule and a fixed timestamp their output is byte-identical.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/omarzaki/boqplan/internal/domain"
	"github.com/omarzaki/boqplan/internal/schedule"
)

// Format selects an output renderer.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXER  Format = "xer"
	FormatJSON Format = "json"
	FormatText Format = "txt"
)

// ParseFormat maps a user-supplied format name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatXLSX, FormatXER, FormatJSON, FormatText:
		return Format(s), nil
	case "spreadsheet":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want xlsx, xer, json, or txt)", s)
	}
}

// Options tunes an export. A zero Timestamp means time.Now(); snapshot
// tests pin it to keep output reproducible.
type Options struct {
	Timestamp   time.Time
	ProjectName string
}

func (o Options) timestamp() time.Time {
	if o.Timestamp.IsZero() {
		return time.Now()
	}
	return o.Timestamp
}

func (o Options) projectName(s *schedule.Schedule) string {
	if o.ProjectName != "" {
		return o.ProjectName
	}
	return s.Description
}

// Export writes the schedule to w in the requested format.
func Export(s *schedule.Schedule, format Format, opts Options, w io.Writer) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(s, opts, w)
	case FormatXER:
		return WriteXER(s, opts, w)
	case FormatJSON:
		return WriteJSON(s, opts, w)
	case FormatText:
		return WriteText(s, opts, w)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// ExportFile writes the schedule to path transactionally: the bytes go to
// a temporary file in the same directory which is renamed over the target
// only on success, so a failed export leaves no partial file behind.
func ExportFile(s *schedule.Schedule, format Format, opts Options, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	tmpName := tmp.Name()

	if err := Export(s, format, opts, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	return nil
}
