package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
	"github.com/nguyentantai21042004/briefcast/internal/history"
)

type textExporter struct{}

// Render produces the UTF-8 export text.
func Render(intro string, entries []history.Entry, closing string) string {
	var sb strings.Builder
	sb.WriteString(intro)
	sb.WriteString("\n\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "Timestamp: %s\nTitle: %s\nSummary: %s\n\n", e.Timestamp, e.Title, e.Body)
	}
	sb.WriteString(closing)
	sb.WriteString("\n")
	return sb.String()
}

func (textExporter) Export(path, intro string, entries []history.Entry, closing string) (Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{}, apperr.ExportIO("resolve export path", err)
	}

	err = writeAtomic(abs, func(tmp string) error {
		return os.WriteFile(tmp, []byte(Render(intro, entries, closing)), 0644)
	})
	if err != nil {
		return Result{}, apperr.ExportIO("export history", err)
	}
	return Result{Path: abs}, nil
}

// writeAtomic lets write fill a temp file next to path, then renames it into
// place so a failed export never leaves a truncated file behind.
func writeAtomic(path string, write func(tmp string) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	f, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	f.Close()
	defer os.Remove(tmp)

	if err := write(tmp); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("move export into place: %w", err)
	}
	return nil
}
