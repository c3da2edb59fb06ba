package exporter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// New returns the exporter for format ("txt" or "docx").
func New(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "", "txt":
		return textExporter{}, nil
	case "docx":
		return docxExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// PathFor swaps the extension of path to match format.
func PathFor(path, format string) string {
	ext := ".txt"
	if strings.ToLower(format) == "docx" {
		ext = ".docx"
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
