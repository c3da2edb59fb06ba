package exporter

import "github.com/nguyentantai21042004/briefcast/internal/history"

// Exporter writes the anchor lines and the saved history to a file.
type Exporter interface {
	Export(path, intro string, entries []history.Entry, closing string) (Result, error)
}

// Result reports where the export landed.
type Result struct {
	Path string `json:"path"`
}
