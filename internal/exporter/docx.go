package exporter

import (
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
	"github.com/nguyentantai21042004/briefcast/internal/history"
)

const (
	fontName = "Malgun Gothic"
	fontSize = 12
)

type docxExporter struct{}

// Export writes the same contents as the text export as a Word document:
// anchor lines as paragraphs, one bold heading per entry, summary sentences
// as separate paragraphs.
func (docxExporter) Export(path, intro string, entries []history.Entry, closing string) (Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{}, apperr.ExportIO("resolve export path", err)
	}

	err = writeAtomic(abs, func(tmp string) error {
		doc, err := godocx.NewDocument()
		if err != nil {
			return err
		}

		addParagraphs(doc, intro)

		for _, e := range entries {
			doc.AddParagraph("")
			addStyledRun(doc.AddParagraph(""), e.Title, true, 14)
			addStyledRun(doc.AddParagraph(""), "Timestamp: "+e.Timestamp, false, 10)
			addParagraphs(doc, e.Body)
		}

		doc.AddParagraph("")
		addParagraphs(doc, closing)

		return doc.SaveTo(tmp)
	})
	if err != nil {
		return Result{}, apperr.ExportIO("export history docx", err)
	}
	return Result{Path: abs}, nil
}

// addParagraphs writes one paragraph per non-blank line of text.
func addParagraphs(doc *docx.RootDoc, text string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		addStyledRun(doc.AddParagraph(""), trimmed, false, fontSize)
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
