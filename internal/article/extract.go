package article

import (
	"context"
	"errors"
	"html"
	"regexp"
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var (
	reSpaces     = regexp.MustCompile(`[ \t\p{Zs}]+`)
	reBlankLines = regexp.MustCompile(`\n{3,}`)
)

// extract pulls the article body out of a full HTML page.
func (f *implFetcher) extract(ctx context.Context, page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", err
	}

	container := doc.Find(f.opts.Selector).First()
	if container.Length() == 0 {
		if !f.opts.ReadabilityFallback {
			return "", ErrContainerNotFound
		}
		f.logger.Warn(ctx, "Selector %q matched nothing, falling back to readability", f.opts.Selector)
		return extractReadable(page)
	}

	// Photo captions, embedded players and scripts are not part of the story.
	container.Find("script, style, noscript, iframe, figure, .img_desc, .end_photo_org").Remove()
	container.Find("br").ReplaceWithHtml("\n")

	markup, err := container.Html()
	if err != nil {
		return "", err
	}

	text := plainText(markup)
	if text == "" {
		return "", ErrContainerNotFound
	}
	return text, nil
}

func extractReadable(page string) (string, error) {
	parsed, err := readability.FromReader(strings.NewReader(page), nil)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := parsed.RenderText(&buf); err != nil {
		return "", err
	}

	text := normalizeWhitespace(buf.String())
	if text == "" {
		return "", errors.New("readability found no content")
	}
	return text, nil
}

// plainText strips every tag and decodes entities.
func plainText(markup string) string {
	stripped := bluemonday.StrictPolicy().Sanitize(markup)
	return normalizeWhitespace(html.UnescapeString(stripped))
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(reSpaces.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
