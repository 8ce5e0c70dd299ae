// Package extract implements the Extractor interface.
// It isolates the main content of an HTML page by:
//  1. Removing noise elements (navigation, scripts, forms, ...)
//  2. Picking the first content container matched by the selector list
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction.
// Images are kept since the document model can carry them.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// DefaultSelectors are the content containers tried in order.
var DefaultSelectors = []string{"main", "article", "body"}

// HTMLExtractor strips noise from HTML and returns the main content fragment.
type HTMLExtractor struct {
	selectors []string
}

// New creates an HTMLExtractor trying selectors in order. Without
// selectors it uses DefaultSelectors.
func New(selectors ...string) *HTMLExtractor {
	if len(selectors) == 0 {
		selectors = DefaultSelectors
	}
	return &HTMLExtractor{selectors: selectors}
}

// Extract takes raw HTML and returns a cleaned HTML fragment containing
// only the main content.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, sel := range e.selectors {
		if found := doc.Find(sel); found.Length() > 0 {
			content = found.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container matches %s", strings.Join(e.selectors, ", "))
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}
