// Package normalize implements the Normalizer interface.
// It converts extracted HTML into Markdown so HTML sources can flow through
// the same tokenizer as Markdown sources.
package normalize

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct {
	domain string
}

// Option configures a MarkdownNormalizer.
type Option func(*MarkdownNormalizer)

// WithDomain resolves relative link and image URLs against domain
// (e.g. "https://example.com").
func WithDomain(domain string) Option {
	return func(n *MarkdownNormalizer) { n.domain = domain }
}

// New creates a MarkdownNormalizer.
func New(opts ...Option) *MarkdownNormalizer {
	n := &MarkdownNormalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts a cleaned HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	var (
		markdown string
		err      error
	)
	if n.domain != "" {
		markdown, err = htmltomarkdown.ConvertString(html, converter.WithDomain(n.domain))
	} else {
		markdown, err = htmltomarkdown.ConvertString(html)
	}
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
