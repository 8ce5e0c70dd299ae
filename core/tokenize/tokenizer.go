// Package tokenize implements the Tokenizer interface on top of goldmark.
// It parses Markdown (GitHub flavored by default) and maps goldmark's AST
// onto the document model.
package tokenize

import (
	"github.com/gaurav-prasanna/mdconfluence/core/document"
	"github.com/npillmayer/schuko/tracing"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// tracer traces with key 'mdconfluence.tokenize'.
func tracer() tracing.Trace {
	return tracing.Select("mdconfluence.tokenize")
}

// Tokenizer parses Markdown into document blocks. A Tokenizer is safe for
// concurrent use.
type Tokenizer struct {
	md goldmark.Markdown
}

type config struct {
	extensions []goldmark.Extender
}

// Option configures a Tokenizer.
type Option func(*config)

// WithExtensions replaces the default goldmark extension set (GFM).
func WithExtensions(ext ...goldmark.Extender) Option {
	return func(c *config) { c.extensions = ext }
}

// New creates a Tokenizer.
func New(opts ...Option) *Tokenizer {
	cfg := config{extensions: []goldmark.Extender{extension.GFM}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tokenizer{
		md: goldmark.New(goldmark.WithExtensions(cfg.extensions...)),
	}
}

// Tokenize parses src and returns its blocks in document order.
// goldmark accepts any input, so the error is always nil.
func (t *Tokenizer) Tokenize(src []byte) ([]document.Block, error) {
	root := t.md.Parser().Parse(text.NewReader(src))
	c := &converter{src: src}
	blocks := c.blocks(root)
	tracer().Debugf("tokenized %d bytes into %d blocks", len(src), len(blocks))
	return blocks, nil
}
