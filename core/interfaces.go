// Package core defines the pipeline interfaces for mdconfluence.
// Each stage of the pipeline is a small, testable interface:
// load → (extract → normalize) → tokenize → render → write.
package core

import (
	"context"

	"github.com/gaurav-prasanna/mdconfluence/core/document"
)

// Format tells which syntax an Input body is written in.
type Format int

const (
	FormatMarkdown Format = iota
	FormatHTML
)

func (f Format) String() string {
	if f == FormatHTML {
		return "html"
	}
	return "markdown"
}

// FetchResult holds the decoded body and response metadata from a fetch.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        string
}

// Input is a loaded conversion source.
type Input struct {
	Origin string // file path or URL, as given
	Format Format
	Body   string
}

// Metadata describes the origin of a rendered document.
type Metadata struct {
	Origin string `json:"origin"`
	Title  string `json:"title,omitempty"`
}

// Fetcher retrieves a document from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Loader resolves a target (file path or URL) into an Input.
type Loader interface {
	Load(ctx context.Context, target string) (*Input, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Tokenizer parses Markdown into the document model.
type Tokenizer interface {
	Tokenize(src []byte) ([]document.Block, error)
}

// Renderer converts the document model into a final output format.
type Renderer interface {
	Render(blocks []document.Block, meta Metadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".confluence", ".pdf").
	Extension() string
}
