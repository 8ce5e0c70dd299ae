// Package output handles file naming and writing for rendered documents.
// Without an output directory, output goes to the configured stream
// (standard output in the CLI). With one, file inputs keep their base name
// (docs/intro.md → intro.confluence) and URL inputs are flattened from host
// and path (https://example.com/docs/intro → example_com_docs_intro.confluence).
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/mdconfluence/core/source"
)

// Writer writes rendered output. Within one Writer, origins that map to
// the same file name get a numeric suffix (intro.confluence,
// intro_2.confluence, ...).
type Writer struct {
	OutputDir string
	stream    io.Writer
	seen      map[string]int
}

// New creates a Writer. An empty outputDir sends everything to stream.
func New(outputDir string, stream io.Writer) (*Writer, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir, stream: stream, seen: make(map[string]int)}, nil
}

// Write stores data for the input origin and returns the written path, or
// "" when writing to the stream.
func (w *Writer) Write(origin string, data []byte, ext string) (string, error) {
	if w.OutputDir == "" {
		if _, err := w.stream.Write(data); err != nil {
			return "", fmt.Errorf("writing output: %w", err)
		}
		return "", nil
	}

	name := Filename(origin)
	w.seen[name+ext]++
	if n := w.seen[name+ext]; n > 1 {
		name = fmt.Sprintf("%s_%d", name, n)
	}
	path := filepath.Join(w.OutputDir, name+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename derives an output base name (without extension) from an origin.
func Filename(origin string) string {
	if source.IsURL(origin) {
		return filenameFromURL(origin)
	}
	base := filepath.Base(origin)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// filenameFromURL converts a URL into a flat filename.
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(strings.TrimSuffix(seg, filepath.Ext(seg))))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
