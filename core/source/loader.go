// Package source resolves conversion targets into pipeline inputs.
// A target is either an http(s) URL, which is fetched, or a local file,
// which is read and decoded from its configured character encoding.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/mdconfluence/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// tracer traces with key 'mdconfluence.source'.
func tracer() tracing.Trace {
	return tracing.Select("mdconfluence.source")
}

// ErrUnknownEncoding is returned for encoding names htmlindex does not know.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Loader loads files and URLs.
type Loader struct {
	fetcher   core.Fetcher
	encoding  encoding.Encoding
	forceHTML bool
}

// Option configures a Loader.
type Option func(*Loader) error

// WithEncoding decodes local files from the named encoding (WHATWG names,
// e.g. "utf-8", "latin1", "shift_jis").
func WithEncoding(name string) Option {
	return func(l *Loader) error {
		if name == "" {
			return nil
		}
		enc, err := htmlindex.Get(name)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
		}
		l.encoding = enc
		return nil
	}
}

// WithHTML treats every input as HTML regardless of its name or content type.
func WithHTML() Option {
	return func(l *Loader) error {
		l.forceHTML = true
		return nil
	}
}

// New creates a Loader fetching URLs through fetcher.
func New(fetcher core.Fetcher, opts ...Option) (*Loader, error) {
	l := &Loader{fetcher: fetcher, encoding: encoding.Nop}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Load reads target and tags it with its format.
func (l *Loader) Load(ctx context.Context, target string) (*core.Input, error) {
	if IsURL(target) {
		return l.loadURL(ctx, target)
	}
	return l.loadFile(target)
}

func (l *Loader) loadURL(ctx context.Context, target string) (*core.Input, error) {
	res, err := l.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}
	format := core.FormatMarkdown
	if mediaType, _, err := mime.ParseMediaType(res.ContentType); err == nil {
		if mediaType == "text/html" || mediaType == "application/xhtml+xml" {
			format = core.FormatHTML
		}
	}
	if l.forceHTML {
		format = core.FormatHTML
	}
	tracer().Debugf("fetched %s (%s, %d bytes)", target, format, len(res.Body))
	return &core.Input{Origin: target, Format: format, Body: res.Body}, nil
}

func (l *Loader) loadFile(path string) (*core.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, l.encoding.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	format := core.FormatMarkdown
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		format = core.FormatHTML
	}
	if l.forceHTML {
		format = core.FormatHTML
	}
	tracer().Debugf("read %s (%s, %d bytes)", path, format, len(data))
	return &core.Input{Origin: path, Format: format, Body: string(data)}, nil
}

// IsURL reports whether target is an absolute http or https URL.
func IsURL(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
