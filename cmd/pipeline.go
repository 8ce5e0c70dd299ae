package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gaurav-prasanna/mdconfluence/core"
	"github.com/gaurav-prasanna/mdconfluence/core/document"
	"github.com/gaurav-prasanna/mdconfluence/core/extract"
	"github.com/gaurav-prasanna/mdconfluence/core/fetch"
	"github.com/gaurav-prasanna/mdconfluence/core/normalize"
	"github.com/gaurav-prasanna/mdconfluence/core/render"
	"github.com/gaurav-prasanna/mdconfluence/core/source"
	"github.com/gaurav-prasanna/mdconfluence/core/tokenize"
)

const (
	formatConfluence = "confluence"
	formatJSON       = "json"
	formatPDF        = "pdf"
)

type pipelineOptions struct {
	format     string
	anchors    bool
	codeMacros bool
	encoding   string
	selectors  []string
	forceHTML  bool
}

// pipeline carries one input through load → (extract → normalize) →
// tokenize → render.
type pipeline struct {
	loader    core.Loader
	extractor core.Extractor
	tokenizer core.Tokenizer
	renderer  core.Renderer
}

func newPipeline(opts pipelineOptions) (*pipeline, error) {
	renderer, err := selectRenderer(opts)
	if err != nil {
		return nil, err
	}
	loaderOpts := []source.Option{source.WithEncoding(opts.encoding)}
	if opts.forceHTML {
		loaderOpts = append(loaderOpts, source.WithHTML())
	}
	loader, err := source.New(fetch.New(), loaderOpts...)
	if err != nil {
		return nil, err
	}
	return &pipeline{
		loader:    loader,
		extractor: extract.New(opts.selectors...),
		tokenizer: tokenize.New(),
		renderer:  renderer,
	}, nil
}

// selectRenderer creates the Renderer for the requested format.
func selectRenderer(opts pipelineOptions) (core.Renderer, error) {
	switch opts.format {
	case formatConfluence:
		var ropts []render.Option
		if opts.anchors {
			ropts = append(ropts, render.WithHeaderAnchors())
		}
		if opts.codeMacros {
			ropts = append(ropts, render.WithCodeMacros())
		}
		return render.NewConfluenceRenderer(ropts...), nil
	case formatJSON:
		return render.NewJSONRenderer(), nil
	case formatPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s, %s or %s)",
			opts.format, formatConfluence, formatJSON, formatPDF)
	}
}

// run processes a single target through the full pipeline.
func (p *pipeline) run(ctx context.Context, target string) ([]byte, core.Metadata, error) {
	// 1. Load
	in, err := p.loader.Load(ctx, target)
	if err != nil {
		return nil, core.Metadata{}, fmt.Errorf("load: %w", err)
	}

	// 2. HTML sources go through extraction and Markdown normalization
	markdown := in.Body
	if in.Format == core.FormatHTML {
		content, err := p.extractor.Extract(in.Body)
		if err != nil {
			return nil, core.Metadata{}, fmt.Errorf("extract: %w", err)
		}
		var normalizer core.Normalizer = normalize.New()
		if domain := domainOf(in.Origin); domain != "" {
			normalizer = normalize.New(normalize.WithDomain(domain))
		}
		if markdown, err = normalizer.Normalize(content); err != nil {
			return nil, core.Metadata{}, fmt.Errorf("normalize: %w", err)
		}
	}

	// 3. Tokenize
	blocks, err := p.tokenizer.Tokenize([]byte(markdown))
	if err != nil {
		return nil, core.Metadata{}, fmt.Errorf("tokenize: %w", err)
	}
	meta := core.Metadata{Origin: in.Origin, Title: firstHeading(blocks)}
	tracer().Debugf("%s: %d blocks, title %q", in.Origin, len(blocks), meta.Title)

	// 4. Render
	data, err := p.renderer.Render(blocks, meta)
	if err != nil {
		return nil, core.Metadata{}, fmt.Errorf("render: %w", err)
	}
	return data, meta, nil
}

// domainOf returns scheme://host for URL origins and "" otherwise.
func domainOf(origin string) string {
	if !source.IsURL(origin) {
		return ""
	}
	u, _ := url.Parse(origin)
	return u.Scheme + "://" + u.Host
}

// firstHeading returns the text of the first header block.
func firstHeading(blocks []document.Block) string {
	for _, b := range blocks {
		if h, ok := b.(document.Header); ok {
			return document.PlainText(h.Spans)
		}
	}
	return ""
}
