// Package cmd — convert command.
// Runs one or more files or URLs through the pipeline:
// load → (extract → normalize) → tokenize → render → write.
package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/mdconfluence/core/output"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagFormat     string
	flagOutputDir  string
	flagAnchors    bool
	flagCodeMacros bool
	flagEncoding   string
	flagSelectors  []string
	flagHTML       bool
	flagTrace      string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|url>...",
	Short: "Convert Markdown or HTML sources to the specified output format",
	Long: `Convert loads each source, turns HTML into Markdown where needed,
parses the Markdown and renders it as Confluence wiki markup (default),
JSON or PDF.

Examples:
  mdconfluence convert README.md
  mdconfluence convert docs/*.md --output_dir ./wiki --anchors
  mdconfluence convert https://example.com/guide --selector article
  mdconfluence convert notes.md --format pdf --output_dir ./out`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagFormat, "format", formatConfluence, "Output format: confluence, json or pdf")
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: standard output)")

	// Confluence rendering.
	convertCmd.Flags().BoolVar(&flagAnchors, "anchors", false, "Emit an {anchor} macro for every header")
	convertCmd.Flags().BoolVar(&flagCodeMacros, "code-macros", false, "Wrap code blocks in {code} macros")

	// Input handling.
	convertCmd.Flags().StringVar(&flagEncoding, "encoding", "", "Character encoding of local files (default: utf-8)")
	convertCmd.Flags().StringSliceVar(&flagSelectors, "selector", nil, "CSS selector of the HTML content container (repeatable)")
	convertCmd.Flags().BoolVar(&flagHTML, "html", false, "Treat every source as HTML")

	convertCmd.Flags().StringVar(&flagTrace, "trace", "Error", "Trace level [Debug|Info|Error]")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := setTraceLevel(flagTrace); err != nil {
		return err
	}
	p, err := newPipeline(pipelineOptions{
		format:     flagFormat,
		anchors:    flagAnchors,
		codeMacros: flagCodeMacros,
		encoding:   flagEncoding,
		selectors:  flagSelectors,
		forceHTML:  flagHTML,
	})
	if err != nil {
		return err
	}
	if flagFormat == formatPDF && flagOutputDir == "" {
		return fmt.Errorf("--format pdf requires --output_dir")
	}
	writer, err := output.New(flagOutputDir, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	if len(args) == 1 {
		return convertOne(cmd, p, writer, args[0])
	}
	var errCount int
	for i, target := range args {
		fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] Processing %s\n", i+1, len(args), target)
		if err := convertOne(cmd, p, writer, target); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ Error: %v\n", err)
			errCount++
		}
	}
	if errCount > 0 {
		return fmt.Errorf("%d/%d sources failed", errCount, len(args))
	}
	return nil
}

func convertOne(cmd *cobra.Command, p *pipeline, writer *output.Writer, target string) error {
	data, _, err := p.run(cmd.Context(), target)
	if err != nil {
		return err
	}
	path, err := writer.Write(target, data, p.renderer.Extension())
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Written: %s\n", path)
	}
	return nil
}

// tracedKeys are the tracer keys of all packages of this module.
var tracedKeys = []string{"mdconfluence.cli", "mdconfluence.source", "mdconfluence.tokenize"}

func setTraceLevel(name string) error {
	var level tracing.TraceLevel
	switch name {
	case "Debug", "debug":
		level = tracing.LevelDebug
	case "Info", "info":
		level = tracing.LevelInfo
	case "Error", "error":
		level = tracing.LevelError
	default:
		return fmt.Errorf("unknown trace level %q", name)
	}
	for _, key := range tracedKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}
