// Package cmd implements the CLI commands for mdconfluence using Cobra.
//
// The root command runs a plain argument loop: -m <file> converts
// Markdown to Confluence, -j <file> is the (unsupported) reverse direction,
// anything else prints the usage.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'mdconfluence.cli'.
func tracer() tracing.Trace {
	return tracing.Select("mdconfluence.cli")
}

var rootCmd = &cobra.Command{
	Use:   "mdconfluence",
	Short: "mdconfluence — convert Markdown into Confluence wiki markup",
	Long: `mdconfluence converts Markdown documents (or HTML pages, via Markdown)
into Confluence wiki markup.

Usage:
  mdconfluence -m <file>
  mdconfluence convert <file|url> [flags]`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLegacy(cmd.Context(), args, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			printUsage(cmd.OutOrStdout())
		},
	})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Use -j <file> to convert confluence to markdown.")
	fmt.Fprintln(w, "Use -m <file> to convert markdown to confluence.")
}

// runLegacy walks args left to right. A mode flag consumes the following
// argument; a mode flag at the end is ignored. The first argument that is
// not a mode flag prints the usage and stops processing.
func runLegacy(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		printUsage(stdout)
		return nil
	}
	p, err := newPipeline(pipelineOptions{format: formatConfluence})
	if err != nil {
		return err
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-m":
			if i+1 == len(args) {
				continue
			}
			i++
			data, _, err := p.run(ctx, args[i])
			if err != nil {
				return err
			}
			if _, err := stdout.Write(data); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		case "-j":
			if i+1 == len(args) {
				continue
			}
			i++
			if err := runReverse(args[i]); err != nil {
				return err
			}
		default:
			printUsage(stdout)
			return nil
		}
	}
	return nil
}
