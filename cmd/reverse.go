package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// runReverse reads a Confluence file line by line. Converting Confluence
// markup back to Markdown is not supported, so nothing is written.
func runReverse(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	lines := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	tracer().Infof("confluence to markdown is not implemented, ignored %d lines of %s", lines, path)
	return nil
}
