// Command mdconfluence converts Markdown into Confluence wiki markup.
package main

import "github.com/gaurav-prasanna/mdconfluence/cmd"

func main() {
	cmd.Execute()
}
