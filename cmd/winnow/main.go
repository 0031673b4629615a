// Winnow classifies scraped social-media posts against keyword-dictionary
// taxonomies and operator-defined rules, then aggregates the tags into
// ranked summaries.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
