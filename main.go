// =============================================================================
// CSV to HTML Converter - Main Entry Point
// =============================================================================
//
// csv2html converts a delimited text file (CSV, TSV, semicolon- or
// pipe-separated) into a styled, self-contained HTML document.
//
// USAGE:
//   csv2html data.csv                - Print the HTML document to stdout
//   csv2html data.csv report.html    - Write the HTML document to a file
//   csv2html inspect data.csv        - Report the detected delimiter and shape
//   csv2html version                 - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : core pipeline (reader, renderer, config, converter)
//   - pkg/       : shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/csv-to-html/cmd"
)

func main() {
	cmd.Execute()
}
