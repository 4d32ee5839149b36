// =============================================================================
// CSV to HTML Converter - Inspect Command
// =============================================================================
//
// This file defines the 'inspect' command, which parses an input file and
// reports what the conversion would see (detected delimiter, table shape,
// header fields) without producing any HTML. Useful for checking how an
// unfamiliar export will be interpreted before committing to a document.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-to-html/internal/csvreader"
)

// inspectCmd represents the 'inspect' command.
var inspectCmd = &cobra.Command{
	Use:   "inspect <input.csv>",
	Short: "Parse a CSV file and report its shape without rendering",
	Long: `The inspect command runs the reader stage only: it detects the delimiter,
parses every row, and prints the resulting table shape. No HTML is written.

Exit status is non-zero when the file cannot be parsed, so inspect also
works as a quick validity check in scripts.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// runInspect parses the file and prints a short report.
func runInspect(inputPath string) error {
	table, err := csvreader.Parse(inputPath)
	if err != nil {
		return err
	}

	header := make([]string, 0, table.ColumnCount())
	for _, cell := range table.Header() {
		header = append(header, strings.TrimSpace(cell))
	}

	fmt.Printf("File:      %s\n", table.SourceFile)
	fmt.Printf("Delimiter: %s\n", csvreader.DelimiterName(table.Delimiter))
	fmt.Printf("Rows:      %d\n", table.DataRowCount())
	fmt.Printf("Columns:   %d\n", table.ColumnCount())
	fmt.Printf("Header:    %s\n", strings.Join(header, ", "))
	return nil
}
