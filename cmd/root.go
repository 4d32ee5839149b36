// =============================================================================
// CSV to HTML Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// itself performs the conversion; 'inspect' and 'version' are attached as
// subcommands.
//
// COBRA CLI STRUCTURE:
//   rootCmd (csv2html <input.csv> [output.html])
//   ├── inspectCmd (csv2html inspect <input.csv>)
//   └── versionCmd (csv2html version)
//
// ERROR HANDLING:
//   All errors surface here. Execute classifies them (not-found and parse
//   errors get the "Error:" prefix, everything else "Unexpected error:"),
//   prints to stderr, and exits with status 1.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-to-html/internal/config"
	"github.com/ginjaninja78/csv-to-html/internal/converter"
	"github.com/ginjaninja78/csv-to-html/internal/csvreader"
)

// cfgFile holds the path to the style configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables diagnostic output on stderr.
var verbose bool

// toStdout forces the document to stdout even when an output path is given.
var toStdout bool

// customTitle overrides the title derived from the input file name.
var customTitle string

// rootCmd represents the base command. Conversion happens here; there is no
// separate 'convert' subcommand because the tool is single-purpose.
var rootCmd = &cobra.Command{
	Use:   "csv2html <input.csv> [output.html]",
	Short: "Convert CSV files to clean, styled HTML tables",
	Long: `csv2html converts a delimited text file into a styled, self-contained HTML
document. The field delimiter (comma, tab, semicolon, or pipe) is detected
automatically from a sample of the file. The first row becomes the table
header, every cell is escaped, and blank cells render as a placeholder glyph.

Example Usage:
  csv2html data.csv                  # Print HTML to stdout
  csv2html data.csv report.html      # Save HTML to a file
  csv2html data.csv report.html --stdout   # Print anyway, write nothing
  csv2html data.csv -t "Sales Data"  # Custom document title`,

	Args: cobra.RangeArgs(1, 2),

	// Errors are formatted in Execute; keep Cobra quiet about them.
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args)
	},
}

// Execute runs the root command and maps failures to the process exit code.
// Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, csvreader.ErrNotFound) || errors.Is(err, csvreader.ErrParse) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the style configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable diagnostic output on stderr",
	)

	// Local flags for the conversion itself.
	rootCmd.Flags().BoolVar(
		&toStdout,
		"stdout",
		false,
		"Print the HTML to stdout instead of writing a file",
	)
	rootCmd.Flags().StringVarP(
		&customTitle,
		"title",
		"t",
		"",
		"Custom title for the HTML document",
	)
}

// runConvert performs one conversion: load style settings, run the pipeline,
// then either confirm the written file or print the document.
func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	style, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	result, err := converter.New(inputPath, outputPath, customTitle, toStdout, style).Run()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "detected %s-delimited input: %d data rows, %d columns\n",
			csvreader.DelimiterName(result.Delimiter), result.RowCount, result.ColumnCount)
	}

	if result.WroteFile {
		fmt.Printf("HTML table saved to: %s\n", result.OutputFile)
		return nil
	}

	_, err = os.Stdout.Write(result.Document)
	return err
}
