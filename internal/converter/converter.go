// =============================================================================
// CSV to HTML Converter - Conversion Pipeline
// =============================================================================
//
// This module orchestrates the conversion of one input file: parse the CSV,
// resolve the document title, render the HTML, and either write it to the
// requested output file or hand the bytes back for printing. There is no
// state surviving past a Run; every invocation is a fresh pipeline.
//
// =============================================================================

package converter

import (
	"github.com/ginjaninja78/csv-to-html/internal/config"
	"github.com/ginjaninja78/csv-to-html/internal/csvreader"
	"github.com/ginjaninja78/csv-to-html/internal/htmlwriter"
	"github.com/ginjaninja78/csv-to-html/pkg/utils"
)

// Converter holds the parameters for a single conversion.
type Converter struct {
	// InputPath is the CSV file to convert.
	InputPath string

	// OutputPath is the HTML file to write. Empty means print to stdout.
	OutputPath string

	// Title overrides the derived document title when non-empty.
	Title string

	// ForceStdout prints the document even when OutputPath is set.
	ForceStdout bool

	// Style supplies the presentation settings. Nil means defaults.
	Style *config.StyleConfig
}

// Result describes a completed conversion.
type Result struct {
	// InputPath is the source file that was converted.
	InputPath string

	// OutputFile is the written file path; empty when nothing was written.
	OutputFile string

	// Document is the rendered HTML. Always populated so callers can print
	// it when no file was written.
	Document []byte

	// Title is the resolved document title.
	Title string

	// RowCount and ColumnCount mirror the document's summary line.
	RowCount    int
	ColumnCount int

	// Delimiter is the field separator the reader detected.
	Delimiter rune

	// WroteFile reports whether the document went to OutputFile.
	WroteFile bool
}

// New creates a Converter for a single input file.
func New(inputPath, outputPath, title string, forceStdout bool, style *config.StyleConfig) *Converter {
	return &Converter{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		Title:       title,
		ForceStdout: forceStdout,
		Style:       style,
	}
}

// Run executes the pipeline: read, render, write.
func (c *Converter) Run() (*Result, error) {
	table, err := csvreader.Parse(c.InputPath)
	if err != nil {
		return nil, err
	}

	title := c.Title
	if title == "" {
		title = htmlwriter.DeriveTitle(c.InputPath)
	}

	options := htmlwriter.DefaultGenerateOptions()
	if c.Style != nil {
		options = c.Style.GenerateOptions()
	}

	document, err := htmlwriter.GenerateWithOptions(table, title, options)
	if err != nil {
		return nil, err
	}

	result := &Result{
		InputPath:   c.InputPath,
		Document:    document,
		Title:       title,
		RowCount:    table.DataRowCount(),
		ColumnCount: table.ColumnCount(),
		Delimiter:   table.Delimiter,
	}

	if c.OutputPath != "" && !c.ForceStdout {
		if err := utils.WriteFileAtomic(c.OutputPath, document); err != nil {
			return nil, err
		}
		result.OutputFile = c.OutputPath
		result.WroteFile = true
	}

	return result, nil
}
