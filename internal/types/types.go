// =============================================================================
// CSV to HTML Converter - Shared Types
// =============================================================================
//
// This package contains the shared table types used across the pipeline to
// avoid import cycles. Types defined here are used by:
//   - csvreader
//   - htmlwriter
//   - converter
//
// =============================================================================

package types

// Row is an ordered sequence of text fields. Field count may vary from row
// to row; rectangularity is not enforced anywhere in the pipeline.
type Row []string

// Table is the parsed form of an input file. The first row is the header,
// the remaining rows are data. A valid Table has at least one row.
type Table struct {
	// Rows contains every row exactly as parsed. No trimming or dropping
	// happens at this level; presentation concerns belong to the renderer.
	Rows []Row

	// SourceFile is the path the table was parsed from.
	SourceFile string

	// Delimiter is the field separator the reader detected.
	Delimiter rune
}

// IsEmpty reports whether the table has no rows at all.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// Header returns the header row, or nil for an empty table.
func (t *Table) Header() Row {
	if t.IsEmpty() {
		return nil
	}
	return t.Rows[0]
}

// DataRows returns every row after the header.
func (t *Table) DataRows() []Row {
	if t.IsEmpty() {
		return nil
	}
	return t.Rows[1:]
}

// DataRowCount returns the number of rows excluding the header.
func (t *Table) DataRowCount() int {
	if t.IsEmpty() {
		return 0
	}
	return len(t.Rows) - 1
}

// ColumnCount returns the width of the header row.
func (t *Table) ColumnCount() int {
	return len(t.Header())
}
