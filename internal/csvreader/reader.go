// =============================================================================
// CSV to HTML Converter - CSV Reader Module
// =============================================================================
//
// This module turns an input file into a Table. It handles:
//   - Delimiter sniffing over a fixed-size leading sample of the file
//   - Quoted fields containing the delimiter or line breaks
//   - Ragged rows (no rectangularity enforcement)
//
// The reader is deliberately faithful to the file: no trimming, no row
// dropping. Presentation cleanup is the renderer's job.
//
// =============================================================================

package csvreader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ginjaninja78/csv-to-html/internal/types"
)

// Sentinel errors for programmatic error handling. The CLI classifies on
// these to pick its stderr prefix.
var (
	// ErrNotFound indicates the input path does not exist.
	ErrNotFound = errors.New("input file not found")

	// ErrParse indicates the file exists but could not be read as delimited
	// text: empty, no recognizable delimiter, or malformed rows.
	ErrParse = errors.New("unable to parse CSV")
)

// sampleSize is the number of leading bytes inspected during delimiter
// sniffing. The read cursor is reset to the start before the full parse.
const sampleSize = 1024

// sniffMaxLines caps how many sample lines vote on the delimiter.
const sniffMaxLines = 10

// delimiterCandidates are checked in order; earlier candidates win ties.
var delimiterCandidates = []rune{',', '\t', ';', '|'}

// Parse reads the file at path and returns the parsed Table.
//
// Failure taxonomy:
//   - path does not exist            -> error wrapping ErrNotFound
//   - empty file or no delimiter     -> error wrapping ErrParse
//   - malformed CSV                  -> error wrapping ErrParse
//   - anything else (permissions...) -> plain wrapped error
func Parse(path string) (*types.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	// Sniff the delimiter from a leading sample, then rewind.
	sample := make([]byte, sampleSize)
	n, err := io.ReadFull(file, sample)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrParse)
	}

	delimiter, err := sniffDelimiter(sample[:n], n == sampleSize)
	if err != nil {
		return nil, err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind %s: %w", path, err)
	}

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, delimiter)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrParse)
	}

	rows := make([]types.Row, len(records))
	for i, record := range records {
		rows[i] = types.Row(record)
	}

	return &types.Table{
		Rows:       rows,
		SourceFile: path,
		Delimiter:  delimiter,
	}, nil
}

// configureReader applies the parsing settings used for every input file.
func configureReader(reader *csv.Reader, delimiter rune) {
	reader.Comma = delimiter

	// Allow a variable number of fields per row; ragged input renders fine.
	reader.FieldsPerRecord = -1

	// Allow quotes that don't follow strict CSV rules rather than failing
	// the whole file on one loosely quoted cell.
	reader.LazyQuotes = true
}

// sniffDelimiter picks the most plausible field separator from the sample.
//
// Each candidate is counted per line (quote-aware). A candidate must appear
// on the first line; the winner is the candidate whose first-line count
// repeats on the most sample lines, tie-broken by that count, then by
// candidate order. Whitespace-only input, or input with none of the
// candidates, yields an ErrParse.
func sniffDelimiter(sample []byte, truncated bool) (rune, error) {
	lines := sampleLines(sample, truncated)
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w: unable to detect a field delimiter", ErrParse)
	}

	var best rune
	bestConsistent, bestCount := 0, 0

	for _, candidate := range delimiterCandidates {
		first := countUnquoted(lines[0], candidate)
		if first == 0 {
			continue
		}

		consistent := 0
		for _, line := range lines {
			if countUnquoted(line, candidate) == first {
				consistent++
			}
		}

		if consistent > bestConsistent || (consistent == bestConsistent && first > bestCount) {
			best = candidate
			bestConsistent = consistent
			bestCount = first
		}
	}

	if best == 0 {
		return 0, fmt.Errorf("%w: unable to detect a field delimiter", ErrParse)
	}
	return best, nil
}

// sampleLines splits the sniffing sample into complete, non-blank lines.
// When the sample filled the buffer, the last line is likely cut mid-row and
// is dropped so it cannot skew the counts.
func sampleLines(sample []byte, truncated bool) []string {
	raw := strings.Split(string(sample), "\n")
	if truncated && len(raw) > 1 {
		raw = raw[:len(raw)-1]
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == sniffMaxLines {
			break
		}
	}
	return lines
}

// countUnquoted counts occurrences of sep outside double-quoted regions.
func countUnquoted(line string, sep rune) int {
	inQuotes := false
	count := 0
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == sep && !inQuotes:
			count++
		}
	}
	return count
}

// DelimiterName returns a human-readable name for a detected delimiter.
// Used by the inspect command.
func DelimiterName(delimiter rune) string {
	switch delimiter {
	case ',':
		return "comma"
	case '\t':
		return "tab"
	case ';':
		return "semicolon"
	case '|':
		return "pipe"
	default:
		return fmt.Sprintf("%q", delimiter)
	}
}
