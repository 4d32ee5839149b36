package htmlwriter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/csv-to-html/internal/htmlwriter"
	"github.com/ginjaninja78/csv-to-html/internal/types"
)

func makeTable(rows ...types.Row) *types.Table {
	return &types.Table{Rows: rows, SourceFile: "test.csv", Delimiter: ','}
}

func TestGenerateDocumentStructure(t *testing.T) {
	table := makeTable(
		types.Row{"a", "b"},
		types.Row{"1", "2"},
	)

	document, err := htmlwriter.Generate(table, "Test")
	require.NoError(t, err)

	out := string(document)
	assert.True(t, bytes.HasPrefix(document, []byte("<!DOCTYPE html>")))
	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, "<thead>")
	assert.Contains(t, out, "<tbody>")
	assert.Contains(t, out, "<title>Test</title>")
	assert.Contains(t, out, "<h1>Test</h1>")
	assert.Contains(t, out, "</html>")
}

func TestGenerateSummaryLine(t *testing.T) {
	table := makeTable(
		types.Row{"a", "b"},
		types.Row{"1", "2"},
		types.Row{"", "4"},
	)

	document, err := htmlwriter.Generate(table, "Test")
	require.NoError(t, err)
	assert.Contains(t, string(document), "Table contains 2 rows and 2 columns")
}

func TestGenerateSummaryHeaderOnly(t *testing.T) {
	table := makeTable(types.Row{"a", "b", "c"})

	document, err := htmlwriter.Generate(table, "Test")
	require.NoError(t, err)
	assert.Contains(t, string(document), "Table contains 0 rows and 3 columns")
}

func TestGenerateEscapesCells(t *testing.T) {
	table := makeTable(
		types.Row{"col"},
		types.Row{`<script>alert("x") & 'y'</script>`},
	)

	document, err := htmlwriter.Generate(table, "Test")
	require.NoError(t, err)

	out := string(document)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;alert(&#34;x&#34;) &amp; &#39;y&#39;&lt;/script&gt;")
}

func TestGenerateEscapesTitle(t *testing.T) {
	table := makeTable(types.Row{"a"}, types.Row{"1"})

	document, err := htmlwriter.Generate(table, `Sales <Q1> & "Q2"`)
	require.NoError(t, err)

	out := string(document)
	assert.Contains(t, out, "<title>Sales &lt;Q1&gt; &amp; &#34;Q2&#34;</title>")
	assert.Contains(t, out, "<h1>Sales &lt;Q1&gt; &amp; &#34;Q2&#34;</h1>")
}

func TestGenerateHeaderTrimmedVerbatim(t *testing.T) {
	table := makeTable(
		types.Row{"  a  ", "b"},
		types.Row{"1", "2"},
	)

	document, err := htmlwriter.Generate(table, "Test")
	require.NoError(t, err)

	out := string(document)
	// Header text is trimmed and escaped but never re-cased.
	assert.Contains(t, out, "<th>a</th>")
	assert.NotContains(t, out, "<th>A</th>")
}

func TestGeneratePlaceholderForEmptyCells(t *testing.T) {
	table := makeTable(
		types.Row{"a", "b"},
		types.Row{"", "  "},
	)

	document, err := htmlwriter.Generate(table, "Test")
	require.NoError(t, err)

	out := string(document)
	assert.NotContains(t, out, "<td></td>")
	assert.Equal(t, 2, bytes.Count(document, []byte(`<span class="empty-cell">—</span>`)))
}

func TestGenerateWithOptionsCustomPlaceholder(t *testing.T) {
	table := makeTable(
		types.Row{"a"},
		types.Row{""},
	)

	options := htmlwriter.DefaultGenerateOptions()
	options.Placeholder = "n/a"

	document, err := htmlwriter.GenerateWithOptions(table, "Test", options)
	require.NoError(t, err)
	assert.Contains(t, string(document), `<span class="empty-cell">n/a</span>`)
}

func TestGenerateWithOptionsStyleTokens(t *testing.T) {
	table := makeTable(types.Row{"a"}, types.Row{"1"})

	options := htmlwriter.DefaultGenerateOptions()
	options.MaxWidth = 900
	options.AccentStart = "#111111"
	options.AccentEnd = "#222222"
	options.Language = "sv"

	document, err := htmlwriter.GenerateWithOptions(table, "Test", options)
	require.NoError(t, err)

	out := string(document)
	assert.Contains(t, out, "max-width: 900px;")
	assert.Contains(t, out, "linear-gradient(135deg, #111111 0%, #222222 100%)")
	assert.Contains(t, out, `<html lang="sv">`)
	assert.NotContains(t, out, "{max_width}")
	assert.NotContains(t, out, "{accent_start}")
}

func TestGenerateIdempotent(t *testing.T) {
	table := makeTable(
		types.Row{"a", "b"},
		types.Row{"1", "2"},
	)

	first, err := htmlwriter.Generate(table, "Test")
	require.NoError(t, err)
	second, err := htmlwriter.Generate(table, "Test")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestGenerateEmptyTable(t *testing.T) {
	_, err := htmlwriter.Generate(&types.Table{}, "Test")
	require.Error(t, err)

	_, err = htmlwriter.Generate(nil, "Test")
	require.Error(t, err)
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"monthly_sales.csv", "Monthly Sales"},
		{"/tmp/data/monthly_sales.csv", "Monthly Sales"},
		{"report.csv", "Report"},
		{"ANNUAL_REPORT.csv", "Annual Report"},
		{"q1_revenue_2025.csv", "Q1 Revenue 2025"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, htmlwriter.DeriveTitle(tt.path), "path %s", tt.path)
	}
}
