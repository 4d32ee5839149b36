// =============================================================================
// CSV to HTML Converter - HTML Writer Module
// =============================================================================
//
// This module renders a parsed Table into a complete, self-contained HTML
// document: doctype, head with an embedded stylesheet, a titled container,
// a table with header and body sections, and a trailing row/column summary.
//
// Rendering is a pure function of its inputs. All text is escaped, cell
// values are trimmed, and blank cells render as a placeholder glyph so
// emptiness stays visible. Identical input always produces byte-identical
// output.
//
// =============================================================================

package htmlwriter

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ginjaninja78/csv-to-html/internal/types"
)

// GenerateOptions controls the presentation of the rendered document.
type GenerateOptions struct {
	// Placeholder is the glyph substituted for cells that are empty after
	// trimming.
	Placeholder string

	// FontFamily is the CSS font stack for the document body.
	FontFamily string

	// MaxWidth is the container width cap in pixels.
	MaxWidth int

	// AccentStart and AccentEnd are the header gradient endpoints.
	AccentStart string
	AccentEnd   string

	// Language is the value of the <html lang> attribute.
	Language string
}

// DefaultGenerateOptions returns the stock presentation settings.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Placeholder: "—",
		FontFamily:  "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
		MaxWidth:    1200,
		AccentStart: "#667eea",
		AccentEnd:   "#764ba2",
		Language:    "en",
	}
}

// Generate renders the table with the default options.
func Generate(table *types.Table, title string) ([]byte, error) {
	return GenerateWithOptions(table, title, DefaultGenerateOptions())
}

// GenerateWithOptions renders the table into a complete HTML document.
// The first row is treated as the header and the rest as data. The table
// must contain at least one row.
func GenerateWithOptions(table *types.Table, title string, options GenerateOptions) ([]byte, error) {
	if table.IsEmpty() {
		return nil, fmt.Errorf("cannot render an empty table")
	}

	var buffer bytes.Buffer

	escapedTitle := html.EscapeString(title)

	buffer.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&buffer, "<html lang=%q>\n", options.Language)
	buffer.WriteString("<head>\n")
	buffer.WriteString("    <meta charset=\"UTF-8\">\n")
	buffer.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&buffer, "    <title>%s</title>\n", escapedTitle)
	writeStyleSheet(&buffer, options)
	buffer.WriteString("</head>\n")
	buffer.WriteString("<body>\n")
	buffer.WriteString("    <div class=\"container\">\n")
	fmt.Fprintf(&buffer, "        <h1>%s</h1>\n", escapedTitle)
	buffer.WriteString("        <table>\n")

	writeHeaderRow(&buffer, table.Header())
	writeBodyRows(&buffer, table.DataRows(), options.Placeholder)

	buffer.WriteString("        </table>\n")
	buffer.WriteString("        <div class=\"table-info\">\n")
	fmt.Fprintf(&buffer, "            Table contains %d rows and %d columns\n",
		table.DataRowCount(), table.ColumnCount())
	buffer.WriteString("        </div>\n")
	buffer.WriteString("    </div>\n")
	buffer.WriteString("</body>\n")
	buffer.WriteString("</html>\n")

	return buffer.Bytes(), nil
}

// writeHeaderRow emits the thead section. Header text is trimmed and escaped
// but otherwise used verbatim; no casing is applied.
func writeHeaderRow(buffer *bytes.Buffer, header types.Row) {
	buffer.WriteString("            <thead>\n")
	buffer.WriteString("                <tr>\n")
	for _, cell := range header {
		fmt.Fprintf(buffer, "                    <th>%s</th>\n",
			html.EscapeString(strings.TrimSpace(cell)))
	}
	buffer.WriteString("                </tr>\n")
	buffer.WriteString("            </thead>\n")
}

// writeBodyRows emits the tbody section. Cells that are empty after trimming
// render as the placeholder glyph inside a styled span.
func writeBodyRows(buffer *bytes.Buffer, rows []types.Row, placeholder string) {
	buffer.WriteString("            <tbody>\n")
	for _, row := range rows {
		buffer.WriteString("                <tr>\n")
		for _, cell := range row {
			trimmed := strings.TrimSpace(cell)
			if trimmed == "" {
				fmt.Fprintf(buffer, "                    <td><span class=\"empty-cell\">%s</span></td>\n",
					html.EscapeString(placeholder))
			} else {
				fmt.Fprintf(buffer, "                    <td>%s</td>\n",
					html.EscapeString(trimmed))
			}
		}
		buffer.WriteString("                </tr>\n")
	}
	buffer.WriteString("            </tbody>\n")
}

// DeriveTitle derives a page title from an input file path: base name minus
// the extension, underscores replaced with spaces, each word title-cased.
// "monthly_sales.csv" becomes "Monthly Sales".
func DeriveTitle(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	return cases.Title(language.English).String(base)
}

// styleSheet is the embedded stylesheet with {token} slots substituted from
// GenerateOptions before emission.
const styleSheet = `    <style>
        body {
            font-family: {font_family};
            margin: 40px;
            background-color: #f5f5f5;
            color: #333;
        }

        .container {
            max-width: {max_width}px;
            margin: 0 auto;
            background-color: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }

        h1 {
            color: #2c3e50;
            text-align: center;
            margin-bottom: 30px;
            font-weight: 300;
            font-size: 2.2em;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin: 20px 0;
            font-size: 14px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
            border-radius: 6px;
            overflow: hidden;
        }

        th {
            background: linear-gradient(135deg, {accent_start} 0%, {accent_end} 100%);
            color: white;
            font-weight: 600;
            padding: 15px 12px;
            text-align: left;
            font-size: 13px;
            text-transform: uppercase;
            letter-spacing: 0.5px;
        }

        td {
            padding: 12px;
            border-bottom: 1px solid #e0e0e0;
            transition: background-color 0.2s ease;
        }

        tr:hover {
            background-color: #f8f9fa;
        }

        tr:nth-child(even) {
            background-color: #fafafa;
        }

        tr:nth-child(even):hover {
            background-color: #f0f0f0;
        }

        .table-info {
            text-align: center;
            margin-top: 20px;
            color: #666;
            font-size: 12px;
        }

        .empty-cell {
            color: #999;
            font-style: italic;
        }

        @media (max-width: 768px) {
            body {
                margin: 10px;
            }

            .container {
                padding: 15px;
            }

            table {
                font-size: 12px;
            }

            th, td {
                padding: 8px 6px;
            }

            h1 {
                font-size: 1.8em;
            }
        }
    </style>
`

// writeStyleSheet substitutes the option tokens into the stylesheet and
// writes it to the buffer.
func writeStyleSheet(buffer *bytes.Buffer, options GenerateOptions) {
	replacer := strings.NewReplacer(
		"{font_family}", options.FontFamily,
		"{max_width}", strconv.Itoa(options.MaxWidth),
		"{accent_start}", options.AccentStart,
		"{accent_end}", options.AccentEnd,
	)
	buffer.WriteString(replacer.Replace(styleSheet))
}
