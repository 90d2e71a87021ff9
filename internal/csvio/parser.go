// Package csvio reads and writes the participant CSV subset used for bulk
// import and export: comma separated, double-quote wrapped fields, UTF-8
// with a leading byte order mark and a header row.
package csvio

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// Row is an accepted data row together with its 1-based source line.
type Row struct {
	Line        int
	Participant domain.NewParticipant
}

// RowError describes a rejected data row.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf(ErrFmtLine, e.Line, e.Reason)
}

// ParseResult is the outcome of ParseParticipants. TotalDataLines counts
// every line after the header, blank ones included.
type ParseResult struct {
	ValidRows      []Row
	Errors         []RowError
	TotalDataLines int
}

// ErrorStrings renders the row errors for API responses.
func (r ParseResult) ErrorStrings() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Error())
	}
	return out
}

// ParseParticipants turns raw CSV text into participant rows.
//
// The first line is a header and is skipped without inspection. Column 0 is
// the participant name, column 1 an optional category id. A non-empty
// categoryOverride replaces the per-row category for every row. Malformed
// rows are collected in Errors and never abort the parse.
func ParseParticipants(raw string, categoryOverride *string) ParseResult {
	text := strings.TrimSpace(stripBOM(raw))
	if text == "" {
		return ParseResult{}
	}

	lines := strings.Split(text, lineSep)
	result := ParseResult{TotalDataLines: len(lines) - 1}

	override := strings.TrimSpace(domain.StringValue(categoryOverride))

	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		lineNo := i + 1

		fields := SplitLine(line)
		name := cleanField(fields[0])
		if name == "" {
			result.Errors = append(result.Errors, RowError{Line: lineNo, Reason: ErrMsgNameRequired})
			continue
		}

		category := override
		if category == "" && len(fields) > 1 {
			category = cleanField(fields[1])
		}

		result.ValidRows = append(result.ValidRows, Row{
			Line: lineNo,
			Participant: domain.NewParticipant{
				Name:       norm.NFC.String(name),
				CategoryID: domain.StringPtr(category),
				IsActive:   true,
			},
		})
	}

	return result
}

// SplitLine splits one CSV line into fields. A double quote toggles the
// quoted state and a comma only separates fields outside quotes, so
// `"Smith, John","cat-1"` yields `Smith, John` and `cat-1`. Inside a quoted
// field a doubled quote is read as one literal quote.
func SplitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == quoteChar:
			if inQuotes && i+1 < len(line) && line[i+1] == quoteChar {
				current.WriteByte(quoteChar)
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == fieldSep && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// cleanField strips one stray leading and trailing quote and surrounding spaces.
func cleanField(field string) string {
	field = strings.TrimSpace(field)
	field = strings.TrimPrefix(field, quoteStr)
	field = strings.TrimSuffix(field, quoteStr)
	return strings.TrimSpace(field)
}

// stripBOM removes a leading byte order mark. Input that fails to decode is
// returned unchanged.
func stripBOM(raw string) string {
	decoded, _, err := transform.String(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return raw
	}
	return decoded
}
