package csvio

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// FormatParticipants renders participants in the given order.
func FormatParticipants(participants []domain.Participant) ([]byte, error) {
	var b strings.Builder
	writeRow(&b, ParticipantHeader)
	for _, p := range participants {
		writeRow(&b, []string{
			p.Name,
			domain.StringValue(p.CategoryID),
			strconv.FormatBool(p.IsActive),
			formatTime(p.CreatedAt),
		})
	}
	return withBOM(b.String())
}

// FormatDrawRecords renders draw records, most recent draw first. Records
// sharing a draw timestamp keep their input order.
func FormatDrawRecords(records []domain.DrawRecord) ([]byte, error) {
	sorted := make([]domain.DrawRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LotteryDate.After(sorted[j].LotteryDate)
	})

	var b strings.Builder
	writeRow(&b, DrawRecordHeader)
	for _, r := range sorted {
		writeRow(&b, []string{
			r.ParticipantName,
			r.PrizeName,
			formatTime(r.LotteryDate),
			domain.StringValue(r.CategoryID),
			domain.StringValue(r.ParticipantID),
		})
	}
	return withBOM(b.String())
}

// NewExportFile wraps CSV content for transport. The date in the filename
// is the only part that depends on now.
func NewExportFile(exportType domain.ExportType, content []byte, now time.Time) domain.ExportFile {
	return domain.ExportFile{
		Filename: fmt.Sprintf(FilenamePattern, exportType, now.UTC().Format(FilenameDateFmt)),
		Content:  base64.StdEncoding.EncodeToString(content),
		MimeType: MimeTypeCSV,
		Encoding: EncodingBase64,
	}
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(fieldSep)
		}
		b.WriteByte(quoteChar)
		b.WriteString(strings.ReplaceAll(f, quoteStr, escapedQte))
		b.WriteByte(quoteChar)
	}
	b.WriteString(lineSep)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func withBOM(body string) ([]byte, error) {
	out, _, err := transform.String(unicode.UTF8BOM.NewEncoder(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	return []byte(out), nil
}
