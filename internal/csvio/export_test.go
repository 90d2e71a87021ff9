package csvio

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

const bom = "\uFEFF"

func sampleParticipants() []domain.Participant {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return []domain.Participant{
		{ID: "p1", Name: "John Doe", IsActive: true, CreatedAt: created},
		{ID: "p2", Name: "Lee, Anna", CategoryID: domain.StringPtr("cat2"), IsActive: true, CreatedAt: created},
		{ID: "p3", Name: `Bob "Builder" Jr`, CategoryID: domain.StringPtr("cat1"), IsActive: false, CreatedAt: created},
		{ID: "p4", Name: "王小明", CategoryID: domain.StringPtr("cat1"), IsActive: true, CreatedAt: created},
	}
}

func TestFormatParticipants(t *testing.T) {
	out, err := FormatParticipants(sampleParticipants())
	require.NoError(t, err)

	text := string(out)
	require.True(t, strings.HasPrefix(text, bom), "export must start with a byte order mark")

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(text, bom), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `"Name","CategoryId","Active","CreatedAt"`, lines[0])
	assert.Equal(t, `"John Doe","","true","2025-03-01T10:00:00Z"`, lines[1])
	assert.Equal(t, `"Lee, Anna","cat2","true","2025-03-01T10:00:00Z"`, lines[2])
	assert.Equal(t, `"Bob ""Builder"" Jr","cat1","false","2025-03-01T10:00:00Z"`, lines[3])
}

func TestFormatParticipants_RoundTrip(t *testing.T) {
	participants := sampleParticipants()

	out, err := FormatParticipants(participants)
	require.NoError(t, err)

	res := ParseParticipants(string(out), nil)
	require.Empty(t, res.Errors)
	require.Len(t, res.ValidRows, len(participants))

	for i, p := range participants {
		got := res.ValidRows[i].Participant
		assert.Equal(t, p.Name, got.Name)
		assert.Equal(t, p.CategoryID, got.CategoryID)
	}
}

func TestFormatParticipants_Idempotent(t *testing.T) {
	first, err := FormatParticipants(sampleParticipants())
	require.NoError(t, err)
	second, err := FormatParticipants(sampleParticipants())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatDrawRecords_SortedMostRecentFirst(t *testing.T) {
	older := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)
	records := []domain.DrawRecord{
		{ID: "r1", Position: 0, ParticipantName: "Old", PrizeName: "Mug", LotteryDate: older, CategoryID: domain.StringPtr("c"), ParticipantID: domain.StringPtr("p1")},
		{ID: "r2", Position: 0, ParticipantName: "NewA", PrizeName: "Car", LotteryDate: newer, CategoryID: domain.StringPtr("c"), ParticipantID: domain.StringPtr("p2")},
		{ID: "r3", Position: 1, ParticipantName: "NewB", PrizeName: "Bike", LotteryDate: newer, CategoryID: domain.StringPtr("c"), ParticipantID: domain.StringPtr("p3")},
	}

	out, err := FormatDrawRecords(records)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(string(out), bom), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `"WinnerName","PrizeName","LotteryDate","CategoryId","ParticipantId"`, lines[0])
	assert.Equal(t, `"NewA","Car","2025-01-02T09:00:00Z","c","p2"`, lines[1])
	assert.Equal(t, `"NewB","Bike","2025-01-02T09:00:00Z","c","p3"`, lines[2])
	assert.Equal(t, `"Old","Mug","2025-01-01T09:00:00Z","c","p1"`, lines[3])

	// input slice is left untouched
	assert.Equal(t, "r1", records[0].ID)
}

func TestFormatDrawRecords_DeletedParticipant(t *testing.T) {
	records := []domain.DrawRecord{
		{ID: "r1", ParticipantName: "Gone", PrizeName: "Mug", LotteryDate: time.Unix(0, 0)},
	}

	out, err := FormatDrawRecords(records)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Gone","Mug","1970-01-01T00:00:00Z","",""`)
}

func TestNewExportFile(t *testing.T) {
	content := []byte(bom + "\"Name\"\n")
	now := time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)

	file := NewExportFile(domain.ExportTypeLotteryRecords, content, now)

	assert.Equal(t, "lottery_records_2025-06-30.csv", file.Filename)
	assert.Equal(t, MimeTypeCSV, file.MimeType)
	assert.Equal(t, EncodingBase64, file.Encoding)

	decoded, err := base64.StdEncoding.DecodeString(file.Content)
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}
