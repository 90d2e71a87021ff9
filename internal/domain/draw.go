package domain

import "time"

// DrawRequest asks for WinnerCount winners from the active participants of a category.
type DrawRequest struct {
	CategoryID  string
	PrizeNames  []string
	WinnerCount int
}

// DrawRecord is one persisted winner. Records are immutable once written.
// ParticipantName is the name at draw time and never follows later renames.
type DrawRecord struct {
	ID              string    `json:"id"`
	DrawID          string    `json:"drawId"`
	Position        int       `json:"position"`
	CategoryID      *string   `json:"categoryId"`
	ParticipantID   *string   `json:"participantId"`
	ParticipantName string    `json:"participantName"`
	PrizeName       string    `json:"prizeName"`
	LotteryDate     time.Time `json:"lotteryDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Winner is the caller-facing view of a drawn participant.
type Winner struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PrizeName   string    `json:"prizeName"`
	LotteryDate time.Time `json:"lotteryDate"`
}

// DrawResult is the outcome of one successful draw.
// TotalParticipants is the candidate pool size observed at draw time.
type DrawResult struct {
	Winners           []Winner     `json:"winners"`
	TotalParticipants int          `json:"totalParticipants"`
	CategoryID        string       `json:"categoryId"`
	Records           []DrawRecord `json:"lotteryRecords"`
}

// DrawRecordFilter narrows draw history listings.
type DrawRecordFilter struct {
	CategoryID *string
	Search     string
	From       *time.Time
	To         *time.Time
	Limit      int
}

// ExportType selects which record set is exported.
type ExportType string

const (
	ExportTypeParticipants   ExportType = "participants"
	ExportTypeLotteryRecords ExportType = "lottery_records"
)

// IsValid reports whether t names a supported export.
func (t ExportType) IsValid() bool {
	return t == ExportTypeParticipants || t == ExportTypeLotteryRecords
}

// ExportFile is a base64 encoded CSV document ready for download.
type ExportFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	MimeType string `json:"mimeType"`
	Encoding string `json:"encoding"`
}

// ImportResult summarizes a participant import.
type ImportResult struct {
	Imported     int           `json:"imported"`
	Total        int           `json:"total"`
	Errors       []string      `json:"errors"`
	Participants []Participant `json:"participants"`
}
