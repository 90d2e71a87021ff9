package csvio

// Export document settings
const (
	MimeTypeCSV     = "text/csv;charset=utf-8"
	EncodingBase64  = "base64"
	FilenameDateFmt = "2006-01-02"
	FilenamePattern = "%s_%s.csv"
)

// Column headers. Column 0 and 1 of the participant header are the
// columns the importer reads, so an export can be imported back as-is.
var (
	ParticipantHeader = []string{"Name", "CategoryId", "Active", "CreatedAt"}
	DrawRecordHeader  = []string{"WinnerName", "PrizeName", "LotteryDate", "CategoryId", "ParticipantId"}
)

// Import row error templates
const (
	ErrFmtLine         = "line %d: %s"
	ErrMsgNameRequired = "name is required"
)

const (
	quoteChar  = '"'
	fieldSep   = ','
	lineSep    = "\n"
	quoteStr   = `"`
	escapedQte = `""`
)
