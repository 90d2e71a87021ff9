package validation

// Error messages
const (
	ErrMsgResolveSchema = "failed to resolve schema path"
	ErrMsgReadSchema    = "failed to read schema file"
	ErrMsgParseSchema   = "failed to parse schema JSON"
	ErrMsgCompileSchema = "failed to compile schema"

	// ErrFmtViolation renders one violation as "<instance location>: <keyword>"
	ErrFmtViolation = "%s: %s"
)
