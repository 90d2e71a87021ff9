package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Draw metric names
const (
	MetricNameDrawsTotal        = "draws_total"
	MetricNameDrawWinnersTotal  = "draw_winners_total"
	MetricNameDrawDuration      = "draw_duration_seconds"
	MetricNameDrawCandidatePool = "draw_candidate_pool_size"
)

// Roster metric names
const (
	MetricNameParticipantsImported = "participants_imported_total"
	MetricNameImportRejectedRows   = "import_rejected_rows_total"
	MetricNameExportsTotal         = "exports_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Draw metric help text
const (
	HelpTextDrawsTotal        = "Total number of draws by result"
	HelpTextDrawWinnersTotal  = "Total number of winners persisted"
	HelpTextDrawDuration      = "Draw latency in seconds, lock wait included"
	HelpTextDrawCandidatePool = "Candidate pool size observed by successful draws"
)

// Roster metric help text
const (
	HelpTextParticipantsImported = "Total number of participants created by CSV import"
	HelpTextImportRejectedRows   = "Total number of CSV rows rejected during import"
	HelpTextExportsTotal         = "Total number of CSV exports by type"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelResult = "result"
)

// Draw results used as LabelResult values
const (
	DrawResultSuccess      = "success"
	DrawResultInvalid      = "invalid"
	DrawResultRejected     = "rejected"
	DrawResultPersistError = "persist_failed"
	DrawResultCanceled     = "canceled"
)

// UnmatchedRoute labels requests that no route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PoolSizeBuckets spans small office raffles up to large event rosters
var PoolSizeBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000}
