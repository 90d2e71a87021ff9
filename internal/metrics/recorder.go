package metrics

import (
	"time"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// RecordDraw records the outcome of one draw.
func RecordDraw(result string, winners, poolSize int, elapsed time.Duration) {
	DrawsTotal.WithLabelValues(result).Inc()
	DrawDuration.WithLabelValues(result).Observe(elapsed.Seconds())
	if result == DrawResultSuccess {
		DrawWinnersTotal.Add(float64(winners))
		DrawCandidatePool.Observe(float64(poolSize))
	}
}

// RecordImport records accepted and rejected rows of one CSV import.
func RecordImport(imported, rejected int) {
	ParticipantsImported.Add(float64(imported))
	ImportRejectedRows.Add(float64(rejected))
}

// RecordExport counts a generated export document.
func RecordExport(exportType domain.ExportType) {
	ExportsTotal.WithLabelValues(string(exportType)).Inc()
}
