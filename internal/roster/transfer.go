package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/LuckyDraw_Go/internal/csvio"
	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/metrics"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// ImportParticipants parses csvData and inserts every valid row in one
// transaction. Rows naming an unknown category are rejected per line. A
// non-empty categoryID overrides the per-row category and must exist.
func (s *service) ImportParticipants(ctx context.Context, csvData string, categoryID *string) (*domain.ImportResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgImportCalled, "bytes", len(csvData), "category_id", domain.StringValue(categoryID))

	if strings.TrimSpace(csvData) == "" {
		return nil, domain.ErrCSVRequired
	}

	override := trimmedPtr(categoryID)
	if override != nil {
		if _, err := s.GetCategory(ctx, *override); err != nil {
			return nil, err
		}
	}

	parsed := csvio.ParseParticipants(csvData, override)
	if parsed.TotalDataLines == 0 {
		return nil, domain.ErrCSVNoData
	}

	rows, rowErrs, err := s.checkCategories(ctx, parsed.ValidRows)
	if err != nil {
		return nil, err
	}
	errs := append(parsed.ErrorStrings(), rowErrs...)

	if len(rows) == 0 {
		metrics.RecordImport(0, len(errs))
		return nil, fmt.Errorf(ErrFmtRowErrors, domain.ErrNoValidRows, strings.Join(errs, rowErrorSep))
	}

	now := s.timestamp()
	participants := make([]domain.Participant, len(rows))
	for i, row := range rows {
		participants[i] = domain.Participant{
			ID:         s.newID(),
			Name:       row.Participant.Name,
			CategoryID: row.Participant.CategoryID,
			IsActive:   row.Participant.IsActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	if err := s.insertBatch(ctx, participants); err != nil {
		return nil, err
	}

	metrics.RecordImport(len(participants), len(errs))
	log.Info(LogMsgImportCompleted, "imported", len(participants), "total", parsed.TotalDataLines, "rejected", len(errs))

	return &domain.ImportResult{
		Imported:     len(participants),
		Total:        parsed.TotalDataLines,
		Errors:       errs,
		Participants: participants,
	}, nil
}

func (s *service) insertBatch(ctx context.Context, participants []domain.Participant) error {
	tx, err := s.repo.BeginImportTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextBeginImport, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertParticipants(ctx, participants); err != nil {
		return fmt.Errorf("%s: %w", ErrContextInsertImport, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextCommitImport, err)
	}
	return nil
}

// checkCategories drops rows whose category does not exist. Cached
// categories are served from memory and the rest are fetched in one query.
func (s *service) checkCategories(ctx context.Context, rows []csvio.Row) ([]csvio.Row, []string, error) {
	known := make(map[string]bool)
	var missing []string
	for _, row := range rows {
		id := domain.StringValue(row.Participant.CategoryID)
		if id == "" {
			continue
		}
		if _, seen := known[id]; seen {
			continue
		}
		_, cached := s.cache.Get(id)
		known[id] = cached
		if !cached {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		found, err := s.repo.GetCategoriesByIDs(ctx, missing)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrContextGetCategory, err)
		}
		for i := range found {
			known[found[i].ID] = true
			s.cache.Set(&found[i])
		}
	}

	accepted := rows[:0:0]
	var errs []string
	for _, row := range rows {
		id := domain.StringValue(row.Participant.CategoryID)
		if id != "" && !known[id] {
			errs = append(errs, csvio.RowError{Line: row.Line, Reason: fmt.Sprintf(ErrFmtUnknownCategory, id)}.Error())
			continue
		}
		accepted = append(accepted, row)
	}
	return accepted, errs, nil
}

// Export renders the requested record set as a base64 CSV document. A
// non-empty categoryID restricts the export to that category.
func (s *service) Export(ctx context.Context, exportType domain.ExportType, categoryID *string) (*domain.ExportFile, error) {
	logger.FromContext(ctx).Info(LogMsgExportCalled, "type", exportType, "category_id", domain.StringValue(categoryID))

	if !exportType.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidExportType, exportType)
	}
	category := trimmedPtr(categoryID)

	var (
		content []byte
		err     error
	)
	switch exportType {
	case domain.ExportTypeParticipants:
		var participants []domain.Participant
		participants, err = s.ListParticipants(ctx, domain.ParticipantFilter{CategoryID: category})
		if err != nil {
			return nil, err
		}
		content, err = csvio.FormatParticipants(participants)
	case domain.ExportTypeLotteryRecords:
		var records []domain.DrawRecord
		records, err = s.ListDrawRecords(ctx, domain.DrawRecordFilter{CategoryID: category})
		if err != nil {
			return nil, err
		}
		content, err = csvio.FormatDrawRecords(records)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFormatExport, err)
	}

	file := csvio.NewExportFile(exportType, content, s.now())
	metrics.RecordExport(exportType)
	return &file, nil
}
