package handler

import (
	"net/http"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// HandleListDrawRecords lists draw history, most recent first
// @Summary Draw history
// @Tags lottery
// @Produce json
// @Param categoryId query string false "Category filter"
// @Param search query string false "Winner or prize substring"
// @Param from query string false "Inclusive lower bound (RFC3339)"
// @Param to query string false "Exclusive upper bound (RFC3339)"
// @Param limit query int false "Maximum records, 0 for all"
// @Success 200 {array} domain.DrawRecord
// @Failure 400 {object} ErrorResponse
// @Router /lottery/records [get]
func (h *RosterHandler) HandleListDrawRecords(w http.ResponseWriter, r *http.Request) {
	from, ok := parseTimeQuery(r, w, "from")
	if !ok {
		return
	}
	to, ok := parseTimeQuery(r, w, "to")
	if !ok {
		return
	}
	limit, ok := parseIntQuery(r, w, "limit")
	if !ok {
		return
	}

	records, err := h.service.ListDrawRecords(r.Context(), domain.DrawRecordFilter{
		CategoryID: GetOptionalQueryParam(r, "categoryId"),
		Search:     domain.StringValue(GetOptionalQueryParam(r, "search")),
		From:       from,
		To:         to,
		Limit:      limit,
	})
	if err != nil {
		respondServiceError(w, r, "List draw records", err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	if records == nil {
		records = []domain.DrawRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}
