package handler

import (
	"net/http"
)

// HandleGetCacheStats returns category cache statistics
// GET /api/v1/admin/cache/stats
// @Summary Get category cache stats
// @Description Returns cache hit/miss statistics for monitoring
// @Tags admin
// @Produce json
// @Success 200 {object} roster.CacheStats
// @Router /admin/cache/stats [get]
func (h *RosterHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.CacheStats())
}
