package handler

import (
	"net/http"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/roster"
)

// RosterHandler serves category, participant and history management
type RosterHandler struct {
	service roster.Service
}

func NewRosterHandler(service roster.Service) *RosterHandler {
	return &RosterHandler{service: service}
}

// CategoryRequest is the body of category create and update
type CategoryRequest struct {
	Name        string  `json:"name" validate:"notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// SetActiveRequest toggles a category or participant
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// HandleListCategories lists every category
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 503 {object} ErrorResponse
// @Router /categories [get]
func (h *RosterHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		respondServiceError(w, r, "List categories", err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	respondJSON(w, http.StatusOK, categories)
}

// HandleGetCategory returns one category
// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [get]
func (h *RosterHandler) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get category", err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// HandleCreateCategory creates a category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "Category"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Router /categories [post]
func (h *RosterHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateCategory, nil); err != nil {
		return
	}
	category, err := h.service.CreateCategory(r.Context(), domain.CategoryInput{Name: req.Name, Description: req.Description})
	if err != nil {
		respondServiceError(w, r, OpCreateCategory, err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

// HandleUpdateCategory renames a category or changes its description
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body CategoryRequest true "Category"
// @Success 200 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [put]
func (h *RosterHandler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpUpdateCategory, nil); err != nil {
		return
	}
	category, err := h.service.UpdateCategory(r.Context(), id, domain.CategoryInput{Name: req.Name, Description: req.Description})
	if err != nil {
		respondServiceError(w, r, OpUpdateCategory, err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// HandleSetCategoryActive activates or deactivates a category
// @Summary Set category active flag
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body SetActiveRequest true "Active flag"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id}/active [post]
func (h *RosterHandler) HandleSetCategoryActive(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetCategoryActive, nil); err != nil {
		return
	}
	if err := h.service.SetCategoryActive(r.Context(), id, *req.Active); err != nil {
		respondServiceError(w, r, OpSetCategoryActive, err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCategoryActiveSet})
}

// HandleDeleteCategory deletes a category without active participants
// @Summary Delete category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /categories/{id} [delete]
func (h *RosterHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		respondServiceError(w, r, "Delete category", err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCategoryDeleted})
}

// HandleCategoryCounts returns active participant counts per category.
// Uncategorized participants are reported under the empty key.
// @Summary Active participant counts
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]int
// @Router /categories/counts [get]
func (h *RosterHandler) HandleCategoryCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.ActiveParticipantCounts(r.Context())
	if err != nil {
		respondServiceError(w, r, "Count participants", err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}
