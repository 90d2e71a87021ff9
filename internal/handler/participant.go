package handler

import (
	"net/http"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// ParticipantRequest is the body of participant create and update
type ParticipantRequest struct {
	Name       string                 `json:"name" validate:"notblank,max=200"`
	CategoryID *string                `json:"categoryId"`
	ExtraInfo  map[string]interface{} `json:"extraInfo"`
	IsActive   *bool                  `json:"isActive"`
}

func (req ParticipantRequest) toDomain() domain.NewParticipant {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return domain.NewParticipant{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		ExtraInfo:  req.ExtraInfo,
		IsActive:   active,
	}
}

// HandleListParticipants lists participants
// @Summary List participants
// @Tags participants
// @Produce json
// @Param categoryId query string false "Category filter"
// @Param uncategorized query bool false "Only participants without a category"
// @Param active query bool false "Only active participants"
// @Param search query string false "Name substring"
// @Success 200 {array} domain.Participant
// @Failure 400 {object} ErrorResponse
// @Router /participants [get]
func (h *RosterHandler) HandleListParticipants(w http.ResponseWriter, r *http.Request) {
	uncategorized, ok := parseBoolQuery(r, w, "uncategorized")
	if !ok {
		return
	}
	activeOnly, ok := parseBoolQuery(r, w, "active")
	if !ok {
		return
	}

	filter := domain.ParticipantFilter{
		CategoryID:    GetOptionalQueryParam(r, "categoryId"),
		Uncategorized: uncategorized,
		ActiveOnly:    activeOnly,
		Search:        domain.StringValue(GetOptionalQueryParam(r, "search")),
	}

	participants, err := h.service.ListParticipants(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "List participants", err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	if participants == nil {
		participants = []domain.Participant{}
	}
	respondJSON(w, http.StatusOK, participants)
}

// HandleGetParticipant returns one participant
// @Summary Get participant
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} domain.Participant
// @Failure 404 {object} ErrorResponse
// @Router /participants/{id} [get]
func (h *RosterHandler) HandleGetParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	participant, err := h.service.GetParticipant(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get participant", err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, participant)
}

// HandleCreateParticipant creates a participant, active unless isActive is false
// @Summary Create participant
// @Tags participants
// @Accept json
// @Produce json
// @Param request body ParticipantRequest true "Participant"
// @Success 201 {object} domain.Participant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /participants [post]
func (h *RosterHandler) HandleCreateParticipant(w http.ResponseWriter, r *http.Request) {
	var req ParticipantRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateParticipant, nil); err != nil {
		return
	}
	participant, err := h.service.CreateParticipant(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, OpCreateParticipant, err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusCreated, participant)
}

// HandleUpdateParticipant replaces a participant's editable fields
// @Summary Update participant
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID"
// @Param request body ParticipantRequest true "Participant"
// @Success 200 {object} domain.Participant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /participants/{id} [put]
func (h *RosterHandler) HandleUpdateParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	var req ParticipantRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpUpdateParticipant, nil); err != nil {
		return
	}
	participant, err := h.service.UpdateParticipant(r.Context(), id, req.toDomain())
	if err != nil {
		respondServiceError(w, r, OpUpdateParticipant, err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, participant)
}

// HandleSetParticipantActive toggles whether a participant can be drawn
// @Summary Set participant active flag
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID"
// @Param request body SetActiveRequest true "Active flag"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /participants/{id}/active [post]
func (h *RosterHandler) HandleSetParticipantActive(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetActive, nil); err != nil {
		return
	}
	if err := h.service.SetParticipantActive(r.Context(), id, *req.Active); err != nil {
		respondServiceError(w, r, OpSetActive, err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgParticipantActiveSet})
}

// HandleDeleteParticipant deletes a participant. Past draw records keep the name.
// @Summary Delete participant
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /participants/{id} [delete]
func (h *RosterHandler) HandleDeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteParticipant(r.Context(), id); err != nil {
		respondServiceError(w, r, "Delete participant", err, CodeStorageUnavailable, ErrMsgStorageUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgParticipantDeleted})
}
