package handler

import (
	"net/http"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
)

// DefaultWinnerCount is used when a draw request omits winnerCount
const DefaultWinnerCount = 1

// LotteryHandler serves draw requests
type LotteryHandler struct {
	service lottery.Service
}

func NewLotteryHandler(service lottery.Service) *LotteryHandler {
	return &LotteryHandler{service: service}
}

// DrawRequest is the body of POST /lottery/draw
type DrawRequest struct {
	CategoryID  string   `json:"categoryId" validate:"notblank"`
	PrizeNames  []string `json:"prizeNames" validate:"required,min=1,dive,notblank"`
	WinnerCount *int     `json:"winnerCount" validate:"omitempty,gte=1"`
}

// drawErrorCode keeps the category → prizes → count precedence of the draw service
func drawErrorCode(field string) string {
	switch field {
	case "categoryId":
		return CodeCategoryRequired
	case "prizeNames":
		return CodePrizesRequired
	case "winnerCount":
		return CodeInvalidCount
	}
	return ""
}

// HandleDraw draws winners from the active participants of a category
// @Summary Draw winners
// @Description Samples winnerCount distinct active participants and assigns prizes cyclically
// @Tags lottery
// @Accept json
// @Produce json
// @Param request body DrawRequest true "Draw request"
// @Success 200 {object} domain.DrawResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /lottery/draw [post]
func (h *LotteryHandler) HandleDraw(w http.ResponseWriter, r *http.Request) {
	var req DrawRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpDraw, drawErrorCode); err != nil {
		return
	}

	count := DefaultWinnerCount
	if req.WinnerCount != nil {
		count = *req.WinnerCount
	}

	result, err := h.service.Draw(r.Context(), domain.DrawRequest{
		CategoryID:  req.CategoryID,
		PrizeNames:  req.PrizeNames,
		WinnerCount: count,
	})
	if err != nil {
		respondServiceError(w, r, OpDraw, err, CodePersistFailed, ErrMsgPersistFailed)
		return
	}

	logger.FromContext(r.Context()).Debug("Draw response", "winners", len(result.Winners))
	respondJSON(w, http.StatusOK, result)
}
