package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) APIError {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Error
}

func TestHandleDraw(t *testing.T) {
	drawnAt := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	okResult := &domain.DrawResult{
		CategoryID:        "cat1",
		TotalParticipants: 4,
		Winners: []domain.Winner{
			{ID: "p1", Name: "Ann", PrizeName: "Car", LotteryDate: drawnAt},
			{ID: "p3", Name: "Cy", PrizeName: "Bike", LotteryDate: drawnAt},
		},
	}

	tests := []struct {
		name          string
		body          string
		setupMock     func(*MockDrawService)
		wantStatus    int
		wantCode      string
		wantRetryable bool
	}{
		{
			name: "success",
			body: `{"categoryId":"cat1","prizeNames":["Car","Bike"],"winnerCount":2}`,
			setupMock: func(m *MockDrawService) {
				m.On("Draw", mock.Anything, domain.DrawRequest{CategoryID: "cat1", PrizeNames: []string{"Car", "Bike"}, WinnerCount: 2}).
					Return(okResult, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "winner count defaults to one",
			body: `{"categoryId":"cat1","prizeNames":["Car"]}`,
			setupMock: func(m *MockDrawService) {
				m.On("Draw", mock.Anything, domain.DrawRequest{CategoryID: "cat1", PrizeNames: []string{"Car"}, WinnerCount: 1}).
					Return(okResult, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing category wins over other failures",
			body:       `{"categoryId":" ","prizeNames":[],"winnerCount":0}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeCategoryRequired,
		},
		{
			name:       "no prizes",
			body:       `{"categoryId":"cat1","prizeNames":[]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodePrizesRequired,
		},
		{
			name:       "blank prize",
			body:       `{"categoryId":"cat1","prizeNames":["Car",""]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodePrizesRequired,
		},
		{
			name:       "whitespace-only prize",
			body:       `{"categoryId":"cat1","prizeNames":["Car","  \t"]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodePrizesRequired,
		},
		{
			name: "prize labels forwarded as sent",
			body: `{"categoryId":"cat1","prizeNames":[" Grand Prize ","Bike "]}`,
			setupMock: func(m *MockDrawService) {
				m.On("Draw", mock.Anything, domain.DrawRequest{CategoryID: "cat1", PrizeNames: []string{" Grand Prize ", "Bike "}, WinnerCount: 1}).
					Return(okResult, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero winners",
			body:       `{"categoryId":"cat1","prizeNames":["Car"],"winnerCount":0}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidCount,
		},
		{
			name:       "malformed body",
			body:       `{"categoryId":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidRequest,
		},
		{
			name: "no candidates",
			body: `{"categoryId":"cat1","prizeNames":["Car"]}`,
			setupMock: func(m *MockDrawService) {
				m.On("Draw", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: cat1", domain.ErrNoCandidates))
			},
			wantStatus: http.StatusConflict,
			wantCode:   CodeNoCandidates,
		},
		{
			name: "insufficient candidates",
			body: `{"categoryId":"cat1","prizeNames":["Car"],"winnerCount":5}`,
			setupMock: func(m *MockDrawService) {
				m.On("Draw", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: requested 5, available 2", domain.ErrInsufficientCandidates))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   CodeInsufficientCandidates,
		},
		{
			name: "persist failure is retryable",
			body: `{"categoryId":"cat1","prizeNames":["Car"]}`,
			setupMock: func(m *MockDrawService) {
				m.On("Draw", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: commit: connection reset", domain.ErrPersistFailed))
			},
			wantStatus:    http.StatusServiceUnavailable,
			wantCode:      CodePersistFailed,
			wantRetryable: true,
		},
		{
			name: "unmapped error falls back to persist failure",
			body: `{"categoryId":"cat1","prizeNames":["Car"]}`,
			setupMock: func(m *MockDrawService) {
				m.On("Draw", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			wantStatus:    http.StatusServiceUnavailable,
			wantCode:      CodePersistFailed,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockDrawService{}
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			h := NewLotteryHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/lottery/draw", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.HandleDraw(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode == "" {
				var got domain.DrawResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Len(t, got.Winners, 2)
				assert.Equal(t, 4, got.TotalParticipants)
			} else {
				apiErr := decodeError(t, w)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				assert.Equal(t, tt.wantRetryable, apiErr.Retryable)
				assert.NotEmpty(t, apiErr.Message)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleDraw_PersistMessageHidesCause(t *testing.T) {
	svc := &MockDrawService{}
	svc.On("Draw", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: insert: pq password=secret", domain.ErrPersistFailed))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lottery/draw", strings.NewReader(`{"categoryId":"c","prizeNames":["P"]}`))
	w := httptest.NewRecorder()
	NewLotteryHandler(svc).HandleDraw(w, req)

	apiErr := decodeError(t, w)
	assert.Equal(t, ErrMsgPersistFailed, apiErr.Message)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestHandleDraw_BodyTooLarge(t *testing.T) {
	svc := &MockDrawService{}

	body := `{"categoryId":"` + strings.Repeat("x", 1024) + `","prizeNames":["P"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lottery/draw", strings.NewReader(body))
	w := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(w, req.Body, 64)

	NewLotteryHandler(svc).HandleDraw(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, CodeRequestTooLarge, decodeError(t, w).Code)
	svc.AssertNotCalled(t, "Draw", mock.Anything, mock.Anything)
}
