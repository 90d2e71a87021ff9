package handler

import (
	"net/http"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/roster"
)

// TransferHandler serves CSV import and export
type TransferHandler struct {
	service roster.Service
}

func NewTransferHandler(service roster.Service) *TransferHandler {
	return &TransferHandler{service: service}
}

// ImportRequest is the body of POST /participants/import
type ImportRequest struct {
	CSVData    string  `json:"csvData" validate:"notblank"`
	CategoryID *string `json:"categoryId"`
}

// HandleImport imports participants from CSV text
// @Summary Import participants
// @Description Parses CSV (header row first, then name[,categoryId]) and inserts every valid row
// @Tags participants
// @Accept json
// @Produce json
// @Param request body ImportRequest true "CSV import"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /participants/import [post]
func (h *TransferHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	codeFor := func(string) string { return CodeCSVRequired }
	if err := DecodeAndValidateRequest(r, w, &req, OpImport, codeFor); err != nil {
		return
	}

	result, err := h.service.ImportParticipants(r.Context(), req.CSVData, req.CategoryID)
	if err != nil {
		respondServiceError(w, r, OpImport, err, CodeImportFailed, ErrMsgImportFailed)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ExportRequest is the body of POST /export
type ExportRequest struct {
	Type       string  `json:"type" validate:"required,oneof=participants lottery_records"`
	CategoryID *string `json:"categoryId"`
}

// HandleExport renders participants or draw records as a base64 CSV file
// @Summary Export CSV
// @Tags export
// @Accept json
// @Produce json
// @Param request body ExportRequest true "Export request"
// @Success 200 {object} domain.ExportFile
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /export [post]
func (h *TransferHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	codeFor := func(string) string { return CodeInvalidExportType }
	if err := DecodeAndValidateRequest(r, w, &req, OpExport, codeFor); err != nil {
		return
	}

	file, err := h.service.Export(r.Context(), domain.ExportType(req.Type), req.CategoryID)
	if err != nil {
		respondServiceError(w, r, OpExport, err, CodeExportFailed, ErrMsgExportFailed)
		return
	}

	respondJSON(w, http.StatusOK, file)
}
