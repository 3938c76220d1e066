package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SummaryHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListByDepartment(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	ApproveSingle(w http.ResponseWriter, r *http.Request)
	ApproveBulk(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &summaryHandlerImpl{summaryService: summaryService}
}

func decodeDepartmentDay(r *http.Request) (summary.DepartmentDayRequest, error) {
	var req summary.DepartmentDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return summary.DepartmentDayRequest{}, err
	}
	return req, nil
}

func departmentDayQuery(r *http.Request) summary.DepartmentDayRequest {
	return summary.DepartmentDayRequest{
		Date:         queryParam(r, "date"),
		DepartmentID: queryParam(r, "departmentId", "department_id"),
	}
}

// Generate implements SummaryHandler.
func (h *summaryHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeDepartmentDay(r)
	if err != nil {
		slog.Error("Failed to decode summary generation request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.summaryService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Summaries generated.", result)
}

// ListByDepartment implements SummaryHandler.
func (h *summaryHandlerImpl) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.summaryService.ListByDepartment(r.Context(), departmentDayQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// Export implements SummaryHandler.
func (h *summaryHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.summaryService.Export(r.Context(), departmentDayQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}

// ApproveSingle implements SummaryHandler.
func (h *summaryHandlerImpl) ApproveSingle(w http.ResponseWriter, r *http.Request) {
	approved, err := h.summaryService.ApproveSingle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Summary approved.", approved)
}

// ApproveBulk implements SummaryHandler.
func (h *summaryHandlerImpl) ApproveBulk(w http.ResponseWriter, r *http.Request) {
	req, err := decodeDepartmentDay(r)
	if err != nil {
		slog.Error("Failed to decode bulk approval request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.summaryService.ApproveBulk(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Approved %d summaries.", result.Approved), result)
}
