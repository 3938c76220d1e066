package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/intern"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/response"
)

type InternHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	AttendanceHistory(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	PerformanceReviews(w http.ResponseWriter, r *http.Request)
	SubmitComplaint(w http.ResponseWriter, r *http.Request)
}

type internHandlerImpl struct {
	internService intern.InternService
}

func NewInternHandler(internService intern.InternService) InternHandler {
	return &internHandlerImpl{internService: internService}
}

// Dashboard implements InternHandler.
func (h *internHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	dashboard, err := h.internService.Dashboard(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dashboard)
}

// AttendanceHistory implements InternHandler.
func (h *internHandlerImpl) AttendanceHistory(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	history, err := h.internService.AttendanceHistory(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, history)
}

// Profile implements InternHandler.
func (h *internHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.internService.Profile(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// PerformanceReviews implements InternHandler.
func (h *internHandlerImpl) PerformanceReviews(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reviews, err := h.internService.PerformanceReviews(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reviews)
}

// SubmitComplaint implements InternHandler.
func (h *internHandlerImpl) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req intern.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode complaint", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	complaint, err := h.internService.SubmitComplaint(r.Context(), identity, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Complaint submitted successfully.", complaint)
}
