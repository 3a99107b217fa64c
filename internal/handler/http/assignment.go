package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	ListByEvent(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	SetAttendance(w http.ResponseWriter, r *http.Request)
}

type AssignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &AssignmentHandlerImpl{assignmentService: assignmentService}
}

// ListByEvent implements AssignmentHandler.
func (a *AssignmentHandlerImpl) ListByEvent(w http.ResponseWriter, r *http.Request) {
	assignments, err := a.assignmentService.ListByEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("List assignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, assignments)
}

// Create implements AssignmentHandler.
func (a *AssignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create assignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EventID = chi.URLParam(r, "id")

	created, err := a.assignmentService.CreateAssignment(r.Context(), req)
	if err != nil {
		slog.Error("Create assignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment created successfully", created)
}

// GetByID implements AssignmentHandler.
func (a *AssignmentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := a.assignmentService.GetAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements AssignmentHandler.
func (a *AssignmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req assignment.UpdateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update assignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := a.assignmentService.UpdateAssignment(r.Context(), req)
	if err != nil {
		slog.Error("Update assignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment updated successfully", updated)
}

// Delete implements AssignmentHandler.
func (a *AssignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := a.assignmentService.DeleteAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete assignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment deleted successfully", nil)
}

// CheckIn implements AssignmentHandler.
func (a *AssignmentHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	updated, err := a.assignmentService.CheckIn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in successfully", updated)
}

// CheckOut implements AssignmentHandler.
func (a *AssignmentHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	updated, err := a.assignmentService.CheckOut(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", updated)
}

// SetAttendance implements AssignmentHandler.
func (a *AssignmentHandlerImpl) SetAttendance(w http.ResponseWriter, r *http.Request) {
	var req assignment.SetAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := a.assignmentService.SetAttendance(r.Context(), req)
	if err != nil {
		slog.Error("SetAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", updated)
}
