package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/operator"
	"github.com/staffdeck/staffdeck-backend-go/internal/handler/http/response"
)

type OperatorHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type OperatorHandlerImpl struct {
	operatorService operator.OperatorService
}

func NewOperatorHandler(operatorService operator.OperatorService) OperatorHandler {
	return &OperatorHandlerImpl{operatorService: operatorService}
}

// List implements OperatorHandler.
func (o *OperatorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := operator.OperatorFilter{
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
		ActiveOnly: r.URL.Query().Get("active_only") == "true",
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	result, err := o.operatorService.ListOperators(r.Context(), filter)
	if err != nil {
		slog.Error("List operators service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Operators, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}

// Create implements OperatorHandler.
func (o *OperatorHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req operator.CreateOperatorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create operator decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := o.operatorService.CreateOperator(r.Context(), req)
	if err != nil {
		slog.Error("Create operator service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Operator created successfully", created)
}

// GetByID implements OperatorHandler.
func (o *OperatorHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := o.operatorService.GetOperator(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements OperatorHandler.
func (o *OperatorHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req operator.UpdateOperatorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update operator decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := o.operatorService.UpdateOperator(r.Context(), req)
	if err != nil {
		slog.Error("Update operator service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Operator updated successfully", updated)
}

// Delete implements OperatorHandler.
func (o *OperatorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := o.operatorService.DeleteOperator(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete operator service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Operator deleted successfully", nil)
}
