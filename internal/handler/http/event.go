package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
	"github.com/staffdeck/staffdeck-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
}

type EventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &EventHandlerImpl{eventService: eventService}
}

// List implements EventHandler.
func (e *EventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := event.EventFilter{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if clientID := r.URL.Query().Get("client_id"); clientID != "" {
		filter.ClientID = &clientID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if from, err := time.Parse(time.RFC3339, r.URL.Query().Get("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse(time.RFC3339, r.URL.Query().Get("to")); err == nil {
		filter.To = &to
	}

	result, err := e.eventService.ListEvents(r.Context(), filter)
	if err != nil {
		slog.Error("List events service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Events, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}

// Create implements EventHandler.
func (e *EventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req event.CreateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.eventService.CreateEvent(r.Context(), req)
	if err != nil {
		slog.Error("Create event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event created successfully", created)
}

// GetByID implements EventHandler.
func (e *EventHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := e.eventService.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements EventHandler.
func (e *EventHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req event.UpdateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := e.eventService.UpdateEvent(r.Context(), req)
	if err != nil {
		slog.Error("Update event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event updated successfully", updated)
}

// Delete implements EventHandler.
func (e *EventHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := e.eventService.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Event deleted successfully", nil)
}

// Calendar implements EventHandler.
func (e *EventHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	year := urlParamInt(r, "year")
	month := urlParamInt(r, "month")

	result, err := e.eventService.Calendar(r.Context(), year, month)
	if err != nil {
		slog.Error("Calendar service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func urlParamInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil {
		return 0
	}
	return v
}
