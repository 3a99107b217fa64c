package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/client"
	"github.com/staffdeck/staffdeck-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &ClientHandlerImpl{clientService: clientService}
}

// List implements ClientHandler.
func (c *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := client.ClientFilter{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}

	result, err := c.clientService.ListClients(r.Context(), filter)
	if err != nil {
		slog.Error("List clients service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Clients, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}

// Create implements ClientHandler.
func (c *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.clientService.CreateClient(r.Context(), req)
	if err != nil {
		slog.Error("Create client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", created)
}

// GetByID implements ClientHandler.
func (c *ClientHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := c.clientService.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements ClientHandler.
func (c *ClientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req client.UpdateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := c.clientService.UpdateClient(r.Context(), req)
	if err != nil {
		slog.Error("Update client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated successfully", updated)
}

// Delete implements ClientHandler.
func (c *ClientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.clientService.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

func totalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := totalCount / int64(limit)
	if totalCount%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
