package servers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ualcz/exame-backend-dtlabs-2025/internal/auth"
	"github.com/ualcz/exame-backend-dtlabs-2025/internal/httpx"
)

// Handler exposes the server registration and health HTTP endpoints.
type Handler struct {
	store  *Store
	window time.Duration
}

// NewHandler creates a Handler backed by the given Store. window is the
// freshness window used to derive online/offline status.
func NewHandler(store *Store, window time.Duration) *Handler {
	return &Handler{store: store, window: window}
}

// ---------------------------------------------------------------------------
// Request / Response types
// ---------------------------------------------------------------------------

// CreateRequest is the body of POST /servers.
type CreateRequest struct {
	ServerName string `json:"server_name" example:"greenhouse-1"`
}

// ServerResponse is the shape returned by /servers and /health endpoints.
type ServerResponse struct {
	ServerID   string `json:"server_id"`
	ServerName string `json:"server_name"`
	Status     string `json:"status" example:"online"`
}

// ---------------------------------------------------------------------------
// POST /servers
// ---------------------------------------------------------------------------

// Create godoc
//
//	@Summary		Register a server
//	@Description	Registers a sensor-bearing server owned by the caller and assigns its identifier.
//	@Tags			servers
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			server	body		CreateRequest	true	"Server to register"
//	@Success		200		{object}	ServerResponse
//	@Failure		401		{object}	httpx.ErrorResponse
//	@Router			/servers [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.ServerName == "" {
		httpx.WriteError(w, http.StatusBadRequest, "server_name is required")
		return
	}

	srv, err := h.store.Create(r.Context(), user.ID, req.ServerName)
	if err != nil {
		slog.Error("create server", "owner", user.Username, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to register server")
		return
	}

	slog.Info("server registered", "server_id", srv.ID, "owner", user.Username)

	// last_seen was just set, so a fresh registration is always online.
	httpx.WriteJSON(w, http.StatusOK, ServerResponse{
		ServerID:   srv.ID,
		ServerName: srv.Name,
		Status:     StatusOnline,
	})
}

// ---------------------------------------------------------------------------
// GET /health/all
// ---------------------------------------------------------------------------

// HealthAll godoc
//
//	@Summary		Health of all owned servers
//	@Description	Derives online/offline status for every server the caller owns. Empty list when none.
//	@Tags			health
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		ServerResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Router			/health/all [get]
func (h *Handler) HealthAll(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	list, err := h.store.ListByOwner(r.Context(), user.ID)
	if err != nil {
		slog.Error("list servers", "owner", user.Username, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list servers")
		return
	}

	now := time.Now().UTC()
	out := make([]ServerResponse, len(list))
	for i, srv := range list {
		out[i] = ServerResponse{
			ServerID:   srv.ID,
			ServerName: srv.Name,
			Status:     Status(srv.LastSeen, now, h.window),
		}
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// ---------------------------------------------------------------------------
// GET /health/{server_id}
// ---------------------------------------------------------------------------

// HealthOne godoc
//
//	@Summary		Health of one server
//	@Description	Derives online/offline status for a single owned server.
//	@Tags			health
//	@Produce		json
//	@Security		BearerAuth
//	@Param			server_id	path		string	true	"Server ID"
//	@Success		200			{object}	ServerResponse
//	@Failure		404			{object}	httpx.ErrorResponse
//	@Router			/health/{server_id} [get]
func (h *Handler) HealthOne(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	serverID := chi.URLParam(r, "server_id")

	srv, err := h.store.GetOwned(r.Context(), serverID, user.ID)
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Server not found")
		return
	case err != nil:
		slog.Error("get server health", "server_id", serverID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to get server")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ServerResponse{
		ServerID:   srv.ID,
		ServerName: srv.Name,
		Status:     Status(srv.LastSeen, time.Now().UTC(), h.window),
	})
}
