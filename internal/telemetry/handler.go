package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ualcz/exame-backend-dtlabs-2025/internal/auth"
	"github.com/ualcz/exame-backend-dtlabs-2025/internal/httpx"
)

// Handler exposes the /data HTTP endpoints.
type Handler struct {
	store *Store
}

// NewHandler creates a Handler backed by the given Store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// IngestResponse is the acknowledgment returned by POST /data.
type IngestResponse struct {
	Message string `json:"message" example:"Data recorded successfully"`
}

// ---------------------------------------------------------------------------
// POST /data
// ---------------------------------------------------------------------------

// Ingest godoc
//
//	@Summary		Ingest a sensor reading
//	@Description	Appends one reading for a known server and refreshes its liveness timestamp.
//	@Description	Unauthenticated: sensor agents hold only a server id, not a user credential.
//	@Tags			data
//	@Accept			json
//	@Produce		json
//	@Param			reading	body		IngestRequest	true	"Reading to record"
//	@Success		201		{object}	IngestResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/data [post]
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	reading, violations := req.Validate()
	if len(violations) > 0 {
		httpx.WriteViolations(w, violations)
		return
	}

	err := h.store.Insert(r.Context(), reading)
	switch {
	case errors.Is(err, ErrServerNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Server not found")
		return
	case err != nil:
		slog.Error("ingest reading", "server_id", reading.ServerID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to record data")
		return
	}

	slog.Debug("reading recorded", "server_id", reading.ServerID, "timestamp", reading.Timestamp)

	httpx.WriteJSON(w, http.StatusCreated, IngestResponse{Message: "Data recorded successfully"})
}

// ---------------------------------------------------------------------------
// GET /data
// ---------------------------------------------------------------------------

// Query godoc
//
//	@Summary		Query sensor readings
//	@Description	Returns readings for servers the caller owns, optionally filtered by server,
//	@Description	time range, and channel, and optionally re-expressed as time-bucketed averages.
//	@Tags			data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			server_id	query		string	false	"Filter by server ID"
//	@Param			start_time	query		string	false	"Start time, inclusive (RFC3339)"
//	@Param			end_time	query		string	false	"End time, inclusive (RFC3339)"
//	@Param			sensor_type	query		string	false	"Channel (temperature, humidity, voltage, current)"
//	@Param			aggregation	query		string	false	"Bucket size (minute, hour, day)"
//	@Success		200			{array}		DataPoint
//	@Failure		400			{object}	httpx.ErrorResponse
//	@Failure		401			{object}	httpx.ErrorResponse
//	@Router			/data [get]
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	q := r.URL.Query()

	sensorType := q.Get("sensor_type")
	if sensorType != "" && !ValidChannel(sensorType) {
		httpx.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid sensor type. Must be one of: %s", strings.Join(Channels, ", ")))
		return
	}

	aggregation := q.Get("aggregation")
	if aggregation != "" && !ValidAggregation(aggregation) {
		httpx.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid aggregation. Must be one of: %s", strings.Join(AggregationLevels, ", ")))
		return
	}

	filter := Filter{
		ServerID: q.Get("server_id"),
		Channel:  sensorType,
	}

	var err error
	if filter.Start, err = parseTimeParam(q.Get("start_time"), "start_time"); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.End, err = parseTimeParam(q.Get("end_time"), "end_time"); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var points []DataPoint
	if aggregation != "" {
		points, err = h.store.QueryAggregated(r.Context(), user.ID, filter, aggregation)
	} else {
		points, err = h.store.Query(r.Context(), user.ID, filter)
	}
	if err != nil {
		slog.Error("query readings", "owner", user.Username, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to query data")
		return
	}

	if sensorType != "" {
		for i := range points {
			points[i] = keepChannel(points[i], sensorType)
		}
	}
	if points == nil {
		points = []DataPoint{}
	}

	httpx.WriteJSON(w, http.StatusOK, points)
}

// parseTimeParam parses an optional RFC3339 query parameter.
func parseTimeParam(value, name string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: must be an RFC3339 timestamp", name)
	}
	return &t, nil
}

// keepChannel blanks every channel except the requested one, so a filtered
// response carries only the channel the caller asked for.
func keepChannel(p DataPoint, channel string) DataPoint {
	out := DataPoint{Timestamp: p.Timestamp}
	switch channel {
	case ChannelTemperature:
		out.Temperature = p.Temperature
	case ChannelHumidity:
		out.Humidity = p.Humidity
	case ChannelVoltage:
		out.Voltage = p.Voltage
	case ChannelCurrent:
		out.Current = p.Current
	}
	return out
}
