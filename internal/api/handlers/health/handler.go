package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
)

const readyTimeout = 2 * time.Second

// Pinger хранилище, доступность которого проверяет readyz
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	store  Pinger
	logger Logger
}

func NewHandler(store Pinger, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

type statusResponse struct {
	Status string `json:"status"`
}

// Live GET /healthz
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// Ready GET /readyz
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		h.logger.Warn("GET /readyz - Store ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ready"})
}
