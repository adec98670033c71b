package list_apartments

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
)

type Handler struct {
	service ApartmentService
	logger  Logger
}

func NewHandler(service ApartmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/apartments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartments, err := h.service.List(r.Context())
	if err != nil {
		handlers.HandleError(w, h.logger, "GET /apartments", err)
		return
	}

	response := make([]*handlers.ApartmentResponse, 0, len(apartments))
	for _, apt := range apartments {
		response = append(response, handlers.FromApartment(apt))
	}

	h.logger.Info("GET /apartments - Listed %d apartments", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
