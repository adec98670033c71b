package get_apartment

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
)

const msgInvalidApartmentID = "некорректный ID апартамента"

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

// Handle GET /api/v1/apartments/{apartmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /apartments/{id} - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	apt, err := h.service.Get(r.Context(), apartmentID)
	if err != nil {
		handlers.HandleError(w, h.logger, "GET /apartments/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromApartment(apt))
}
