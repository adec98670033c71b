package available_periods

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
)

const msgInvalidApartmentID = "некорректный ID апартамента"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/apartments/{apartmentId}/available-periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/available-periods - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	periods, err := h.service.AvailablePeriods(r.Context(), apartmentID)
	if err != nil {
		handlers.HandleError(w, h.logger, "GET /apartments/{id}/available-periods", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromPeriods(periods))
}
