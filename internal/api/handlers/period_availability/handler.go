package period_availability

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
)

const (
	msgInvalidApartmentID = "некорректный ID апартамента"
	msgInvalidPeriodID    = "некорректный ID периода"
)

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

// Handle GET /api/v1/apartments/{apartmentId}/periods/{periodId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/periods/{id}/availability - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	periodID, err := handlers.PathUUID(r, "periodId")
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/periods/{id}/availability - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	available, err := h.service.IsPeriodBookable(r.Context(), apartmentID, periodID)
	if err != nil {
		handlers.HandleError(w, h.logger, "GET /apartments/{id}/periods/{id}/availability", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PeriodAvailabilityResponse{
		ApartmentID: apartmentID.String(),
		PeriodID:    periodID.String(),
		Available:   available,
	})
}
