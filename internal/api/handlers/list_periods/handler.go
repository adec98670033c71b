package list_periods

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
)

const msgInvalidApartmentID = "некорректный ID апартамента"

type Handler struct {
	service PeriodService
	logger  Logger
}

func NewHandler(service PeriodService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/apartments/{apartmentId}/periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /admin/apartments/{id}/periods - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	periods, err := h.service.List(r.Context(), apartmentID)
	if err != nil {
		handlers.HandleError(w, h.logger, "GET /admin/apartments/{id}/periods", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromPeriods(periods))
}
