package check_availability

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

const (
	msgInvalidApartmentID = "некорректный ID апартамента"
	msgInvalidDates       = "некорректные даты, ожидаются параметры start и end в формате YYYY-MM-DD"
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

// Handle GET /api/v1/apartments/{apartmentId}/availability?start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/availability - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	start, err := handlers.QueryDate(r, "start")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}
	end, err := handlers.QueryDate(r, "end")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	available, err := h.service.IsAvailable(r.Context(), apartmentID, start, end)
	if err != nil {
		handlers.HandleError(w, h.logger, "GET /apartments/{id}/availability", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		ApartmentID: apartmentID.String(),
		StartDate:   daterange.Format(start),
		EndDate:     daterange.Format(end),
		Available:   available,
	})
}
