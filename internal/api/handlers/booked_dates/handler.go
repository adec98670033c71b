package booked_dates

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
)

const msgInvalidApartmentID = "некорректный ID апартамента"

// BookedDatesResponse занятые даты для календаря
type BookedDatesResponse struct {
	ApartmentID string   `json:"apartmentId"`
	Dates       []string `json:"dates"`
}

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

// Handle GET /api/v1/apartments/{apartmentId}/booked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/booked-dates - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	days, err := h.service.BookedDates(r.Context(), apartmentID)
	if err != nil {
		handlers.HandleError(w, h.logger, "GET /apartments/{id}/booked-dates", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookedDatesResponse{
		ApartmentID: apartmentID.String(),
		Dates:       handlers.FormatDates(days),
	})
}
