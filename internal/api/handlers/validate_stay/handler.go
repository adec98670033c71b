package validate_stay

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
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

// Handle GET /api/v1/apartments/{apartmentId}/stay-validation?start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/stay-validation - Invalid apartment ID: %v", err)
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

	err = h.service.ValidateStay(r.Context(), apartmentID, start, end)
	switch {
	case err == nil:
		handlers.RespondJSON(w, http.StatusOK, StayValidationResponse{
			Valid:  true,
			Nights: daterange.NightsBetween(start, end),
		})

	// Нарушение ограничений - это ответ на вопрос, а не ошибка запроса
	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrTooFewNights),
		errors.Is(err, domain.ErrTooManyNights):
		handlers.RespondJSON(w, http.StatusOK, StayValidationResponse{
			Valid:   false,
			Nights:  daterange.NightsBetween(start, end),
			Code:    domain.ErrorCode(err),
			Message: err.Error(),
		})

	default:
		handlers.HandleError(w, h.logger, "GET /apartments/{id}/stay-validation", err)
	}
}
