package book_period

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	bookPeriod "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_period"
)

const (
	msgInvalidPeriodID    = "некорректный ID периода"
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase BookPeriodUseCase
	logger  Logger
}

func NewHandler(useCase BookPeriodUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/periods/{periodId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID, err := handlers.PathUUID(r, "periodId")
	if err != nil {
		h.logger.Warn("POST /periods/{id}/reservations - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	var req BookPeriodRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /periods/{id}/reservations - Invalid request: %v", err)
		handlers.RespondRequestError(w, err, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bookPeriod.Request{
		PeriodID: periodID,
		Guest:    req.ToDomain(),
	})
	if err != nil {
		handlers.HandleError(w, h.logger, "POST /periods/{id}/reservations", err)
		return
	}

	h.logger.Info("POST /periods/{id}/reservations - Period booked: reservation_id=%s, period_id=%s",
		result.ID, periodID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
