package book_range

import (
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
)

const (
	msgInvalidApartmentID = "некорректный ID апартамента"
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase BookRangeUseCase
	logger  Logger
}

func NewHandler(useCase BookRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/apartments/{apartmentId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathUUID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("POST /apartments/{id}/reservations - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	var req BookRangeRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /apartments/{id}/reservations - Invalid request: %v", err)
		handlers.RespondRequestError(w, err, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(apartmentID)
	if err != nil {
		h.logger.Warn("POST /apartments/{id}/reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		handlers.HandleError(w, h.logger, "POST /apartments/{id}/reservations", err)
		return
	}

	h.logger.Info("POST /apartments/{id}/reservations - Reservation created: id=%s, apartment_id=%s",
		result.ID, apartmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
