package update_reservation_guest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{kind}/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := domain.ReservationKind(mux.Vars(r)["kind"])

	reservationID, err := handlers.PathUUID(r, "reservationId")
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{kind}/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req handlers.GuestRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{kind}/{id} - Invalid request: %v", err)
		handlers.RespondRequestError(w, err, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateGuest(r.Context(), kind, reservationID, req.ToDomain()); err != nil {
		handlers.HandleError(w, h.logger, "PATCH /admin/reservations/{kind}/{id}", err)
		return
	}

	admin, _ := middleware.SubjectFromContext(r.Context())
	h.logger.Info("PATCH /admin/reservations/{kind}/{id} - Guest updated: kind=%s, id=%s, admin=%s", kind, reservationID, admin)
	handlers.RespondNoContent(w)
}
