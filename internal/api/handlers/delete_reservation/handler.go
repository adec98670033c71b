package delete_reservation

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

const msgInvalidReservationID = "некорректный ID бронирования"

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

// Handle DELETE /api/v1/admin/reservations/{kind}/{reservationId}
// Удаление бронирования периода освобождает период.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := domain.ReservationKind(mux.Vars(r)["kind"])

	reservationID, err := handlers.PathUUID(r, "reservationId")
	if err != nil {
		h.logger.Warn("DELETE /admin/reservations/{kind}/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Delete(r.Context(), kind, reservationID); err != nil {
		handlers.HandleError(w, h.logger, "DELETE /admin/reservations/{kind}/{id}", err)
		return
	}

	admin, _ := middleware.SubjectFromContext(r.Context())
	h.logger.Info("DELETE /admin/reservations/{kind}/{id} - Reservation deleted: kind=%s, id=%s, admin=%s", kind, reservationID, admin)
	handlers.RespondNoContent(w)
}
