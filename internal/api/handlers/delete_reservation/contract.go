package delete_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

type ReservationService interface {
	Delete(ctx context.Context, kind domain.ReservationKind, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
