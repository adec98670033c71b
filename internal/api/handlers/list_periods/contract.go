package list_periods

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

type PeriodService interface {
	List(ctx context.Context, apartmentID uuid.UUID) ([]*domain.BookingPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
