package create_period

import (
	"context"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

type PeriodService interface {
	Create(ctx context.Context, p *domain.BookingPeriod) (*domain.BookingPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
