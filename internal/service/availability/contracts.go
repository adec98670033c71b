package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

// ApartmentRepository интерфейс репозитория апартаментов
type ApartmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
}

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingPeriod, error)
	ListByApartment(ctx context.Context, apartmentID uuid.UUID, onlyAvailable bool) ([]*domain.BookingPeriod, error)
}

// RangeReservationRepository интерфейс репозитория бронирований произвольных дат
type RangeReservationRepository interface {
	ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]*domain.RangeReservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
