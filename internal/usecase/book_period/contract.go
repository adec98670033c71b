package book_period

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
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.BookingPeriod, error)
	MarkBooked(ctx context.Context, id uuid.UUID) error
}

// ReservationRepository интерфейс репозитория бронирований периодов
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.PeriodReservation) (*domain.PeriodReservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик попыток бронирования
type Metrics interface {
	IncBookingAttempt(kind, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
