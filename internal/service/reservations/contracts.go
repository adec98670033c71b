package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

// ApartmentRepository интерфейс репозитория апартаментов
type ApartmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
	List(ctx context.Context) ([]*domain.Apartment, error)
}

// RangeReservationRepository интерфейс репозитория бронирований произвольных дат
type RangeReservationRepository interface {
	List(ctx context.Context, apartmentID *uuid.UUID) ([]*domain.RangeReservation, error)
	UpdateGuest(ctx context.Context, id uuid.UUID, guest domain.GuestInfo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PeriodReservationRepository интерфейс репозитория бронирований периодов
type PeriodReservationRepository interface {
	List(ctx context.Context, apartmentID *uuid.UUID) ([]*domain.PeriodReservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PeriodReservation, error)
	UpdateGuest(ctx context.Context, id uuid.UUID, guest domain.GuestInfo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PeriodReleaser снимает флаг is_booked
type PeriodReleaser interface {
	Release(ctx context.Context, id uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
