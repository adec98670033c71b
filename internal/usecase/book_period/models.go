package book_period

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

// Request модель запроса на бронирование периода
type Request struct {
	PeriodID uuid.UUID
	Guest    domain.GuestInfo
}

// Response созданное бронирование периода
type Response struct {
	ID          uuid.UUID
	ApartmentID uuid.UUID
	PeriodID    uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Guest       domain.GuestInfo
	Nights      int
	TotalAmount float64
	CreatedAt   time.Time
}
