package book_range

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

// Request модель запроса на бронирование произвольных дат
type Request struct {
	ApartmentID uuid.UUID
	StartDate   time.Time // Дата заезда
	EndDate     time.Time // Дата выезда (не входит в бронирование)
	Guest       domain.GuestInfo
}

// Response созданное бронирование
type Response struct {
	ID          uuid.UUID
	ApartmentID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Guest       domain.GuestInfo
	Nights      int
	TotalAmount float64
	CreatedAt   time.Time
}
