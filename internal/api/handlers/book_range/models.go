package book_range

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	bookRange "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_range"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// BookRangeRequest HTTP request model
type BookRangeRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"` // "2025-07-01"
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`   // дата выезда
	handlers.GuestRequest
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          string  `json:"id"`
	ApartmentID string  `json:"apartmentId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Nights      int     `json:"nights"`
	TotalAmount float64 `json:"totalAmount"`
	handlers.GuestResponse
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат дат уже проверен валидатором.
func (r *BookRangeRequest) ToUseCaseRequest(apartmentID uuid.UUID) (*bookRange.Request, error) {
	start, err := daterange.Parse(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := daterange.Parse(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &bookRange.Request{
		ApartmentID: apartmentID,
		StartDate:   start,
		EndDate:     end,
		Guest:       r.GuestRequest.ToDomain(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRange.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID.String(),
		ApartmentID:   resp.ApartmentID.String(),
		StartDate:     daterange.Format(resp.StartDate),
		EndDate:       daterange.Format(resp.EndDate),
		Nights:        resp.Nights,
		TotalAmount:   resp.TotalAmount,
		GuestResponse: handlers.FromGuest(resp.Guest),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
