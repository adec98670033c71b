package book_period

import (
	"time"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	bookPeriod "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_period"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// BookPeriodRequest HTTP request model
type BookPeriodRequest struct {
	handlers.GuestRequest
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          string  `json:"id"`
	ApartmentID string  `json:"apartmentId"`
	PeriodID    string  `json:"periodId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Nights      int     `json:"nights"`
	TotalAmount float64 `json:"totalAmount"`
	handlers.GuestResponse
	CreatedAt string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookPeriod.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID.String(),
		ApartmentID:   resp.ApartmentID.String(),
		PeriodID:      resp.PeriodID.String(),
		StartDate:     daterange.Format(resp.StartDate),
		EndDate:       daterange.Format(resp.EndDate),
		Nights:        resp.Nights,
		TotalAmount:   resp.TotalAmount,
		GuestResponse: handlers.FromGuest(resp.Guest),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
