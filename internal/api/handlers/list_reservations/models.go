package list_reservations

import (
	"time"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// ReservationResponse строка таблицы бронирований администратора
type ReservationResponse struct {
	Kind              string  `json:"kind"`
	ID                string  `json:"id"`
	ApartmentID       string  `json:"apartmentId"`
	ApartmentName     string  `json:"apartmentName"`
	ApartmentLocation string  `json:"apartmentLocation"`
	PeriodID          *string `json:"periodId,omitempty"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	Nights            int     `json:"nights"`
	TotalAmount       float64 `json:"totalAmount"`
	handlers.GuestResponse
	CreatedAt string `json:"createdAt"`
}

func fromView(v *domain.ReservationView) ReservationResponse {
	resp := ReservationResponse{
		Kind:              string(v.Kind),
		ID:                v.ID.String(),
		ApartmentID:       v.ApartmentID.String(),
		ApartmentName:     v.ApartmentName,
		ApartmentLocation: v.ApartmentLocation,
		StartDate:         daterange.Format(v.StartDate),
		EndDate:           daterange.Format(v.EndDate),
		Nights:            v.Nights,
		TotalAmount:       v.TotalAmount,
		GuestResponse:     handlers.FromGuest(v.Guest),
		CreatedAt:         v.CreatedAt.Format(time.RFC3339),
	}
	if v.PeriodID != nil {
		id := v.PeriodID.String()
		resp.PeriodID = &id
	}
	return resp
}
