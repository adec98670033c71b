package create_period

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// CreatePeriodRequest HTTP request model
type CreatePeriodRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// ToDomain конвертирует запрос в период апартамента
func (r *CreatePeriodRequest) ToDomain(apartmentID uuid.UUID) (*domain.BookingPeriod, error) {
	start, err := daterange.Parse(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := daterange.Parse(r.EndDate)
	if err != nil {
		return nil, err
	}
	return &domain.BookingPeriod{
		ApartmentID: apartmentID,
		StartDate:   start,
		EndDate:     end,
	}, nil
}
