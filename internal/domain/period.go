package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// BookingPeriod is an admin-defined date block of a period apartment.
// IsBooked flips false->true once, when the period is reserved.
type BookingPeriod struct {
	ID          uuid.UUID
	ApartmentID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	IsBooked    bool
	CreatedAt   time.Time
}

// Nights returns the number of nights in the period
func (p *BookingPeriod) Nights() int {
	return daterange.NightsBetween(p.StartDate, p.EndDate)
}

// Overlaps reports whether the period intersects [start, end)
func (p *BookingPeriod) Overlaps(start, end time.Time) bool {
	return daterange.Overlaps(p.StartDate, p.EndDate, start, end)
}

// Validate checks the period date range
func (p *BookingPeriod) Validate() error {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if !daterange.IsValid(p.StartDate, p.EndDate) {
		return ErrInvalidRange
	}
	return ValidateStayLength(p.StartDate, p.EndDate)
}

// FindOverlappingPeriod returns the first period intersecting [start, end), or nil
func FindOverlappingPeriod(periods []*BookingPeriod, start, end time.Time) *BookingPeriod {
	for _, p := range periods {
		if p.Overlaps(start, end) {
			return p
		}
	}
	return nil
}
