package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// BookingMode determines how guests reserve an apartment
type BookingMode string

const (
	// BookingModePeriod guests pick one of the admin-defined periods
	BookingModePeriod BookingMode = "period"
	// BookingModeFreeRange guests pick arbitrary dates within night bounds
	BookingModeFreeRange BookingMode = "free_range"
)

// IsValid reports whether the mode is known
func (m BookingMode) IsValid() bool {
	return m == BookingModePeriod || m == BookingModeFreeRange
}

// Apartment represents a rentable apartment
type Apartment struct {
	ID          uuid.UUID
	Name        string
	Location    string
	Description string
	Price       float64 // per night
	Images      []string
	BookingMode BookingMode

	// Night bounds, only meaningful for BookingModeFreeRange
	MinNights *int
	MaxNights *int

	// UI hint: hide booked dates in the calendar
	DisableBookedDates bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPeriodMode returns true if guests book admin-defined periods
func (a *Apartment) IsPeriodMode() bool {
	return a.BookingMode == BookingModePeriod
}

// IsFreeRange returns true if guests pick arbitrary dates
func (a *Apartment) IsFreeRange() bool {
	return a.BookingMode == BookingModeFreeRange
}

// ValidateNightCount checks the stay [start, end) against the apartment night bounds.
// An empty or negative range is ErrInvalidRange regardless of bounds.
func (a *Apartment) ValidateNightCount(start, end time.Time) error {
	nights := daterange.NightsBetween(start, end)
	if nights <= 0 {
		return ErrInvalidRange
	}
	if a.MinNights != nil && nights < *a.MinNights {
		return fmt.Errorf("%w: %d nights, minimum %d", ErrTooFewNights, nights, *a.MinNights)
	}
	if a.MaxNights != nil && nights > *a.MaxNights {
		return fmt.Errorf("%w: %d nights, maximum %d", ErrTooManyNights, nights, *a.MaxNights)
	}
	return nil
}

// TotalPrice returns price for the given number of nights
func (a *Apartment) TotalPrice(nights int) float64 {
	if nights <= 0 {
		return 0
	}
	return a.Price * float64(nights)
}

// Normalize trims text fields and drops night bounds for period apartments
func (a *Apartment) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Location = strings.TrimSpace(a.Location)
	a.Description = strings.TrimSpace(a.Description)
	if a.Images == nil {
		a.Images = []string{}
	}
	if a.IsPeriodMode() {
		a.MinNights = nil
		a.MaxNights = nil
	}
}

// Validate checks admin-provided apartment data
func (a *Apartment) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if a.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if !a.BookingMode.IsValid() {
		return fmt.Errorf("%w: unknown booking mode %q", ErrInvalidInput, a.BookingMode)
	}
	if len(a.Images) > MaxApartmentImages {
		return fmt.Errorf("%w: at most %d images allowed", ErrInvalidInput, MaxApartmentImages)
	}
	if a.MinNights != nil && *a.MinNights < MinNightsLowerBound {
		return fmt.Errorf("%w: minNights must be at least %d", ErrInvalidInput, MinNightsLowerBound)
	}
	if a.MaxNights != nil && *a.MaxNights < MinNightsLowerBound {
		return fmt.Errorf("%w: maxNights must be at least %d", ErrInvalidInput, MinNightsLowerBound)
	}
	if a.MinNights != nil && a.MaxNights != nil && *a.MinNights > *a.MaxNights {
		return fmt.Errorf("%w: minNights must not exceed maxNights", ErrInvalidInput)
	}
	return nil
}
