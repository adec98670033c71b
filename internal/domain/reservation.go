package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// ValidateStayLength rejects ranges longer than MaxStayNights.
// Apartment night bounds are optional, so this caps every stored range.
func ValidateStayLength(start, end time.Time) error {
	if nights := daterange.NightsBetween(start, end); nights > MaxStayNights {
		return fmt.Errorf("%w: %d nights exceeds the limit of %d", ErrInvalidInput, nights, MaxStayNights)
	}
	return nil
}

// ReservationKind distinguishes period and range reservations
type ReservationKind string

const (
	ReservationKindPeriod ReservationKind = "period"
	ReservationKindRange  ReservationKind = "range"
)

// IsValid reports whether the kind is known
func (k ReservationKind) IsValid() bool {
	return k == ReservationKindPeriod || k == ReservationKindRange
}

// GuestInfo identifies the person who made the reservation
type GuestInfo struct {
	Name  string
	Email *string
	Phone *string
}

// Normalize trims fields, empty optional fields become nil
func (g *GuestInfo) Normalize() {
	g.Name = strings.TrimSpace(g.Name)
	g.Email = trimOptional(g.Email)
	g.Phone = trimOptional(g.Phone)
}

// Validate checks guest identity fields
func (g *GuestInfo) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if len(g.Name) > MaxGuestNameLength {
		return fmt.Errorf("%w: guest name is too long", ErrInvalidInput)
	}
	if g.Email != nil {
		if len(*g.Email) > MaxGuestEmailLength {
			return fmt.Errorf("%w: guest email is too long", ErrInvalidInput)
		}
		if _, err := mail.ParseAddress(*g.Email); err != nil {
			return fmt.Errorf("%w: guest email is malformed", ErrInvalidInput)
		}
	}
	if g.Phone != nil && len(*g.Phone) > MaxGuestPhoneLength {
		return fmt.Errorf("%w: guest phone is too long", ErrInvalidInput)
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// RangeReservation is a booking of a free-range apartment for [StartDate, EndDate)
type RangeReservation struct {
	ID          uuid.UUID
	ApartmentID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Guest       GuestInfo
	CreatedAt   time.Time
}

// Nights returns the number of booked nights
func (r *RangeReservation) Nights() int {
	return daterange.NightsBetween(r.StartDate, r.EndDate)
}

// PeriodReservation is a booking of one admin-defined period.
// StartDate and EndDate are copied from the period when read.
type PeriodReservation struct {
	ID          uuid.UUID
	ApartmentID uuid.UUID
	PeriodID    uuid.UUID
	Guest       GuestInfo
	CreatedAt   time.Time

	StartDate time.Time
	EndDate   time.Time
}

// Nights returns the number of nights of the reserved period
func (r *PeriodReservation) Nights() int {
	return daterange.NightsBetween(r.StartDate, r.EndDate)
}

// FindOverlapping returns the first reservation intersecting [start, end), or nil
func FindOverlapping(existing []*RangeReservation, start, end time.Time) *RangeReservation {
	for _, r := range existing {
		if daterange.Overlaps(r.StartDate, r.EndDate, start, end) {
			return r
		}
	}
	return nil
}

// ReservationView is a reservation of either kind joined with its apartment, for admin listings
type ReservationView struct {
	Kind              ReservationKind
	ID                uuid.UUID
	ApartmentID       uuid.UUID
	ApartmentName     string
	ApartmentLocation string
	PeriodID          *uuid.UUID
	StartDate         time.Time
	EndDate           time.Time
	Guest             GuestInfo
	Nights            int
	TotalAmount       float64
	CreatedAt         time.Time
}

// Matches reports whether the case-insensitive query occurs in guest or apartment fields.
// Empty query matches everything.
func (v *ReservationView) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	fields := []string{v.Guest.Name, v.ApartmentName, v.ApartmentLocation}
	if v.Guest.Email != nil {
		fields = append(fields, *v.Guest.Email)
	}
	if v.Guest.Phone != nil {
		fields = append(fields, *v.Guest.Phone)
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// ReservationsFilter фильтр для списка бронирований администратора
type ReservationsFilter struct {
	ApartmentID *uuid.UUID // nil - все апартаменты
	Search      string     // поиск по гостю и апартаменту
}
