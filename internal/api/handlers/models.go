package handlers

import (
	"time"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// GuestRequest данные гостя в теле запроса
type GuestRequest struct {
	UserName  string  `json:"userName" validate:"required,max=200"`
	UserEmail *string `json:"userEmail,omitempty" validate:"omitempty,email,max=254"`
	UserPhone *string `json:"userPhone,omitempty" validate:"omitempty,max=32"`
}

// ToDomain конвертирует в domain.GuestInfo
func (g GuestRequest) ToDomain() domain.GuestInfo {
	return domain.GuestInfo{Name: g.UserName, Email: g.UserEmail, Phone: g.UserPhone}
}

// GuestResponse данные гостя в ответе
type GuestResponse struct {
	UserName  string  `json:"userName"`
	UserEmail *string `json:"userEmail,omitempty"`
	UserPhone *string `json:"userPhone,omitempty"`
}

func FromGuest(g domain.GuestInfo) GuestResponse {
	return GuestResponse{UserName: g.Name, UserEmail: g.Email, UserPhone: g.Phone}
}

// ApartmentResponse HTTP модель апартамента
type ApartmentResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	Images             []string `json:"images"`
	BookingMode        string   `json:"bookingMode"`
	MinNights          *int     `json:"minNights,omitempty"`
	MaxNights          *int     `json:"maxNights,omitempty"`
	DisableBookedDates bool     `json:"disableBookedDates"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

func FromApartment(a *domain.Apartment) *ApartmentResponse {
	images := a.Images
	if images == nil {
		images = []string{}
	}
	return &ApartmentResponse{
		ID:                 a.ID.String(),
		Name:               a.Name,
		Location:           a.Location,
		Description:        a.Description,
		Price:              a.Price,
		Images:             images,
		BookingMode:        string(a.BookingMode),
		MinNights:          a.MinNights,
		MaxNights:          a.MaxNights,
		DisableBookedDates: a.DisableBookedDates,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}
}

// PeriodResponse HTTP модель периода бронирования
type PeriodResponse struct {
	ID          string `json:"id"`
	ApartmentID string `json:"apartmentId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Nights      int    `json:"nights"`
	IsBooked    bool   `json:"isBooked"`
}

func FromPeriod(p *domain.BookingPeriod) PeriodResponse {
	return PeriodResponse{
		ID:          p.ID.String(),
		ApartmentID: p.ApartmentID.String(),
		StartDate:   daterange.Format(p.StartDate),
		EndDate:     daterange.Format(p.EndDate),
		Nights:      p.Nights(),
		IsBooked:    p.IsBooked,
	}
}

func FromPeriods(periods []*domain.BookingPeriod) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, FromPeriod(p))
	}
	return out
}

// ApartmentRequest тело запроса на создание или изменение апартамента
type ApartmentRequest struct {
	Name               string   `json:"name" validate:"required,max=200"`
	Location           string   `json:"location" validate:"max=200"`
	Description        string   `json:"description"`
	Price              float64  `json:"price" validate:"gte=0"`
	Images             []string `json:"images" validate:"max=50,dive,required"`
	BookingMode        string   `json:"bookingMode" validate:"required,oneof=period free_range"`
	MinNights          *int     `json:"minNights,omitempty" validate:"omitempty,gte=1"`
	MaxNights          *int     `json:"maxNights,omitempty" validate:"omitempty,gte=1"`
	DisableBookedDates bool     `json:"disableBookedDates"`
}

func (req ApartmentRequest) ToDomain() *domain.Apartment {
	return &domain.Apartment{
		Name:               req.Name,
		Location:           req.Location,
		Description:        req.Description,
		Price:              req.Price,
		Images:             req.Images,
		BookingMode:        domain.BookingMode(req.BookingMode),
		MinNights:          req.MinNights,
		MaxNights:          req.MaxNights,
		DisableBookedDates: req.DisableBookedDates,
	}
}
