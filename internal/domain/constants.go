package domain

import "github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"

// Business validation constants
const (
	MinNightsLowerBound  = 1
	MaxGuestNameLength   = 200
	MaxGuestEmailLength  = 254
	MaxGuestPhoneLength  = 32
	MaxApartmentImages   = 50
	MaxSearchQueryLength = 100

	// MaxStayNights верхняя граница длины любого диапазона дат (бронирование, период)
	MaxStayNights = 366
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = daterange.DateFormat
