package domain

import (
	"errors"
	"fmt"
)

// Ошибки бронирования. Обработчики различают по ним
// некорректный ввод, проигранную гонку и недоступность хранилища.
var (
	// ErrInvalidRange дата выезда не позже даты заезда (ноль или меньше ночей)
	ErrInvalidRange = errors.New("domain: end date must be after start date")

	// ErrTooFewNights меньше минимального количества ночей апартамента
	ErrTooFewNights = errors.New("domain: stay is shorter than minimum nights")

	// ErrTooManyNights больше максимального количества ночей апартамента
	ErrTooManyNights = errors.New("domain: stay is longer than maximum nights")

	// ErrDatesNoLongerAvailable даты уже заняты другим бронированием
	ErrDatesNoLongerAvailable = errors.New("domain: dates are no longer available")

	// ErrPeriodAlreadyBooked период уже забронирован
	ErrPeriodAlreadyBooked = errors.New("domain: period is already booked")

	ErrApartmentNotFound   = errors.New("domain: apartment not found")
	ErrPeriodNotFound      = errors.New("domain: booking period not found")
	ErrReservationNotFound = errors.New("domain: reservation not found")

	// ErrStoreUnavailable сбой хранилища, не бизнес-отказ
	ErrStoreUnavailable = errors.New("domain: store unavailable")

	// ErrWrongBookingMode операция не соответствует режиму бронирования апартамента
	ErrWrongBookingMode = errors.New("domain: operation does not match apartment booking mode")

	// ErrPeriodIsBooked удаление забронированного периода запрещено
	ErrPeriodIsBooked = errors.New("domain: booked period cannot be deleted")

	// ErrPeriodOverlap период пересекается с другим периодом апартамента
	ErrPeriodOverlap = errors.New("domain: period overlaps another period of the apartment")

	// ErrBookingModeLocked режим бронирования нельзя сменить, пока есть бронирования
	ErrBookingModeLocked = errors.New("domain: booking mode cannot change while reservations exist")

	ErrInvalidInput = errors.New("domain: invalid input data")

	// ErrOutcomeUnknown истек таймаут до подтверждения коммита, клиент должен перечитать доступность
	ErrOutcomeUnknown = errors.New("domain: booking outcome unknown")
)

// Коды ошибок для API
const (
	CodeInvalidRange           = "invalid_range"
	CodeTooFewNights           = "too_few_nights"
	CodeTooManyNights          = "too_many_nights"
	CodeDatesNoLongerAvailable = "dates_no_longer_available"
	CodePeriodAlreadyBooked    = "period_already_booked"
	CodeApartmentNotFound      = "apartment_not_found"
	CodePeriodNotFound         = "period_not_found"
	CodeReservationNotFound    = "reservation_not_found"
	CodeStoreUnavailable       = "store_unavailable"
	CodeWrongBookingMode       = "wrong_booking_mode"
	CodePeriodIsBooked         = "period_is_booked"
	CodePeriodOverlap          = "period_overlap"
	CodeBookingModeLocked      = "booking_mode_locked"
	CodeInvalidInput           = "invalid_input"
	CodeOutcomeUnknown         = "outcome_unknown"
	CodeInternal               = "internal"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrOutcomeUnknown, CodeOutcomeUnknown},
	{ErrInvalidRange, CodeInvalidRange},
	{ErrTooFewNights, CodeTooFewNights},
	{ErrTooManyNights, CodeTooManyNights},
	{ErrDatesNoLongerAvailable, CodeDatesNoLongerAvailable},
	{ErrPeriodAlreadyBooked, CodePeriodAlreadyBooked},
	{ErrApartmentNotFound, CodeApartmentNotFound},
	{ErrPeriodNotFound, CodePeriodNotFound},
	{ErrReservationNotFound, CodeReservationNotFound},
	{ErrWrongBookingMode, CodeWrongBookingMode},
	{ErrPeriodIsBooked, CodePeriodIsBooked},
	{ErrPeriodOverlap, CodePeriodOverlap},
	{ErrBookingModeLocked, CodeBookingModeLocked},
	{ErrInvalidInput, CodeInvalidInput},
	{ErrStoreUnavailable, CodeStoreUnavailable},
}

// ErrorCode возвращает стабильный код ошибки для клиента.
// Неизвестные ошибки получают CodeInternal.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}

// IsBusiness true для отказов по бизнес-правилам (всё из таксономии, кроме сбоев хранилища)
func IsBusiness(err error) bool {
	code := ErrorCode(err)
	return code != "" && code != CodeInternal && code != CodeStoreUnavailable && code != CodeOutcomeUnknown
}

// WrapStore помечает инфраструктурную ошибку как ErrStoreUnavailable.
// Бизнес-ошибки и уже классифицированные ошибки возвращаются как есть.
func WrapStore(err error) error {
	if err == nil || IsBusiness(err) || errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrOutcomeUnknown) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
