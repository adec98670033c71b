package reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("reservation.repository: %w", domain.ErrReservationNotFound)

	// ErrOverlap нарушение EXCLUDE ограничения: даты пересекаются с другим бронированием
	ErrOverlap = fmt.Errorf("reservation.repository: %w", domain.ErrDatesNoLongerAvailable)

	// ErrPeriodTaken нарушение UNIQUE(period_id): период уже забронирован
	ErrPeriodTaken = fmt.Errorf("reservation.repository: %w", domain.ErrPeriodAlreadyBooked)

	// ErrApartmentNotFound внешний ключ на апартамент или период не найден
	ErrApartmentNotFound = fmt.Errorf("reservation.repository: %w", domain.ErrApartmentNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
