package period

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

var (
	// ErrPeriodNotFound возвращается, когда период не найден
	ErrPeriodNotFound = fmt.Errorf("period.repository: %w", domain.ErrPeriodNotFound)

	// ErrAlreadyBooked условное обновление не затронуло строк: период уже забронирован
	ErrAlreadyBooked = fmt.Errorf("period.repository: %w", domain.ErrPeriodAlreadyBooked)

	// ErrIsBooked удаление забронированного периода
	ErrIsBooked = fmt.Errorf("period.repository: %w", domain.ErrPeriodIsBooked)

	// ErrOverlap период пересекается с существующим (нарушение EXCLUDE)
	ErrOverlap = fmt.Errorf("period.repository: %w", domain.ErrPeriodOverlap)

	// ErrApartmentNotFound внешний ключ на апартамент не найден
	ErrApartmentNotFound = fmt.Errorf("period.repository: %w", domain.ErrApartmentNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("period.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("period.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("period.repository: failed to scan row")
)
