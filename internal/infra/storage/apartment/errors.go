package apartment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

var (
	// ErrApartmentNotFound возвращается, когда апартамент не найден
	ErrApartmentNotFound = fmt.Errorf("apartment.repository: %w", domain.ErrApartmentNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("apartment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("apartment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("apartment.repository: failed to scan row")
)
