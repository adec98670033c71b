package reservations

import (
	"fmt"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

var (
	// ErrUnknownKind возвращается при неизвестном типе бронирования
	ErrUnknownKind = fmt.Errorf("reservations: %w: unknown reservation kind", domain.ErrInvalidInput)
)
