package book_range

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// validateRequest проверяет запрос до обращения к хранилищу
func validateRequest(req *Request) error {
	if req.ApartmentID == uuid.Nil {
		return fmt.Errorf("%w: apartmentId is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	// Ноль ночей и перевернутый диапазон отсекаются здесь, до транзакции
	if !daterange.IsValid(req.StartDate, req.EndDate) {
		return domain.ErrInvalidRange
	}
	if err := domain.ValidateStayLength(req.StartDate, req.EndDate); err != nil {
		return err
	}

	req.Guest.Normalize()
	if err := req.Guest.Validate(); err != nil {
		return err
	}

	return nil
}
