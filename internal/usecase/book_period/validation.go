package book_period

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest проверяет запрос до обращения к хранилищу
func validateRequest(req *Request) error {
	if req.PeriodID == uuid.Nil {
		return fmt.Errorf("%w: periodId is required", ErrInvalidInput)
	}

	req.Guest.Normalize()
	return req.Guest.Validate()
}
