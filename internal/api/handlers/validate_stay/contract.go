package validate_stay

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AvailabilityService interface {
	ValidateStay(ctx context.Context, apartmentID uuid.UUID, start, end time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
