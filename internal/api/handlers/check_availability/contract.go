package check_availability

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AvailabilityService interface {
	IsAvailable(ctx context.Context, apartmentID uuid.UUID, start, end time.Time) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
