package booked_dates

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AvailabilityService interface {
	BookedDates(ctx context.Context, apartmentID uuid.UUID) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
