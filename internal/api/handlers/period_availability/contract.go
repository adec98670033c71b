package period_availability

import (
	"context"

	"github.com/google/uuid"
)

type AvailabilityService interface {
	IsPeriodBookable(ctx context.Context, apartmentID, periodID uuid.UUID) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
