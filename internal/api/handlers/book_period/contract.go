package book_period

import (
	"context"

	bookPeriod "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_period"
)

type BookPeriodUseCase interface {
	Execute(ctx context.Context, req *bookPeriod.Request) (*bookPeriod.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
