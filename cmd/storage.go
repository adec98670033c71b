package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ApartmentBooking/internal/config"
	apartmentRepo "github.com/m04kA/SMC-ApartmentBooking/internal/infra/storage/apartment"
	"github.com/m04kA/SMC-ApartmentBooking/internal/infra/storage/memory"
	periodRepo "github.com/m04kA/SMC-ApartmentBooking/internal/infra/storage/period"
	reservationRepo "github.com/m04kA/SMC-ApartmentBooking/internal/infra/storage/reservation"
	apartmentsService "github.com/m04kA/SMC-ApartmentBooking/internal/service/apartments"
	availabilityService "github.com/m04kA/SMC-ApartmentBooking/internal/service/availability"
	periodsService "github.com/m04kA/SMC-ApartmentBooking/internal/service/periods"
	reservationsService "github.com/m04kA/SMC-ApartmentBooking/internal/service/reservations"
	bookPeriodUC "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_period"
	bookRangeUC "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_range"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/logger"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/metrics"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/txmanager"
)

// Объединения потребительских интерфейсов: обе реализации хранилища удовлетворяют им целиком

type apartmentStore interface {
	apartmentsService.ApartmentRepository
}

type periodStore interface {
	periodsService.PeriodRepository
	availabilityService.PeriodRepository
	bookPeriodUC.PeriodRepository
	reservationsService.PeriodReleaser
}

type rangeReservationStore interface {
	bookRangeUC.ReservationRepository
	availabilityService.RangeReservationRepository
	reservationsService.RangeReservationRepository
	apartmentsService.ReservationCounter
}

type periodReservationStore interface {
	bookPeriodUC.ReservationRepository
	reservationsService.PeriodReservationRepository
	apartmentsService.ReservationCounter
}

type transactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	PingContext(ctx context.Context) error
}

type storage struct {
	apartments         apartmentStore
	periods            periodStore
	rangeReservations  rangeReservationStore
	periodReservations periodReservationStore
	txManager          transactionManager
	pinger             pinger
	close              func()
}

// openStorage открывает хранилище, выбранное в [storage] driver
func openStorage(cfg *config.Config, log *logger.Logger, metricsCollector *metrics.Metrics) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage: data is lost on restart")
		store := memory.NewStore()
		return &storage{
			apartments:         memory.NewApartmentRepository(store),
			periods:            memory.NewPeriodRepository(store),
			rangeReservations:  memory.NewRangeReservationRepository(store),
			periodReservations: memory.NewPeriodReservationRepository(store),
			txManager:          memory.NewTxManager(store),
			pinger:             store,
			close:              func() {},
		}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopMetricsCh := make(chan struct{})
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}

	return &storage{
		apartments:         apartmentRepo.NewRepository(wrappedDB),
		periods:            periodRepo.NewRepository(wrappedDB),
		rangeReservations:  reservationRepo.NewRangeRepository(wrappedDB),
		periodReservations: reservationRepo.NewPeriodRepository(wrappedDB),
		txManager: txmanager.NewTransactionManager(wrappedDB, txmanager.WithRetry(
			cfg.Transactions.RetryAttempts,
			time.Duration(cfg.Transactions.RetryBaseDelayMs)*time.Millisecond,
		)),
		pinger: wrappedDB,
		close: func() {
			close(stopMetricsCh)
			_ = db.Close()
		},
	}, nil
}
