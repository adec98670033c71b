package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	availablePeriodsHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/available_periods"
	bookPeriodHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/book_period"
	bookRangeHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/book_range"
	bookedDatesHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/booked_dates"
	checkAvailabilityHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/check_availability"
	createApartmentHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/create_apartment"
	createPeriodHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/create_period"
	deleteApartmentHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/delete_apartment"
	deletePeriodHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/delete_period"
	deleteReservationHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/delete_reservation"
	getApartmentHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/get_apartment"
	healthHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/health"
	listApartmentsHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/list_apartments"
	listPeriodsHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/list_periods"
	listReservationsHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/list_reservations"
	periodAvailabilityHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/period_availability"
	updateApartmentHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/update_apartment"
	updateReservationGuestHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/update_reservation_guest"
	validateStayHandler "github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers/validate_stay"
	"github.com/m04kA/SMC-ApartmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ApartmentBooking/internal/config"
	apartmentsService "github.com/m04kA/SMC-ApartmentBooking/internal/service/apartments"
	availabilityService "github.com/m04kA/SMC-ApartmentBooking/internal/service/availability"
	periodsService "github.com/m04kA/SMC-ApartmentBooking/internal/service/periods"
	reservationsService "github.com/m04kA/SMC-ApartmentBooking/internal/service/reservations"
	bookPeriodUC "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_period"
	bookRangeUC "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_range"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/logger"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logger.WithFormat(cfg.Logs.Format))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ApartmentBooking...")
	log.Info("Configuration loaded from %s (storage=%s)", configPath, cfg.Storage.Driver)

	// Счетчики попыток бронирования нужны use case'ам всегда, наружу отдаются только при metrics.enabled
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	store, err := openStorage(cfg, log, metricsCollector)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.close()

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		store.apartments,
		store.periods,
		store.rangeReservations,
		log,
	)
	apartmentsSvc := apartmentsService.NewService(
		store.apartments,
		store.rangeReservations,
		store.periodReservations,
		store.txManager,
		log,
	)
	periodsSvc := periodsService.NewService(
		store.apartments,
		store.periods,
		store.txManager,
		log,
	)
	reservationsSvc := reservationsService.NewService(
		store.apartments,
		store.rangeReservations,
		store.periodReservations,
		store.periods,
		store.txManager,
		log,
	)

	// Инициализируем use cases
	bookRangeUseCase := bookRangeUC.NewUseCase(
		store.apartments,
		store.rangeReservations,
		store.txManager,
		metricsCollector,
		log,
	)
	bookPeriodUseCase := bookPeriodUC.NewUseCase(
		store.apartments,
		store.periods,
		store.periodReservations,
		store.txManager,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(store.pinger, log)
	listApartments := listApartmentsHandler.NewHandler(apartmentsSvc, log)
	getApartment := getApartmentHandler.NewHandler(apartmentsSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	validateStay := validateStayHandler.NewHandler(availabilitySvc, log)
	bookedDates := bookedDatesHandler.NewHandler(availabilitySvc, log)
	availablePeriods := availablePeriodsHandler.NewHandler(availabilitySvc, log)
	periodAvailability := periodAvailabilityHandler.NewHandler(availabilitySvc, log)
	bookRange := bookRangeHandler.NewHandler(bookRangeUseCase, log)
	bookPeriod := bookPeriodHandler.NewHandler(bookPeriodUseCase, log)
	createApartment := createApartmentHandler.NewHandler(apartmentsSvc, log)
	updateApartment := updateApartmentHandler.NewHandler(apartmentsSvc, log)
	deleteApartment := deleteApartmentHandler.NewHandler(apartmentsSvc, log)
	listPeriods := listPeriodsHandler.NewHandler(periodsSvc, log)
	createPeriod := createPeriodHandler.NewHandler(periodsSvc, log)
	deletePeriod := deletePeriodHandler.NewHandler(periodsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationGuest := updateReservationGuestHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/apartments", listApartments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{apartmentId}", getApartment.Handle).Methods(http.MethodGet)

	// Доступность и ограничения
	api.HandleFunc("/apartments/{apartmentId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{apartmentId}/stay-validation", validateStay.Handle).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{apartmentId}/booked-dates", bookedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{apartmentId}/available-periods", availablePeriods.Handle).Methods(http.MethodGet)
	api.HandleFunc("/apartments/{apartmentId}/periods/{periodId}/availability", periodAvailability.Handle).Methods(http.MethodGet)

	// Бронирование
	api.HandleFunc("/apartments/{apartmentId}/reservations", bookRange.Handle).Methods(http.MethodPost)
	api.HandleFunc("/periods/{periodId}/reservations", bookPeriod.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT с ролью администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, cfg.Auth.AdminRole, log))

	// --- Апартаменты ---
	admin.HandleFunc("/apartments", createApartment.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/apartments/{apartmentId}", updateApartment.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/apartments/{apartmentId}", deleteApartment.Handle).Methods(http.MethodDelete)

	// --- Периоды ---
	admin.HandleFunc("/apartments/{apartmentId}/periods", listPeriods.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/apartments/{apartmentId}/periods", createPeriod.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/periods/{periodId}", deletePeriod.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{kind}/{reservationId}", updateReservationGuest.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{kind}/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
