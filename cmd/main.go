package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/cancel_booking"
	createBlockedDateHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/create_blocked_date"
	createBookingHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/create_booking"
	deleteBlockedDateHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/delete_blocked_date"
	getAdminBookingsHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/get_admin_bookings"
	getAuditLogHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/get_audit_log"
	getBookingHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/get_booking"
	getDaySlotsHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/get_day_slots"
	getUnavailableDatesHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/get_unavailable_dates"
	getUserBookingsHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/get_user_bookings"
	listBlockedDatesHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/list_blocked_dates"
	listSpacesHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/list_spaces"
	recommendSpaceHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/recommend_space"
	rescheduleBookingHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers/update_booking_status"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/middleware"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/config"
	auditRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/audit"
	blockedDateRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/blockeddate"
	bookingRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/booking"
	spaceRepo "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/infra/storage/space"
	notifyServiceClient "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/integrations/notifyservice"
	auditService "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/audit"
	bookingsService "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings"
	spacesService "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/spaces"
	createBookingUC "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/create_booking"
	getDaySlotsUC "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/get_day_slots"
	recommendSpaceUC "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/recommend_space"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/dbmetrics"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/logger"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/metrics"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/simpletxmanager"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting space booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notify service client initialized (url=%s timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	var (
		spaceRepository       *spaceRepo.Repository
		bookingRepository     *bookingRepo.Repository
		blockedDateRepository *blockedDateRepo.Repository
		auditRepository       *auditRepo.Repository
	)

	// Transaction manager contract shared by the use cases.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockedDateRepository = blockedDateRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		spaceRepository = spaceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		blockedDateRepository = blockedDateRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		notifyClient,
		auditRepository,
		log,
	)
	spaceSvc := spacesService.NewService(
		spaceRepository,
		blockedDateRepository,
		auditRepository,
		log,
	)
	auditSvc := auditService.NewService(auditRepository, log)

	expiryStopCh := make(chan struct{})
	go runExpirySweep(
		bookingSvc,
		time.Duration(cfg.Bookings.ExpirySweepInterval)*time.Second,
		expiryStopCh,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		spaceRepository,
		blockedDateRepository,
		notifyClient,
		auditRepository,
		txMgr,
		log,
	)
	recommendSpaceUseCase := recommendSpaceUC.NewUseCase(spaceRepository, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		bookingRepository,
		spaceRepository,
		blockedDateRepository,
		log,
	)

	listSpaces := listSpacesHandler.NewHandler(spaceSvc, log)
	recommendSpace := recommendSpaceHandler.NewHandler(recommendSpaceUseCase, log)
	getUnavailableDates := getUnavailableDatesHandler.NewHandler(spaceSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(spaceSvc, log)
	createBlockedDate := createBlockedDateHandler.NewHandler(spaceSvc, log)
	deleteBlockedDate := deleteBlockedDateHandler.NewHandler(spaceSvc, log)
	getAuditLog := getAuditLogHandler.NewHandler(auditSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	api.HandleFunc("/spaces", listSpaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/recommendation", recommendSpace.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}/unavailable-dates", getUnavailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}/day-slots", getDaySlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (X-User-ID header required)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (receptionist or admin role required)
	// ============================================================

	staff := protected.PathPrefix("/admin").Subrouter()
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/blocked-dates", createBlockedDate.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/blocked-dates/{blockId}", deleteBlockedDate.Handle).Methods(http.MethodDelete)
	staff.HandleFunc("/audit-log", getAuditLog.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(expiryStopCh)

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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

// runExpirySweep periodically auto-rejects pending bookings that were
// not decided within their approval window.
func runExpirySweep(
	svc *bookingsService.Service,
	interval time.Duration,
	stopCh <-chan struct{},
	log *logger.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			count, err := svc.ExpireOverdue(ctx)
			cancel()
			if err != nil {
				log.Error("Expiry sweep failed: %v", err)
				continue
			}
			if count > 0 {
				log.Info("Expiry sweep rejected %d overdue bookings", count)
			}
		case <-stopCh:
			return
		}
	}
}
