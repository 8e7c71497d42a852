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

	createBookingHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/create_booking"
	createSlotHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/create_slot"
	deleteBookingHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/delete_booking"
	deleteSlotHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/delete_slot"
	deleteSlotsHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/delete_slots"
	generateSlotsHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/generate_slots"
	getCalendarHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/get_calendar"
	getDaySlotsHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/get_day_slots"
	getScheduleHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/get_schedule"
	listBookingsHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/list_bookings"
	loginHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/login"
	registerHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/register"
	updateBookingStatusHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/update_booking_status"
	updateSlotHandler "github.com/somriures/SC-BookingConsole/internal/api/handlers/update_slot"
	"github.com/somriures/SC-BookingConsole/internal/api/middleware"
	"github.com/somriures/SC-BookingConsole/internal/config"
	"github.com/somriures/SC-BookingConsole/internal/i18n"
	"github.com/somriures/SC-BookingConsole/internal/infra/slotcache"
	authServiceClient "github.com/somriures/SC-BookingConsole/internal/integrations/authservice"
	partyAPIClient "github.com/somriures/SC-BookingConsole/internal/integrations/partyapi"
	bookingsService "github.com/somriures/SC-BookingConsole/internal/service/bookings"
	slotsService "github.com/somriures/SC-BookingConsole/internal/service/slots"
	createBookingUC "github.com/somriures/SC-BookingConsole/internal/usecase/create_booking"
	generateSlotsUC "github.com/somriures/SC-BookingConsole/internal/usecase/generate_slots"
	getCalendarUC "github.com/somriures/SC-BookingConsole/internal/usecase/get_calendar"
	getScheduleUC "github.com/somriures/SC-BookingConsole/internal/usecase/get_schedule"
	"github.com/somriures/SC-BookingConsole/pkg/logger"
	"github.com/somriures/SC-BookingConsole/pkg/metrics"
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

	log.Info("Starting SC-BookingConsole...")
	log.Info("Configuration loaded from config.toml")

	msg, err := i18n.Load(cfg.I18n.MessagesDir, cfg.I18n.Locale)
	if err != nil {
		log.Fatal("Failed to load message catalog: %v", err)
	}
	log.Info("Message catalog loaded: locale=%s", msg.Locale())

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Integration clients
	var partyObserver partyAPIClient.MetricsObserver
	var authObserver authServiceClient.MetricsObserver
	if metricsCollector != nil {
		partyObserver = metricsCollector
		authObserver = metricsCollector
	}
	partyClient := partyAPIClient.NewClient(
		cfg.PartyAPI.URL,
		time.Duration(cfg.PartyAPI.Timeout)*time.Second,
		cfg.PartyAPI.RateLimitRPS,
		cfg.PartyAPI.RateLimitBurst,
		partyObserver,
		log,
	)
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		authObserver,
		log,
	)
	log.Info("Integration clients initialized (PartyAPI=%s timeout=%ds, AuthService=%s timeout=%ds)",
		cfg.PartyAPI.URL, cfg.PartyAPI.Timeout, cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Cache and services
	cache := slotcache.New()

	var cacheObserver slotsService.MetricsObserver
	if metricsCollector != nil {
		cacheObserver = metricsCollector
	}
	slotsSvc := slotsService.NewService(
		partyClient,
		cache,
		cacheObserver,
		log,
		cfg.Cache.WindowMonthsBack,
		cfg.Cache.WindowMonthsForward,
	)
	bookingsSvc := bookingsService.NewService(partyClient, log)

	// Warm the cache before serving. A failed warm-up is not fatal: every
	// month view falls back to a lazy fetch.
	warmupCtx, cancelWarmup := context.WithTimeout(context.Background(),
		time.Duration(cfg.PartyAPI.Timeout)*time.Second)
	if err := slotsSvc.LoadWindow(warmupCtx, time.Now()); err != nil {
		log.Warn("Cache warm-up failed, months will load lazily: %v", err)
	}
	cancelWarmup()

	// Use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(slotsSvc, log)
	getScheduleUseCase := getScheduleUC.NewUseCase(slotsSvc, log)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(slotsSvc, log)
	createBookingUseCase := createBookingUC.NewUseCase(slotsSvc, partyClient, log)

	// Handlers
	login := loginHandler.NewHandler(authClient, msg, log)
	register := registerHandler.NewHandler(authClient, msg, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, msg, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, msg, log)
	getDaySlots := getDaySlotsHandler.NewHandler(slotsSvc, msg, log)
	createSlot := createSlotHandler.NewHandler(slotsSvc, msg, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, msg, log)
	updateSlot := updateSlotHandler.NewHandler(slotsSvc, msg, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, msg, log)
	deleteSlots := deleteSlotsHandler.NewHandler(slotsSvc, msg, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, msg, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, msg, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, msg, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, msg, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: sign-in and the customer booking form.
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar/{year}/{month}", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}/slots", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Protected routes: slot administration and booking management.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authClient, msg, log))

	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/delete", deleteSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{id}", updateSlot.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{id}", deleteSlot.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

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
