package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/application/service"
	"github.com/sangkips/kuittikone/internal/bootstrap"
	"github.com/sangkips/kuittikone/internal/config"
	"github.com/sangkips/kuittikone/internal/presentation/http/handler"
	"github.com/sangkips/kuittikone/internal/presentation/http/middleware"
	"github.com/sangkips/kuittikone/internal/presentation/http/routes"
	"github.com/sangkips/kuittikone/pkg/printer"
	"github.com/sangkips/kuittikone/pkg/utils"
	"github.com/spf13/afero"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg.Log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs := afero.NewOsFs()
	store, err := bootstrap.OpenStore(ctx, cfg, fs)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	if cfg.JWT.AdminPasswordHash == "" {
		log.Warn().Msg("ADMIN_PASSWORD_HASH is not set; admin endpoints are unreachable")
	}

	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize printer, printing disabled")
		thermalPrinter = printer.NewNullPrinter()
	}

	metrics := service.NewMetrics(prometheus.DefaultRegisterer)

	// Initialize services
	profileService := service.NewProfileService(store.Documents)
	warrantyService := service.NewWarrantyService(store.Documents)
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Width, metrics)
	receiptService := service.NewReceiptService(
		store.Documents,
		profileService,
		warrantyService,
		service.NewReceiptComposer(0),
		printerService,
		metrics,
		cfg.Receipt.Width,
	)
	backupService := service.NewBackupService(store.Documents, fs, cfg.Store.BackupDir)
	authService := service.NewAuthService(jwtManager, cfg.JWT.AdminUsername, cfg.JWT.AdminPasswordHash, cfg.JWT.ExpiryHours)

	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Profile:  handler.NewProfileHandler(profileService),
		Warranty: handler.NewWarrantyHandler(warrantyService),
		Receipt:  handler.NewReceiptHandler(receiptService),
		Logo:     handler.NewLogoHandler(),
		Printer:  handler.NewPrinterHandler(printerService),
		Backup:   handler.NewBackupHandler(backupService),
		Settings: handler.NewSettingsHandler(service.NewSettingsService(store.Documents)),
	}

	rateLimiter := routes.NewRateLimiter(cfg.RateLimit)
	go rateLimiter.Run(ctx.Done())
	go middleware.RunIdempotencyJanitor(ctx, store.Idempotency, time.Hour)

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: store.Idempotency,
		RateLimiter:     rateLimiter,
		Gatherer:        prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Str("port", cfg.App.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
