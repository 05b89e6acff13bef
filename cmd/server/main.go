package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/gammazero/workerpool"
	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/caixahub/syncd/pkg/categorizer"
	"github.com/caixahub/syncd/pkg/orchestrator"
	"github.com/caixahub/syncd/pkg/pluggy"
	"github.com/caixahub/syncd/pkg/reconciler"
	"github.com/caixahub/syncd/pkg/repo"
	"github.com/caixahub/syncd/pkg/usage"
)

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	log.Info().Msg("[Db] start migrations")

	if err = repo.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	dataRepo := repo.NewGorm(db)

	aggregator := pluggy.NewClient(
		cfg.PluggyClientID,
		cfg.PluggyClientSecret,
		cfg.PluggyBaseURL,
		req.DefaultClient(),
	)

	resolver := categorizer.NewResolver(dataRepo)
	reconcilerSvc := reconciler.NewReconciler(dataRepo, aggregator, resolver)
	usageSvc := usage.NewUpdater(dataRepo)

	orchestratorSvc := orchestrator.NewOrchestrator(
		dataRepo,
		aggregator,
		reconcilerSvc,
		dataRepo,
		usageSvc,
		orchestrator.Config{},
	)

	bootCtx := logger.WithContext(context.Background())

	if cfg.WebhookURL != "" {
		if _, err = aggregator.RegisterWebhook(bootCtx, cfg.WebhookURL, "item/all"); err != nil {
			log.Error().Err(err).Msg("webhook registration failed")
		}
	}

	scheduler := cron.New()

	_, err = scheduler.AddFunc(cfg.SyncSchedule, func() {
		ctx := logger.With().Str("job", "scheduled_sync").Logger().
			WithContext(context.Background())

		if syncErr := orchestratorSvc.SyncDueAccounts(ctx); syncErr != nil {
			zerolog.Ctx(ctx).Error().Err(syncErr).Msg("scheduled sync failed")
		}

		if sweepErr := usageSvc.SweepAll(ctx); sweepErr != nil {
			zerolog.Ctx(ctx).Error().Err(sweepErr).Msg("usage sweep failed")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid sync schedule")
	}

	scheduler.Start()

	handler := NewHandler(
		orchestratorSvc,
		cfg.WebhookSecret,
		workerpool.New(cfg.WebhookPoolSize),
		logger,
	)

	r := mux.NewRouter()
	r.HandleFunc("/webhooks/aggregator", handler.HandleWebhook).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}/sync", handler.HandleManualSync).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}/reconnect", handler.HandleReconnect).Methods(http.MethodPost)
	r.HandleFunc("/healthz", handler.HandleHealth).Methods(http.MethodGet)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.ListenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")

	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
