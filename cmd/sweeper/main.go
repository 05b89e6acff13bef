package main

import (
	"context"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/imroc/req/v3"
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

// One-shot maintenance run for external cron: sync every due account,
// then recount usage for all companies.

type Config struct {
	PostgresDSN string `env:"POSTGRES_CONNECTION_STRING,required"`

	PluggyBaseURL      string `env:"PLUGGY_BASE_URL" envDefault:"https://api.pluggy.ai"`
	PluggyClientID     string `env:"PLUGGY_CLIENT_ID,required"`
	PluggyClientSecret string `env:"PLUGGY_CLIENT_SECRET,required"`
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("job", "sweeper").Logger()

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

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

	ctx := logger.WithContext(context.Background())

	if err = orchestratorSvc.SyncDueAccounts(ctx); err != nil {
		log.Fatal().Err(err).Msg("scheduled sync sweep failed")
	}

	if err = usageSvc.SweepAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("usage sweep failed")
	}

	log.Info().Msg("sweep finished")
}
