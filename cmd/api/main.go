package main

import (
	"context"
	"log"

	"bobber/internal/builds"
	"bobber/internal/catalog"
	"bobber/internal/config"
	"bobber/internal/db"
	"bobber/internal/diag"
	"bobber/internal/logger"
	"bobber/internal/pricing"
	"bobber/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	logger.Init(logger.Opts{Environment: cfg.Environment()})

	// ───────────────────────── CATALOG ─────────────────────────
	store := catalog.NewStore()
	engine := pricing.NewEngine(store)

	// ───────────────────────── BUILD STORE ─────────────────────────
	ctx := context.Background()

	var repo builds.Repository
	var prober diag.Prober

	switch driver := cfg.ResolveStoreDriver(); driver {
	case config.DriverMongo:
		conn, err := db.ConnectMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			logger.Fatal().Err(err).Msg("❌ Mongo init failed")
		}
		defer conn.Close(ctx)

		logger.Info().Msg("✅ Connected to MongoDB")
		repo = builds.NewMongoRepository(conn.DB, cfg.BuildsCollection)
		prober = diag.NewMongoProber(conn.DB)

	case config.DriverPostgres:
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("❌ Postgres init failed")
		}
		defer pool.Close()

		logger.Info().Msg("✅ Connected to PostgreSQL")
		repo = builds.NewPostgresRepository(pool)
		prober = diag.NewPostgresProber(pool)

	case config.DriverMemory:
		logger.Warn().Msg("⚠️  No database configured, builds are stored in memory")
		repo = builds.NewInMemoryRepository()

	default:
		logger.Fatal().Str("driver", driver).Msg("❌ Unknown STORE_DRIVER")
	}

	buildService := builds.NewService(engine, repo)

	// ───────────────────────── HANDLERS ─────────────────────────
	handlers := router.Handlers{
		Catalog: catalog.NewHandler(store),
		Pricing: pricing.NewHandler(engine),
		Builds:  builds.NewHandler(buildService),
		Diag:    diag.NewHandler(prober),
	}

	// ───────────────────────── START ─────────────────────────
	r := router.New(cfg, handlers)

	logger.Info().Msgf("🚀 API running at http://localhost:%d", cfg.Port)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("❌ Server stopped")
	}
}
