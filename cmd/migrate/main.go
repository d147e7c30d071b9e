package main

import (
	"context"

	"fashionstore/internal/config"
	"fashionstore/internal/db"
	"fashionstore/internal/migrate"
	"fashionstore/pkg/logger"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	log.Info().Msg("migrations applied")
}
