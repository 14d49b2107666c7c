// Package main provides a CLI tool for setting player roles.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/idlerealm/worldboss/internal/config"
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/observability"
	"github.com/idlerealm/worldboss/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	username := flag.String("username", "", "target player username (required)")
	role := flag.String("role", "", "role to assign: player or admin (required)")
	flag.Parse()

	if *username == "" || *role == "" {
		flag.Usage()
		os.Exit(1)
	}

	if !character.ValidRole(*role) {
		log.Fatalf("invalid role %q: must be one of player, admin", *role)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "setrole")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer pool.Close()

	repo := pool.Players()

	p, err := repo.GetByUsername(ctx, *username)
	if err != nil {
		log.Fatalf("looking up player %q: %v", *username, err)
	}

	if err := repo.SetRole(ctx, p.ID, *role); err != nil {
		log.Fatalf("setting role: %v", err)
	}

	elapsed := time.Since(start)
	fmt.Fprintf(os.Stdout, "set role for %s (#%d): %s -> %s [%s]\n",
		p.Username, p.ID, p.Role, *role, elapsed)
}
