// Package main imports YAML item and boss content into PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/idlerealm/worldboss/internal/config"
	"github.com/idlerealm/worldboss/internal/importer"
	"github.com/idlerealm/worldboss/internal/observability"
	"github.com/idlerealm/worldboss/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	bossDir := flag.String("bosses", "", "boss template YAML directory (default: content.boss_dir)")
	itemDir := flag.String("items", "", "item YAML directory (default: content.item_dir)")
	checkOnly := flag.Bool("check", false, "validate content without writing it")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *bossDir == "" {
		*bossDir = cfg.Content.BossDir
	}
	if *itemDir == "" {
		*itemDir = cfg.Content.ItemDir
	}

	logger, err := observability.NewLogger(cfg.Logging, "import-content")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	src := importer.NewDirSource(*itemDir, *bossDir)
	if *checkOnly {
		content, err := src.Load()
		if err == nil {
			err = importer.CheckReferences(content)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("content ok: %d items, %d bosses\n", len(content.Items), len(content.Templates))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()

	start := time.Now()
	stats, err := importer.New(src, pool.Store(), logger).Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("import complete in %s: %d items, %d bosses created, %d updated\n",
		time.Since(start).Round(time.Millisecond), stats.Items, stats.TemplatesCreated, stats.TemplatesUpdated)
}
