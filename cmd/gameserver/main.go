// Package main provides the world boss server backed by PostgreSQL. It serves
// the gRPC BossService, the websocket boss-event feed, and runs the periodic
// rotation check.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"

	"github.com/idlerealm/worldboss/internal/config"
	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/dice"
	"github.com/idlerealm/worldboss/internal/gameserver"
	"github.com/idlerealm/worldboss/internal/observability"
	"github.com/idlerealm/worldboss/internal/server"
	"github.com/idlerealm/worldboss/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	migrateOnStart := flag.Bool("migrate", true, "apply pending database migrations before serving")
	healthInterval := flag.Duration("health-interval", 30*time.Second, "database health check interval")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "gameserver")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting world boss server",
		zap.String("grpc_addr", cfg.GameServer.Addr()),
		zap.Bool("events_enabled", cfg.Events.Enabled),
	)

	if *migrateOnStart {
		migStart := time.Now()
		if err := postgres.MigrateUp(cfg.Database.DSN()); err != nil {
			logger.Fatal("migrating database", zap.Error(err))
		}
		logger.Info("database schema current", zap.Duration("elapsed", time.Since(migStart)))
	}

	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)

	store := pool.Store()
	players := pool.Players()
	src := dice.NewLoggedSource(dice.NewCryptoSource(), logger)
	hub := gameserver.NewEventHub(logger, cfg.Events.BufferSize, cfg.Events.WriteTimeout)

	svc := boss.NewService(store, src, logger,
		boss.WithConfig(cfg.Boss.ServiceConfig()),
		boss.WithPublisher(hub),
	)

	hs := health.NewServer()
	grpcServer := gameserver.NewGRPCServer(gameserver.NewBossServer(svc, logger), players, hs, logger)

	lifecycle := server.NewLifecycle(logger)

	// Stopped last; the pool must outlive every service using it.
	healthCtx, stopHealth := context.WithCancel(ctx)
	watcher := gameserver.NewHealthWatcher(hs, func(ctx context.Context) error {
		return pool.Health(ctx)
	}, *healthInterval, logger)
	lifecycle.Add("postgres", &server.FuncService{
		StartFn: func() error {
			watcher.Run(healthCtx)
			return nil
		},
		StopFn: func() {
			stopHealth()
			pool.Close()
		},
	})

	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func() error {
			lis, err := net.Listen("tcp", cfg.GameServer.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.GameServer.Addr(), err)
			}
			logger.Info("gRPC server listening",
				zap.String("addr", lis.Addr().String()),
			)
			return grpcServer.Serve(lis)
		},
		StopFn: func() {
			grpcServer.GracefulStop()
		},
	})

	if cfg.Events.Enabled {
		mux := http.NewServeMux()
		mux.Handle(cfg.Events.Path, hub)
		httpServer := &http.Server{Addr: cfg.Events.Addr(), Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		lifecycle.Add("events", &server.FuncService{
			StartFn: func() error {
				logger.Info("boss event feed listening",
					zap.String("addr", cfg.Events.Addr()),
					zap.String("path", cfg.Events.Path),
				)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			},
			StopFn: func() {
				hub.Close()
				shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				defer cancel()
				_ = httpServer.Shutdown(shutdownCtx)
			},
		})
	}

	tickCtx, stopTicks := context.WithCancel(ctx)
	ticks := gameserver.NewTickManager(cfg.Boss.RotationInterval)
	ticks.RegisterTick("boss-rotation", gameserver.RotationTick(svc, logger))
	lifecycle.Add("rotation", &server.FuncService{
		StartFn: func() error {
			ticks.Start(tickCtx)
			<-tickCtx.Done()
			return nil
		},
		StopFn: stopTicks,
	})

	logger.Info("world boss server initialized",
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
