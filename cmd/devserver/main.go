// Package main provides the all-in-one development server. It runs the world
// boss service on the in-memory store, seeded from the YAML content
// directories, so no database is needed.
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
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/dice"
	"github.com/idlerealm/worldboss/internal/gameserver"
	"github.com/idlerealm/worldboss/internal/importer"
	"github.com/idlerealm/worldboss/internal/observability"
	"github.com/idlerealm/worldboss/internal/server"
	"github.com/idlerealm/worldboss/internal/storage/memory"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	adminUser := flag.String("admin-user", "admin", "username of the seeded admin account")
	adminPassword := flag.String("admin-password", "admin", "password of the seeded admin account")
	seed := flag.Int64("seed", 0, "seed for deterministic rolls; 0 uses crypto/rand")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "devserver")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting world boss dev server",
		zap.String("mode", cfg.Server.Mode),
		zap.String("grpc_addr", cfg.GameServer.Addr()),
	)

	store := memory.NewStore()
	imp := importer.New(importer.NewDirSource(cfg.Content.ItemDir, cfg.Content.BossDir), store, logger)
	if _, err := imp.Run(ctx); err != nil {
		logger.Fatal("seeding content", zap.Error(err))
	}

	admin, err := store.Create(ctx, *adminUser, *adminPassword)
	if err != nil {
		logger.Fatal("creating admin account", zap.Error(err))
	}
	if err := store.SetRole(ctx, admin.ID, character.RoleAdmin); err != nil {
		logger.Fatal("granting admin role", zap.Error(err))
	}
	logger.Info("admin account ready", zap.String("username", admin.Username))

	var src dice.Source = dice.NewCryptoSource()
	if *seed != 0 {
		src = dice.NewSeededSource(*seed)
	}
	hub := gameserver.NewEventHub(logger, cfg.Events.BufferSize, cfg.Events.WriteTimeout)
	svc := boss.NewService(store, dice.NewLoggedSource(src, logger), logger,
		boss.WithConfig(cfg.Boss.ServiceConfig()),
		boss.WithPublisher(hub),
	)

	grpcServer := gameserver.NewGRPCServer(gameserver.NewBossServer(svc, logger), store, health.NewServer(), logger)

	lifecycle := server.NewLifecycle(logger)

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

	logger.Info("dev server initialized",
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
