package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/victor-jaber/Maybach-system-sub000/internal/config"
	"github.com/victor-jaber/Maybach-system-sub000/internal/infra"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"
	"github.com/victor-jaber/Maybach-system-sub000/internal/router"
	"github.com/victor-jaber/Maybach-system-sub000/internal/service"
	"github.com/victor-jaber/Maybach-system-sub000/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Circuit breaker shared by the FIPE proxy endpoints and /health
	fipeCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	// Worker pool for async tasks (PDF artifacts, email). Handlers are
	// wired here, at the composition root, with full access to the
	// infrastructure dependencies.
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	contratoRepo := repository.NewContratoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	veiculoRepo := repository.NewVeiculoRepository(db)
	lojaRepo := repository.NewLojaRepository(db)
	contratoSvc := service.NewContratoService(contratoRepo, clienteRepo, veiculoRepo, lojaRepo)

	handlers := worker.Handlers{
		Documento: worker.NewDocumentoWorker(contratoRepo, contratoSvc, dispatcher, rdb, cfg.PDFStoragePath),
		Email:     worker.NewEmailWorker(mailer),
	}
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, handlers)

	// Backfill cron: signed contracts whose artifact never materialized
	worker.StartRetryCron(ctx, worker.RetryCronConfig{
		ContratoRepo: contratoRepo,
		Dispatcher:   dispatcher,
	})

	r := router.New(cfg, db, rdb, fipeCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
