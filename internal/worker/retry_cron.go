package worker

// retry_cron.go
// Background goroutine that periodically looks for signed contracts
// whose PDF artifact never materialized (crashed worker, Redis flush)
// and re-enqueues the documento job for them.

import (
	"context"
	"time"

	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 60 * time.Second
	retryBatchSize    = 10
)

// RetryCronConfig holds all dependencies for the backfill goroutine.
type RetryCronConfig struct {
	ContratoRepo repository.ContratoRepository
	Dispatcher   *Dispatcher
}

// StartRetryCron launches a background goroutine that ticks every 60s,
// queries signed-without-artifact contracts and re-enqueues their jobs.
// It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processBackfill(ctx, cfg)
			}
		}
	}()
}

func processBackfill(ctx context.Context, cfg RetryCronConfig) {
	contratos, err := cfg.ContratoRepo.ListAssinadosSemArquivo(ctx, retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query signed contracts without artifact")
		return
	}
	if len(contratos) == 0 {
		return
	}

	log.Info().Int("count", len(contratos)).Msg("retry_cron: re-enqueueing documento jobs")

	for _, c := range contratos {
		payload := DocumentoJobPayload{ContratoID: c.ID}
		if err := cfg.Dispatcher.EnqueueDocumento(ctx, payload); err != nil {
			log.Warn().Err(err).Uint("contrato_id", c.ID).Msg("retry_cron: failed to enqueue")
		}
	}
}
