package worker

// Jobs that exhaust their retries land in a per-queue Redis dead letter
// list (dlq:{queue}) and wait for manual inspection; nothing consumes
// them automatically.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DLQEntry carries the failed job plus enough context to diagnose it
// without the worker logs at hand.
type DLQEntry struct {
	FilaOrigem string          `json:"fila_origem"`
	JobType    string          `json:"job_type"`
	Payload    json.RawMessage `json:"payload"`
	Motivo     string          `json:"motivo"`
	FalhouEm   time.Time       `json:"falhou_em"`
	Tentativas int             `json:"tentativas"`
}

// SendToDLQ parks a job that failed all its attempts. Best-effort: when
// Redis itself is down the entry survives only in the log line.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue, jobType string, payload json.RawMessage, motivo string, tentativas int) {
	entry, err := json.Marshal(DLQEntry{
		FilaOrigem: queue,
		JobType:    jobType,
		Payload:    payload,
		Motivo:     motivo,
		FalhouEm:   time.Now().UTC(),
		Tentativas: tentativas,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: falha ao serializar entrada")
		return
	}

	evt := log.Warn().
		Str("queue", queue).
		Str("job_type", jobType).
		Str("motivo", motivo).
		Int("tentativas", tentativas)
	if err := rdb.LPush(ctx, DLQPrefix+queue, entry).Err(); err != nil {
		evt.Err(err).Msg("dlq: Redis indisponível, entrada perdida")
		return
	}
	evt.Msg("dlq: job movido para a dead letter queue")
}

// DLQLength reports the backlog of one queue's dead letter list.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
