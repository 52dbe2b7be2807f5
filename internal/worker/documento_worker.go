package worker

// documento_worker.go
// Processes contract-artifact jobs from QueueDocumento: renders the
// legal text of a signed contract, lays it out as a PDF and records the
// result as an append-only ContratoArquivo row. The job is enqueued once
// per first successful sign; the backfill cron re-enqueues signed
// contracts whose artifact never materialized.

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/victor-jaber/Maybach-system-sub000/internal/documento"
	"github.com/victor-jaber/Maybach-system-sub000/internal/infra"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"
	"github.com/victor-jaber/Maybach-system-sub000/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DocumentoJobPayload is the job envelope sent to QueueDocumento.
type DocumentoJobPayload struct {
	ContratoID uint `json:"contrato_id"`
}

type DocumentoWorker struct {
	contratoRepo   repository.ContratoRepository
	contratos      service.ContratoService
	dispatcher     *Dispatcher
	rdb            *redis.Client
	pdfStoragePath string
}

func NewDocumentoWorker(
	contratoRepo repository.ContratoRepository,
	contratos service.ContratoService,
	dispatcher *Dispatcher,
	rdb *redis.Client,
	pdfStoragePath string,
) *DocumentoWorker {
	return &DocumentoWorker{
		contratoRepo:   contratoRepo,
		contratos:      contratos,
		dispatcher:     dispatcher,
		rdb:            rdb,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single documento job:
//  1. Fetch the contract with its associations
//  2. Skip if an artifact already exists (idempotent under re-enqueue)
//  3. Render the legal text and write the PDF (with retry)
//  4. Record the ContratoArquivo row
//  5. Enqueue the email job when the customer has an address
func (w *DocumentoWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload DocumentoJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("documento_worker: invalid payload")
		return
	}

	c, err := w.contratoRepo.FindByID(ctx, payload.ContratoID)
	if err != nil {
		log.Error().Err(err).Uint("contrato_id", payload.ContratoID).Msg("documento_worker: contrato não encontrado")
		return
	}
	if c.Status != model.ContratoStatusSigned {
		log.Warn().Uint("contrato_id", c.ID).Str("status", c.Status).Msg("documento_worker: contrato não assinado — ignorando")
		return
	}
	if len(c.Arquivos) > 0 {
		log.Info().Uint("contrato_id", c.ID).Msg("documento_worker: artefato já existe — ignorando")
		return
	}

	dados, err := w.contratos.MontarDados(ctx, c)
	if err != nil {
		log.Error().Err(err).Uint("contrato_id", c.ID).Msg("documento_worker: falha ao montar dados")
		return
	}
	texto, err := documento.Render(c.Tipo, dados)
	if err != nil {
		log.Error().Err(err).Uint("contrato_id", c.ID).Msg("documento_worker: falha ao renderizar documento")
		return
	}

	var fileName string
	genErr := withRetry(ctx, 3, func(attempt int) error {
		name, err := infra.GenerateContratoPDF(c.ID, texto, w.pdfStoragePath)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).Uint("contrato_id", c.ID).
				Msg("documento_worker: geração de PDF falhou, tentando novamente")
			return err
		}
		fileName = name
		return nil
	})
	if genErr != nil {
		log.Error().Err(genErr).Uint("contrato_id", c.ID).Msg("documento_worker: PDF falhou após todas as tentativas")
		SendToDLQ(ctx, w.rdb, QueueDocumento, "documento", raw, genErr.Error(), 3)
		return
	}

	arquivo := &model.ContratoArquivo{
		ContratoID: c.ID,
		Nome:       fileName,
		Caminho:    fileName,
	}
	if err := w.contratoRepo.CreateArquivo(ctx, arquivo); err != nil {
		log.Error().Err(err).Uint("contrato_id", c.ID).Msg("documento_worker: falha ao gravar arquivo")
		SendToDLQ(ctx, w.rdb, QueueDocumento, "documento", raw, err.Error(), 1)
		return
	}
	log.Info().Uint("contrato_id", c.ID).Str("pdf", fileName).Msg("documento_worker: artefato gerado")

	if w.dispatcher != nil && c.Cliente != nil && c.Cliente.Email != nil && *c.Cliente.Email != "" {
		emailJob := EmailJobPayload{
			Tipo:         "documento",
			Destinatario: *c.Cliente.Email,
			Nome:         c.Cliente.Nome,
			Assunto:      fmt.Sprintf("Contrato assinado — via do cliente (nº %d)", c.ID),
			Corpo:        "Segue em anexo a sua via do contrato assinado.",
			PDFPath:      filepath.Join(w.pdfStoragePath, fileName),
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *c.Cliente.Email).Msg("documento_worker: falha ao enfileirar email")
		}
	}
}
