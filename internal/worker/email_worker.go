package worker

// email_worker.go
// Processes email jobs from QueueEmail: signing-link notifications and
// signed-contract PDFs, both via SMTP.

import (
	"context"
	"encoding/json"

	"github.com/victor-jaber/Maybach-system-sub000/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
// Tipo: "link_assinatura" | "documento".
type EmailJobPayload struct {
	Tipo         string `json:"tipo"`
	Destinatario string `json:"destinatario"`
	Nome         string `json:"nome"`
	Assunto      string `json:"assunto,omitempty"`
	Corpo        string `json:"corpo,omitempty"`
	Link         string `json:"link,omitempty"`
	PDFPath      string `json:"pdf_path,omitempty"`
}

type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.Destinatario == "" {
		log.Warn().Msg("email_worker: destinatário vazio — ignorando")
		return
	}

	var err error
	switch payload.Tipo {
	case "link_assinatura":
		err = w.mailer.SendLinkAssinatura(payload.Destinatario, payload.Nome, payload.Link)
	case "documento":
		err = w.mailer.SendDocumento(payload.Destinatario, payload.Assunto, payload.Corpo, payload.PDFPath)
	default:
		log.Warn().Str("tipo", payload.Tipo).Msg("email_worker: tipo desconhecido — ignorando")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("to", payload.Destinatario).Str("tipo", payload.Tipo).
			Msg("email_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.Destinatario).Str("tipo", payload.Tipo).Msg("email_worker: email sent")
}
