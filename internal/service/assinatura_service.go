package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/victor-jaber/Maybach-system-sub000/internal/documento"
	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Dispatcher is the slice of the async job queue the services need.
// Satisfied by worker.Dispatcher.
type Dispatcher interface {
	EnqueueDocumento(ctx context.Context, payload interface{}) error
	EnqueueEmail(ctx context.Context, payload interface{}) error
}

type AssinaturaService interface {
	Emitir(ctx context.Context, contratoID uint) (*dto.EmitirAssinaturaResponse, error)
	Consultar(ctx context.Context, token string) (*dto.AssinaturaPublicaResponse, error)
	Validar(ctx context.Context, token, codigo string) (*dto.ValidarAssinaturaResponse, error)
	Assinar(ctx context.Context, token string) (*dto.AssinarResponse, error)
}

type assinaturaService struct {
	repo          repository.AssinaturaRepository
	contratoRepo  repository.ContratoRepository
	contratos     ContratoService
	dispatcher    Dispatcher
	maxTentativas int
	baseURL       string
}

func NewAssinaturaService(
	repo repository.AssinaturaRepository,
	contratoRepo repository.ContratoRepository,
	contratos ContratoService,
	dispatcher Dispatcher,
	maxTentativas int,
	baseURL string,
) AssinaturaService {
	return &assinaturaService{
		repo:          repo,
		contratoRepo:  contratoRepo,
		contratos:     contratos,
		dispatcher:    dispatcher,
		maxTentativas: maxTentativas,
		baseURL:       baseURL,
	}
}

// novoToken returns 32 hex chars from a CSPRNG — 128 bits, unguessable.
func novoToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ── Emitir ────────────────────────────────────────────────────────────────────
// Invalidates any live token of the contract and creates a fresh pending
// one, both inside one transaction: at most one live token per contract
// at any instant.

func (s *assinaturaService) Emitir(ctx context.Context, contratoID uint) (*dto.EmitirAssinaturaResponse, error) {
	c, err := s.contratoRepo.FindByID(ctx, contratoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	if c.Status != model.ContratoStatusGenerated {
		return nil, &ConflictError{Msg: "contrato precisa estar com status generated para emitir assinatura (atual: " + c.Status + ")"}
	}

	token, err := novoToken()
	if err != nil {
		return nil, err
	}
	assinatura := &model.AssinaturaContrato{
		Token:      token,
		ContratoID: contratoID,
		Status:     model.AssinaturaStatusPending,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.InvalidarVivasTx(tx, contratoID); err != nil {
			return err
		}
		return s.repo.CreateTx(tx, assinatura)
	})
	if txErr != nil {
		return nil, txErr
	}

	link := s.baseURL + "/assinar/" + token

	// Signing link mail is best-effort: the staff screen shows the link
	// either way.
	if s.dispatcher != nil && c.Cliente != nil && c.Cliente.Email != nil && *c.Cliente.Email != "" {
		payload := map[string]interface{}{
			"tipo":         "link_assinatura",
			"destinatario": *c.Cliente.Email,
			"nome":         c.Cliente.Nome,
			"link":         link,
		}
		if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Warn().Err(err).Uint("contrato_id", contratoID).Msg("falha ao enfileirar email de link de assinatura")
		}
	}

	return &dto.EmitirAssinaturaResponse{
		Token:      token,
		Link:       link,
		ContratoID: contratoID,
		Status:     assinatura.Status,
	}, nil
}

// ── Consultar ─────────────────────────────────────────────────────────────────

func (s *assinaturaService) Consultar(ctx context.Context, token string) (*dto.AssinaturaPublicaResponse, error) {
	a, err := s.buscarViva(ctx, token)
	if err != nil {
		return nil, err
	}
	c := a.Contrato

	resp := &dto.AssinaturaPublicaResponse{
		Status:         a.Status,
		ContratoTipo:   c.Tipo,
		ContratoStatus: c.Status,
		TamanhoCodigo:  3,
	}
	if c.Cliente != nil {
		resp.ClienteNome = c.Cliente.Nome
		resp.TipoDocumento = c.Cliente.TipoDocumento
	}
	if c.Veiculo != nil {
		resp.Veiculo = veiculoResumo(c.Veiculo)
	}

	// The legal text only appears after the identity check passed; before
	// that the page shows metadata alone.
	if a.Status == model.AssinaturaStatusValidated || a.Status == model.AssinaturaStatusSigned {
		d, err := s.contratos.MontarDados(ctx, c)
		if err != nil {
			return nil, err
		}
		texto, err := documento.Render(c.Tipo, d)
		if err != nil {
			return nil, err
		}
		resp.Texto = texto
	}
	return resp, nil
}

// buscarViva resolves a token for the public flow. An invalidated token
// is indistinguishable from a nonexistent one.
func (s *assinaturaService) buscarViva(ctx context.Context, token string) (*model.AssinaturaContrato, error) {
	a, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	if a.Status == model.AssinaturaStatusInvalidated {
		return nil, ErrNaoEncontrado
	}
	if a.Contrato == nil {
		return nil, &UpstreamError{Op: "contrato", Err: errors.New("associação não carregada")}
	}
	return a, nil
}

// ── Validar ───────────────────────────────────────────────────────────────────
// Compares the supplied 3-digit code against the customer's identity
// fragment: last 3 digits of an 11-digit CPF, first 3 of a 14-digit
// CNPJ. Mismatches increment the attempt counter atomically; the
// ceiling (when configured) blocks the token.

func (s *assinaturaService) Validar(ctx context.Context, token, codigo string) (*dto.ValidarAssinaturaResponse, error) {
	a, err := s.buscarViva(ctx, token)
	if err != nil {
		return nil, err
	}
	if a.Status == model.AssinaturaStatusSigned {
		return nil, &ConflictError{Msg: "contrato já assinado"}
	}
	if s.maxTentativas > 0 && a.TentativasValidacao >= s.maxTentativas {
		return nil, &ConflictError{Msg: "número máximo de tentativas de validação excedido"}
	}

	fragmento, err := fragmentoIdentidade(a.Contrato.Cliente)
	if err != nil {
		return nil, err
	}

	if codigo != fragmento {
		if _, incErr := s.repo.IncrementarTentativas(ctx, a.ID); incErr != nil {
			log.Error().Err(incErr).Str("token", token).Msg("falha ao incrementar tentativas de validação")
		}
		return nil, ErrCodigoInvalido
	}

	agora := time.Now()
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.UpdateStatusTx(tx, a.ID,
			model.AssinaturaStatusValidated, map[string]interface{}{"validado_em": agora})
	})
	if err != nil {
		return nil, err
	}
	return &dto.ValidarAssinaturaResponse{
		Status:     model.AssinaturaStatusValidated,
		Tentativas: a.TentativasValidacao,
	}, nil
}

// fragmentoIdentidade derives the expected 3-digit code from the
// customer's cleaned document number. Any length other than 11 (CPF) or
// 14 (CNPJ) is a data error, surfaced immediately.
func fragmentoIdentidade(cliente *model.Cliente) (string, error) {
	if cliente == nil {
		return "", &UpstreamError{Op: "cliente", Err: errors.New("associação não carregada")}
	}
	digits := somenteDigitos(cliente.CpfCnpj)
	switch len(digits) {
	case 11:
		return digits[8:], nil
	case 14:
		return digits[:3], nil
	default:
		ve := newValidationError()
		ve.Fields["cpf_cnpj"] = "documento do cliente com tamanho inválido"
		return "", ve
	}
}

func somenteDigitos(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// ── Assinar ───────────────────────────────────────────────────────────────────
// Flips signature and contract together in one transaction — no partial
// signed state. Idempotent once signed.

func (s *assinaturaService) Assinar(ctx context.Context, token string) (*dto.AssinarResponse, error) {
	a, err := s.buscarViva(ctx, token)
	if err != nil {
		// A signed token is no longer "viva" per FindVivaByContrato, but
		// FindByToken still resolves it; buscarViva only hides invalidated.
		return nil, err
	}

	if a.Status == model.AssinaturaStatusSigned {
		assinadoEm := ""
		if a.AssinadoEm != nil {
			assinadoEm = a.AssinadoEm.Format(time.RFC3339)
		}
		return &dto.AssinarResponse{
			Status:         a.Status,
			ContratoStatus: a.Contrato.Status,
			AssinadoEm:     assinadoEm,
		}, nil
	}

	if a.Status != model.AssinaturaStatusValidated {
		return nil, &ConflictError{Msg: "assinatura ainda não validada"}
	}
	if a.Contrato.Status != model.ContratoStatusGenerated {
		return nil, &InvalidTransitionError{De: a.Contrato.Status, Para: model.ContratoStatusSigned}
	}

	agora := time.Now()
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateStatusTx(tx, a.ID,
			model.AssinaturaStatusSigned, map[string]interface{}{"assinado_em": agora}); err != nil {
			return err
		}
		return s.contratoRepo.UpdateStatusTx(tx, a.ContratoID, model.ContratoStatusSigned)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Artifact generation runs async, only on the first successful sign —
	// the idempotent path above never reaches here.
	if s.dispatcher != nil {
		payload := map[string]interface{}{"contrato_id": a.ContratoID}
		if err := s.dispatcher.EnqueueDocumento(ctx, payload); err != nil {
			log.Warn().Err(err).Uint("contrato_id", a.ContratoID).Msg("falha ao enfileirar geração de documento")
		}
	}

	return &dto.AssinarResponse{
		Status:         model.AssinaturaStatusSigned,
		ContratoStatus: model.ContratoStatusSigned,
		AssinadoEm:     agora.Format(time.RFC3339),
	}, nil
}
