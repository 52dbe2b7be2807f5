package service

import (
	"context"
	"errors"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaService interface {
	Registrar(ctx context.Context, usuarioID uint, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	Buscar(ctx context.Context, id uint) (*dto.VendaResponse, error)
	Listar(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error)
	ListarSemContrato(ctx context.Context) ([]dto.VendaResponse, error)
}

type vendaService struct {
	repo        repository.VendaRepository
	clienteRepo repository.ClienteRepository
	veiculoRepo repository.VeiculoRepository
	contratos   ContratoService
}

func NewVendaService(
	repo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	veiculoRepo repository.VeiculoRepository,
	contratos ContratoService,
) VendaService {
	return &vendaService{
		repo:        repo,
		clienteRepo: clienteRepo,
		veiculoRepo: veiculoRepo,
		contratos:   contratos,
	}
}

// ── Registrar ─────────────────────────────────────────────────────────────────
// The sale is committed first; the purchase_sale contract bridge runs
// after and is explicitly best-effort — its failure is recorded on the
// sale (contrato_erro) and never propagates. Sales must not be blocked
// by contract paperwork; the gap stays queryable via ListarSemContrato.

func (s *vendaService) Registrar(ctx context.Context, usuarioID uint, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	if _, err := s.clienteRepo.FindByID(ctx, req.ClienteID); err != nil {
		return nil, classificarLookup("cliente", err)
	}
	veiculo, err := s.veiculoRepo.FindByID(ctx, req.VeiculoID)
	if err != nil {
		return nil, classificarLookup("veículo", err)
	}
	if veiculo.Status == "vendido" {
		return nil, &ConflictError{Msg: "veículo já vendido"}
	}

	entrada := decimal.Zero
	if req.Entrada != nil {
		entrada = *req.Entrada
	}
	venda := &model.Venda{
		ClienteID:          req.ClienteID,
		VeiculoID:          req.VeiculoID,
		VeiculoTrocaID:     req.VeiculoTrocaID,
		UsuarioID:          usuarioID,
		ValorTotal:         req.ValorTotal,
		Entrada:            entrada,
		QuantidadeParcelas: req.QuantidadeParcelas,
		ValorParcela:       req.ValorParcela,
		DiaVencimento:      req.DiaVencimento,
	}
	if err := s.repo.Create(ctx, venda); err != nil {
		return nil, err
	}

	if err := s.veiculoRepo.UpdateStatus(ctx, req.VeiculoID, "vendido"); err != nil {
		log.Warn().Err(err).Uint("veiculo_id", req.VeiculoID).Msg("falha ao marcar veículo como vendido")
	}

	// Ponte venda → contrato (best-effort)
	contrato, bridgeErr := s.contratos.CriarDeVenda(ctx, venda)
	if bridgeErr != nil {
		msg := bridgeErr.Error()
		venda.ContratoErro = &msg
		log.Warn().Err(bridgeErr).Uint("venda_id", venda.ID).Msg("venda registrada sem contrato")
	} else {
		venda.ContratoID = &contrato.ID
	}
	if err := s.repo.Update(ctx, venda); err != nil {
		log.Error().Err(err).Uint("venda_id", venda.ID).Msg("falha ao gravar vínculo venda-contrato")
	}

	return s.Buscar(ctx, venda.ID)
}

func (s *vendaService) Buscar(ctx context.Context, id uint) (*dto.VendaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return vendaToResponse(v), nil
}

func (s *vendaService) Listar(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	vendas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		items = append(items, *vendaToResponse(&v))
	}
	return &dto.VendaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *vendaService) ListarSemContrato(ctx context.Context) ([]dto.VendaResponse, error) {
	vendas, err := s.repo.ListSemContrato(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		out = append(out, *vendaToResponse(&v))
	}
	return out, nil
}

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	entrada := v.Entrada
	resp := &dto.VendaResponse{
		ID:                 v.ID,
		VeiculoTrocaID:     v.VeiculoTrocaID,
		ValorTotal:         v.ValorTotal,
		Entrada:            &entrada,
		QuantidadeParcelas: v.QuantidadeParcelas,
		ValorParcela:       v.ValorParcela,
		DiaVencimento:      v.DiaVencimento,
		ContratoID:         v.ContratoID,
		ContratoErro:       v.ContratoErro,
		CreatedAt:          v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if v.Cliente != nil {
		resp.ClienteNome = v.Cliente.Nome
	}
	if v.Veiculo != nil {
		resp.Veiculo = veiculoResumo(v.Veiculo)
	}
	return resp
}
