package service

import (
	"context"
	"errors"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"

	"gorm.io/gorm"
)

type VeiculoService interface {
	Criar(ctx context.Context, req dto.CriarVeiculoRequest) (*dto.VeiculoResponse, error)
	Buscar(ctx context.Context, id uint) (*dto.VeiculoResponse, error)
	Listar(ctx context.Context, status string, page, limit int) (*dto.VeiculoListResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarVeiculoRequest) (*dto.VeiculoResponse, error)
	CriarMarca(ctx context.Context, req dto.CriarMarcaRequest) (*dto.MarcaResponse, error)
	ListarMarcas(ctx context.Context) ([]dto.MarcaResponse, error)
}

type veiculoService struct {
	repo repository.VeiculoRepository
}

func NewVeiculoService(repo repository.VeiculoRepository) VeiculoService {
	return &veiculoService{repo: repo}
}

func (s *veiculoService) Criar(ctx context.Context, req dto.CriarVeiculoRequest) (*dto.VeiculoResponse, error) {
	v := &model.Veiculo{
		MarcaID: req.MarcaID,
		Modelo:  req.Modelo,
		Ano:     req.Ano,
		Cor:     req.Cor,
		Placa:   req.Placa,
		Renavam: req.Renavam,
		Chassi:  req.Chassi,
		Km:      req.Km,
		Preco:   req.Preco,
		Status:  "disponivel",
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return s.Buscar(ctx, v.ID)
}

func (s *veiculoService) Buscar(ctx context.Context, id uint) (*dto.VeiculoResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	resp := veiculoToResponse(v)
	return &resp, nil
}

func (s *veiculoService) Listar(ctx context.Context, status string, page, limit int) (*dto.VeiculoListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	veiculos, total, err := s.repo.List(ctx, status, page, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VeiculoResponse, len(veiculos))
	for i := range veiculos {
		items[i] = veiculoToResponse(&veiculos[i])
	}
	return &dto.VeiculoListResponse{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *veiculoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarVeiculoRequest) (*dto.VeiculoResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	if req.MarcaID != 0 {
		v.MarcaID = req.MarcaID
	}
	if req.Modelo != "" {
		v.Modelo = req.Modelo
	}
	if req.Ano != 0 {
		v.Ano = req.Ano
	}
	if req.Cor != "" {
		v.Cor = req.Cor
	}
	if req.Placa != nil {
		v.Placa = req.Placa
	}
	if req.Renavam != nil {
		v.Renavam = req.Renavam
	}
	if req.Chassi != nil {
		v.Chassi = req.Chassi
	}
	if req.Km != nil {
		v.Km = req.Km
	}
	if req.Preco != nil {
		v.Preco = *req.Preco
	}
	if req.Status != "" {
		v.Status = req.Status
	}
	v.Marca = nil
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return s.Buscar(ctx, v.ID)
}

func (s *veiculoService) CriarMarca(ctx context.Context, req dto.CriarMarcaRequest) (*dto.MarcaResponse, error) {
	m := &model.Marca{Nome: req.Nome}
	if err := s.repo.CreateMarca(ctx, m); err != nil {
		return nil, err
	}
	return &dto.MarcaResponse{ID: m.ID, Nome: m.Nome}, nil
}

func (s *veiculoService) ListarMarcas(ctx context.Context) ([]dto.MarcaResponse, error) {
	marcas, err := s.repo.ListMarcas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarcaResponse, len(marcas))
	for i, m := range marcas {
		out[i] = dto.MarcaResponse{ID: m.ID, Nome: m.Nome}
	}
	return out, nil
}

func veiculoToResponse(v *model.Veiculo) dto.VeiculoResponse {
	resp := dto.VeiculoResponse{
		ID:      v.ID,
		Modelo:  v.Modelo,
		Ano:     v.Ano,
		Cor:     v.Cor,
		Placa:   v.Placa,
		Renavam: v.Renavam,
		Chassi:  v.Chassi,
		Km:      v.Km,
		Preco:   v.Preco,
		Status:  v.Status,
	}
	if v.Marca != nil {
		resp.Marca = v.Marca.Nome
	}
	return resp
}
