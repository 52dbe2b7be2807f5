package service

import (
	"context"
	"errors"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"

	"gorm.io/gorm"
)

// LojaService manages the dealership's own legal profile — the seller
// party of every rendered contract.
type LojaService interface {
	Buscar(ctx context.Context) (*dto.LojaResponse, error)
	Atualizar(ctx context.Context, req dto.AtualizarLojaRequest) (*dto.LojaResponse, error)
}

type lojaService struct {
	repo repository.LojaRepository
}

func NewLojaService(repo repository.LojaRepository) LojaService {
	return &lojaService{repo: repo}
}

func (s *lojaService) Buscar(ctx context.Context) (*dto.LojaResponse, error) {
	l, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return lojaToResponse(l), nil
}

func (s *lojaService) Atualizar(ctx context.Context, req dto.AtualizarLojaRequest) (*dto.LojaResponse, error) {
	l := &model.Loja{
		RazaoSocial:   req.RazaoSocial,
		CNPJ:          somenteDigitos(req.CNPJ),
		Endereco:      req.Endereco,
		Cidade:        req.Cidade,
		Estado:        req.Estado,
		CEP:           req.CEP,
		Representante: req.Representante,
		Telefone:      req.Telefone,
		Email:         req.Email,
	}
	if req.NomeFantasia != "" {
		l.NomeFantasia = &req.NomeFantasia
	}
	if err := s.repo.Upsert(ctx, l); err != nil {
		return nil, err
	}
	return lojaToResponse(l), nil
}

func lojaToResponse(l *model.Loja) *dto.LojaResponse {
	return &dto.LojaResponse{
		ID:            l.ID,
		RazaoSocial:   l.RazaoSocial,
		NomeFantasia:  derefStr(l.NomeFantasia),
		CNPJ:          l.CNPJ,
		Endereco:      l.Endereco,
		Cidade:        l.Cidade,
		Estado:        l.Estado,
		CEP:           l.CEP,
		Representante: l.Representante,
		Telefone:      l.Telefone,
		Email:         l.Email,
	}
}
