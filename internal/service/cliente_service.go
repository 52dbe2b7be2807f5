package service

import (
	"context"
	"errors"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"

	"gorm.io/gorm"
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Buscar(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	Excluir(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	digits := somenteDigitos(req.CpfCnpj)
	if (req.TipoDocumento == "CPF" && len(digits) != 11) ||
		(req.TipoDocumento == "CNPJ" && len(digits) != 14) {
		ve := newValidationError()
		ve.Fields["cpf_cnpj"] = "tamanho incompatível com tipo_documento " + req.TipoDocumento
		return nil, ve
	}
	c := &model.Cliente{
		Nome:          req.Nome,
		CpfCnpj:       digits,
		TipoDocumento: req.TipoDocumento,
		RG:            req.RG,
		CNH:           req.CNH,
		Email:         req.Email,
		Telefone:      req.Telefone,
		Endereco:      req.Endereco,
		Cidade:        req.Cidade,
		Estado:        req.Estado,
		CEP:           req.CEP,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Buscar(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	clientes, total, err := s.repo.List(ctx, filter.Busca, filter.Page, filter.Limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		items[i] = clienteToResponse(&clientes[i])
	}
	return &dto.ClienteListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	if req.Nome != "" {
		c.Nome = req.Nome
	}
	if req.TipoDocumento != "" {
		c.TipoDocumento = req.TipoDocumento
	}
	if req.RG != nil {
		c.RG = req.RG
	}
	if req.CNH != nil {
		c.CNH = req.CNH
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Telefone != "" {
		c.Telefone = req.Telefone
	}
	if req.Endereco != "" {
		c.Endereco = req.Endereco
	}
	if req.Cidade != "" {
		c.Cidade = req.Cidade
	}
	if req.Estado != "" {
		c.Estado = req.Estado
	}
	if req.CEP != "" {
		c.CEP = req.CEP
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Excluir(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func clienteToResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:            c.ID,
		Nome:          c.Nome,
		CpfCnpj:       c.CpfCnpj,
		TipoDocumento: c.TipoDocumento,
		RG:            c.RG,
		CNH:           c.CNH,
		Email:         c.Email,
		Telefone:      c.Telefone,
		Endereco:      c.Endereco,
		Cidade:        c.Cidade,
		Estado:        c.Estado,
		CEP:           c.CEP,
	}
}
