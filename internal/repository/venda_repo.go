package repository

import (
	"context"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"gorm.io/gorm"
)

type VendaRepository interface {
	Create(ctx context.Context, v *model.Venda) error
	FindByID(ctx context.Context, id uint) (*model.Venda, error)
	Update(ctx context.Context, v *model.Venda) error
	List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error)
	// ListSemContrato exposes the consistency gap left by the best-effort
	// sale→contract bridge: sales whose contract creation failed.
	ListSemContrato(ctx context.Context) ([]model.Venda, error)
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) Create(ctx context.Context, v *model.Venda) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, id uint) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Veiculo.Marca").
		First(&v, id).Error
	return &v, err
}

func (r *vendaRepo) Update(ctx context.Context, v *model.Venda) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vendaRepo) List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	var vendas []model.Venda
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venda{})
	if filter.ClienteID != 0 {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.SemContrato {
		q = q.Where("contrato_id IS NULL")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Cliente").Preload("Veiculo.Marca").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit).
		Find(&vendas).Error
	return vendas, total, err
}

func (r *vendaRepo) ListSemContrato(ctx context.Context) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Veiculo.Marca").
		Where("contrato_id IS NULL").
		Order("created_at DESC").
		Find(&vendas).Error
	return vendas, err
}
