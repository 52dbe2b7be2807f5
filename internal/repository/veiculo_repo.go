package repository

import (
	"context"

	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"gorm.io/gorm"
)

type VeiculoRepository interface {
	Create(ctx context.Context, v *model.Veiculo) error
	FindByID(ctx context.Context, id uint) (*model.Veiculo, error)
	List(ctx context.Context, status string, page, limit int) ([]model.Veiculo, int64, error)
	Update(ctx context.Context, v *model.Veiculo) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	CreateMarca(ctx context.Context, m *model.Marca) error
	ListMarcas(ctx context.Context) ([]model.Marca, error)
}

type veiculoRepo struct{ db *gorm.DB }

func NewVeiculoRepository(db *gorm.DB) VeiculoRepository { return &veiculoRepo{db: db} }

func (r *veiculoRepo) Create(ctx context.Context, v *model.Veiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *veiculoRepo) FindByID(ctx context.Context, id uint) (*model.Veiculo, error) {
	var v model.Veiculo
	err := r.db.WithContext(ctx).Preload("Marca").First(&v, id).Error
	return &v, err
}

func (r *veiculoRepo) List(ctx context.Context, status string, page, limit int) ([]model.Veiculo, int64, error) {
	var veiculos []model.Veiculo
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Veiculo{})
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Marca").Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&veiculos).Error
	return veiculos, total, err
}

func (r *veiculoRepo) Update(ctx context.Context, v *model.Veiculo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *veiculoRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Veiculo{}).Where("id = ?", id).Update("status", status).Error
}

func (r *veiculoRepo) CreateMarca(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *veiculoRepo) ListMarcas(ctx context.Context) ([]model.Marca, error) {
	var marcas []model.Marca
	err := r.db.WithContext(ctx).Order("nome").Find(&marcas).Error
	return marcas, err
}
