package repository

import (
	"context"

	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"gorm.io/gorm"
)

type LojaRepository interface {
	// Get returns the dealership profile (single row expected).
	Get(ctx context.Context) (*model.Loja, error)
	Upsert(ctx context.Context, l *model.Loja) error
}

type lojaRepo struct{ db *gorm.DB }

func NewLojaRepository(db *gorm.DB) LojaRepository { return &lojaRepo{db: db} }

func (r *lojaRepo) Get(ctx context.Context) (*model.Loja, error) {
	var l model.Loja
	err := r.db.WithContext(ctx).Order("id").First(&l).Error
	return &l, err
}

func (r *lojaRepo) Upsert(ctx context.Context, l *model.Loja) error {
	var existente model.Loja
	err := r.db.WithContext(ctx).Order("id").First(&existente).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(l).Error
	}
	if err != nil {
		return err
	}
	l.ID = existente.ID
	return r.db.WithContext(ctx).Save(l).Error
}
