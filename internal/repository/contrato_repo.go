package repository

import (
	"context"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"gorm.io/gorm"
)

type ContratoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Contrato) error
	FindByID(ctx context.Context, id uint) (*model.Contrato, error)
	Update(ctx context.Context, c *model.Contrato) error
	UpdateStatusTx(tx *gorm.DB, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ContratoFilter) ([]model.Contrato, int64, error)

	ReplaceParcelas(ctx context.Context, contratoID uint, parcelas []model.ContratoParcela) error
	MarcarParcelaPaga(ctx context.Context, contratoID uint, numero int, paga bool) error

	CreateArquivo(ctx context.Context, a *model.ContratoArquivo) error
	FindArquivoByID(ctx context.Context, id uint) (*model.ContratoArquivo, error)
	ListArquivos(ctx context.Context, contratoID uint) ([]model.ContratoArquivo, error)
	// ListAssinadosSemArquivo feeds the artifact backfill cron: signed
	// contracts whose document job never produced a ContratoArquivo.
	ListAssinadosSemArquivo(ctx context.Context, limit int) ([]model.Contrato, error)

	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type contratoRepo struct{ db *gorm.DB }

func NewContratoRepository(db *gorm.DB) ContratoRepository { return &contratoRepo{db: db} }

func (r *contratoRepo) DB() *gorm.DB { return r.db }

func (r *contratoRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Contrato) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(c).Error
}

func (r *contratoRepo) FindByID(ctx context.Context, id uint) (*model.Contrato, error) {
	var c model.Contrato
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Veiculo.Marca").
		Preload("VeiculoTroca.Marca").
		Preload("Parcelas", func(db *gorm.DB) *gorm.DB { return db.Order("numero") }).
		Preload("Arquivos").
		First(&c, id).Error
	return &c, err
}

func (r *contratoRepo) Update(ctx context.Context, c *model.Contrato) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contratoRepo) UpdateStatusTx(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&model.Contrato{}).Where("id = ?", id).Update("status", status).Error
}

func (r *contratoRepo) Delete(ctx context.Context, id uint) error {
	// Parcelas cascade via FK; arquivos are append-only and keep their rows.
	return r.db.WithContext(ctx).Delete(&model.Contrato{}, id).Error
}

func (r *contratoRepo) List(ctx context.Context, filter dto.ContratoFilter) ([]model.Contrato, int64, error) {
	var contratos []model.Contrato
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Contrato{})
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.ClienteID != 0 {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Cliente").Preload("Veiculo.Marca").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit).
		Find(&contratos).Error
	return contratos, total, err
}

func (r *contratoRepo) ReplaceParcelas(ctx context.Context, contratoID uint, parcelas []model.ContratoParcela) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contrato_id = ?", contratoID).Delete(&model.ContratoParcela{}).Error; err != nil {
			return err
		}
		if len(parcelas) == 0 {
			return nil
		}
		return tx.Create(&parcelas).Error
	})
}

func (r *contratoRepo) MarcarParcelaPaga(ctx context.Context, contratoID uint, numero int, paga bool) error {
	res := r.db.WithContext(ctx).Model(&model.ContratoParcela{}).
		Where("contrato_id = ? AND numero = ?", contratoID, numero).
		Update("paga", paga)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contratoRepo) CreateArquivo(ctx context.Context, a *model.ContratoArquivo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *contratoRepo) FindArquivoByID(ctx context.Context, id uint) (*model.ContratoArquivo, error) {
	var a model.ContratoArquivo
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *contratoRepo) ListArquivos(ctx context.Context, contratoID uint) ([]model.ContratoArquivo, error) {
	var arquivos []model.ContratoArquivo
	err := r.db.WithContext(ctx).
		Where("contrato_id = ?", contratoID).
		Order("created_at DESC").
		Find(&arquivos).Error
	return arquivos, err
}

func (r *contratoRepo) ListAssinadosSemArquivo(ctx context.Context, limit int) ([]model.Contrato, error) {
	var contratos []model.Contrato
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ContratoStatusSigned).
		Where("NOT EXISTS (SELECT 1 FROM contrato_arquivos a WHERE a.contrato_id = contratos.id)").
		Limit(limit).
		Find(&contratos).Error
	return contratos, err
}
