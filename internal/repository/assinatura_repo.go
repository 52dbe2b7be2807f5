package repository

import (
	"context"

	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"gorm.io/gorm"
)

type AssinaturaRepository interface {
	CreateTx(tx *gorm.DB, a *model.AssinaturaContrato) error
	// InvalidarVivasTx flips every pending/validated token of the contract
	// to invalidated. Runs in the same transaction as the insert of the
	// replacement token so two concurrent issuances converge to exactly
	// one live token (the partial unique index rejects the loser).
	InvalidarVivasTx(tx *gorm.DB, contratoID uint) (int64, error)
	FindByToken(ctx context.Context, token string) (*model.AssinaturaContrato, error)
	FindVivaByContrato(ctx context.Context, contratoID uint) (*model.AssinaturaContrato, error)
	// IncrementarTentativas bumps the attempt counter as a single SQL
	// expression and returns the new count — never read-modify-write.
	IncrementarTentativas(ctx context.Context, id uint) (int, error)
	UpdateStatusTx(tx *gorm.DB, id uint, status string, campos map[string]interface{}) error
	DB() *gorm.DB
}

type assinaturaRepo struct{ db *gorm.DB }

func NewAssinaturaRepository(db *gorm.DB) AssinaturaRepository { return &assinaturaRepo{db: db} }

func (r *assinaturaRepo) DB() *gorm.DB { return r.db }

func (r *assinaturaRepo) CreateTx(tx *gorm.DB, a *model.AssinaturaContrato) error {
	return tx.Create(a).Error
}

func (r *assinaturaRepo) InvalidarVivasTx(tx *gorm.DB, contratoID uint) (int64, error) {
	res := tx.Model(&model.AssinaturaContrato{}).
		Where("contrato_id = ? AND status IN ?", contratoID,
			[]string{model.AssinaturaStatusPending, model.AssinaturaStatusValidated}).
		Update("status", model.AssinaturaStatusInvalidated)
	return res.RowsAffected, res.Error
}

func (r *assinaturaRepo) FindByToken(ctx context.Context, token string) (*model.AssinaturaContrato, error) {
	var a model.AssinaturaContrato
	err := r.db.WithContext(ctx).
		Preload("Contrato.Cliente").
		Preload("Contrato.Veiculo.Marca").
		Where("token = ?", token).
		First(&a).Error
	return &a, err
}

func (r *assinaturaRepo) FindVivaByContrato(ctx context.Context, contratoID uint) (*model.AssinaturaContrato, error) {
	var a model.AssinaturaContrato
	err := r.db.WithContext(ctx).
		Where("contrato_id = ? AND status IN ?", contratoID,
			[]string{model.AssinaturaStatusPending, model.AssinaturaStatusValidated}).
		First(&a).Error
	return &a, err
}

func (r *assinaturaRepo) IncrementarTentativas(ctx context.Context, id uint) (int, error) {
	var tentativas int
	err := r.db.WithContext(ctx).Raw(
		`UPDATE assinatura_contratos
		    SET tentativas_validacao = tentativas_validacao + 1, updated_at = NOW()
		  WHERE id = ?
		  RETURNING tentativas_validacao`, id).
		Scan(&tentativas).Error
	return tentativas, err
}

func (r *assinaturaRepo) UpdateStatusTx(tx *gorm.DB, id uint, status string, campos map[string]interface{}) error {
	updates := map[string]interface{}{"status": status}
	for k, v := range campos {
		updates[k] = v
	}
	return tx.Model(&model.AssinaturaContrato{}).Where("id = ?", id).Updates(updates).Error
}
