package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda is a vehicle sale. Creating one triggers the best-effort
// purchase_sale contract bridge: ContratoID links the derived contract
// when the bridge succeeded; ContratoErro records why it did not. A row
// with both fields empty-handed is the observable consistency gap the
// relatório "vendas sem contrato" surfaces.
type Venda struct {
	ID             uint     `gorm:"primaryKey"`
	ClienteID      uint     `gorm:"index;not null"`
	Cliente        *Cliente `gorm:"foreignKey:ClienteID"`
	VeiculoID      uint     `gorm:"index;not null"`
	Veiculo        *Veiculo `gorm:"foreignKey:VeiculoID"`
	VeiculoTrocaID *uint    `gorm:"index"`
	UsuarioID      uint     `gorm:"index;not null"`

	ValorTotal         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Entrada            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	QuantidadeParcelas *int
	ValorParcela       *decimal.Decimal `gorm:"type:decimal(12,2)"`
	DiaVencimento      *int

	ContratoID   *uint   `gorm:"index"`
	ContratoErro *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
