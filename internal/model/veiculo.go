package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Marca is a vehicle brand (Fiat, Volkswagen, …).
type Marca struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Veiculo is an inventory vehicle.
// Status: "disponivel" | "reservado" | "vendido" | "consignado"
type Veiculo struct {
	ID        uint   `gorm:"primaryKey"`
	MarcaID   uint   `gorm:"index;not null"`
	Marca     *Marca `gorm:"foreignKey:MarcaID"`
	Modelo    string `gorm:"not null"`
	Ano       int    `gorm:"not null"`
	Cor       string
	Placa     *string `gorm:"type:varchar(10);uniqueIndex"`
	Renavam   *string `gorm:"type:varchar(20)"`
	Chassi    *string `gorm:"type:varchar(30)"`
	Km        *int
	Preco     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status    string          `gorm:"type:varchar(20);not null;default:'disponivel'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
