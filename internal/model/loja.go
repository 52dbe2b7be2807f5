package model

import "time"

// Loja is the dealership's own legal profile — the seller party printed
// in every contract header. A single row is expected; the repository
// returns the first one.
type Loja struct {
	ID            uint   `gorm:"primaryKey"`
	RazaoSocial   string `gorm:"not null"`
	NomeFantasia  *string
	CNPJ          string `gorm:"type:varchar(20);not null"`
	Endereco      string
	Cidade        string
	Estado        string `gorm:"type:varchar(2)"`
	CEP           string `gorm:"type:varchar(10)"`
	Representante string
	Telefone      string
	Email         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
