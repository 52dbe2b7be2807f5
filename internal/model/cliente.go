package model

import "time"

// Cliente is a dealership customer. TipoDocumento: "CPF" | "CNPJ" —
// drives which identity lines appear in the rendered contract and which
// slice of CpfCnpj is used as the signature identity fragment.
type Cliente struct {
	ID            uint   `gorm:"primaryKey"`
	Nome          string `gorm:"not null"`
	CpfCnpj       string `gorm:"type:varchar(20);uniqueIndex;not null"`
	TipoDocumento string `gorm:"type:varchar(4);not null;default:'CPF'"`
	RG            *string
	CNH           *string
	Email         *string
	Telefone      string
	Endereco      string
	Cidade        string
	Estado        string `gorm:"type:varchar(2)"`
	CEP           string `gorm:"type:varchar(10)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
