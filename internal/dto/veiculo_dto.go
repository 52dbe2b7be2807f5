package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarVeiculoRequest struct {
	MarcaID uint            `json:"marca_id" validate:"required"`
	Modelo  string          `json:"modelo"   validate:"required,min=1,max=100"`
	Ano     int             `json:"ano"      validate:"required,min=1950"`
	Cor     string          `json:"cor"      validate:"omitempty,max=40"`
	Placa   *string         `json:"placa"    validate:"omitempty,max=8"`
	Renavam *string         `json:"renavam"  validate:"omitempty,max=11"`
	Chassi  *string         `json:"chassi"   validate:"omitempty,max=17"`
	Km      *int            `json:"km"       validate:"omitempty,min=0"`
	Preco   decimal.Decimal `json:"preco"    validate:"required"`
}

type AtualizarVeiculoRequest struct {
	MarcaID uint             `json:"marca_id" validate:"omitempty"`
	Modelo  string           `json:"modelo"   validate:"omitempty,min=1,max=100"`
	Ano     int              `json:"ano"      validate:"omitempty,min=1950"`
	Cor     string           `json:"cor"      validate:"omitempty,max=40"`
	Placa   *string          `json:"placa"    validate:"omitempty,max=8"`
	Renavam *string          `json:"renavam"  validate:"omitempty,max=11"`
	Chassi  *string          `json:"chassi"   validate:"omitempty,max=17"`
	Km      *int             `json:"km"       validate:"omitempty,min=0"`
	Preco   *decimal.Decimal `json:"preco"`
	Status  string           `json:"status"   validate:"omitempty,oneof=disponivel reservado vendido consignado"`
}

type CriarMarcaRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=60"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VeiculoResponse struct {
	ID      uint            `json:"id"`
	Marca   string          `json:"marca"`
	Modelo  string          `json:"modelo"`
	Ano     int             `json:"ano"`
	Cor     string          `json:"cor"`
	Placa   *string         `json:"placa"`
	Renavam *string         `json:"renavam"`
	Chassi  *string         `json:"chassi"`
	Km      *int            `json:"km"`
	Preco   decimal.Decimal `json:"preco"`
	Status  string          `json:"status"`
}

type VeiculoListResponse struct {
	Data  []VeiculoResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type MarcaResponse struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}
