package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// VendaFilter is bound from query string of GET /v1/vendas.
type VendaFilter struct {
	ClienteID   uint `form:"cliente_id"`
	SemContrato bool `form:"sem_contrato"`
	Page        int  `form:"page,default=1"   validate:"min=1"`
	Limit       int  `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarVendaRequest struct {
	ClienteID      uint  `json:"cliente_id" validate:"required"`
	VeiculoID      uint  `json:"veiculo_id" validate:"required"`
	VeiculoTrocaID *uint `json:"veiculo_troca_id"`

	ValorTotal decimal.Decimal  `json:"valor_total" validate:"required"`
	Entrada    *decimal.Decimal `json:"entrada"`

	QuantidadeParcelas *int             `json:"quantidade_parcelas" validate:"omitempty,min=1,max=120"`
	ValorParcela       *decimal.Decimal `json:"valor_parcela"`
	DiaVencimento      *int             `json:"dia_vencimento"      validate:"omitempty,min=1,max=31"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VendaResponse struct {
	ID             uint   `json:"id"`
	ClienteNome    string `json:"cliente_nome"`
	Veiculo        string `json:"veiculo"`
	VeiculoTrocaID *uint  `json:"veiculo_troca_id,omitempty"`

	ValorTotal decimal.Decimal  `json:"valor_total"`
	Entrada    *decimal.Decimal `json:"entrada"`

	QuantidadeParcelas *int             `json:"quantidade_parcelas"`
	ValorParcela       *decimal.Decimal `json:"valor_parcela"`
	DiaVencimento      *int             `json:"dia_vencimento"`

	// ContratoID is nil when the automatic contract creation failed;
	// ContratoErro then holds the reason.
	ContratoID   *uint   `json:"contrato_id"`
	ContratoErro *string `json:"contrato_erro,omitempty"`

	CreatedAt string `json:"created_at"`
}

type VendaListResponse struct {
	Data  []VendaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
