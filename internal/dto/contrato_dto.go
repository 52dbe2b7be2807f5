package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ContratoFilter is bound from query string of GET /v1/contratos.
type ContratoFilter struct {
	Status    string `form:"status,default=all"` // draft | generated | signed | cancelled | all
	Tipo      string `form:"tipo"`
	ClienteID uint   `form:"cliente_id"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ContratoListItem struct {
	ID          uint             `json:"id"`
	Tipo        string           `json:"tipo"`
	Status      string           `json:"status"`
	ClienteNome string           `json:"cliente_nome"`
	Veiculo     string           `json:"veiculo"`
	ValorVenda  *decimal.Decimal `json:"valor_venda"`
	CreatedAt   string           `json:"created_at"`
}

type ContratoListResponse struct {
	Data  []ContratoListItem `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CriarContratoRequest carries the full field surface; which subset is
// required depends on Tipo and is enforced in the service layer.
type CriarContratoRequest struct {
	Tipo           string `json:"tipo"       validate:"required,oneof=entry_complement purchase_sale vehicle_purchase consignment delivery_protocol consignment_withdrawal"`
	ClienteID      uint   `json:"cliente_id" validate:"required"`
	VeiculoID      uint   `json:"veiculo_id" validate:"required"`
	VeiculoTrocaID *uint  `json:"veiculo_troca_id"`

	ValorVenda   *decimal.Decimal `json:"valor_venda"`
	EntradaTotal *decimal.Decimal `json:"entrada_total"`
	EntradaPaga  *decimal.Decimal `json:"entrada_paga"`

	FormaPagamentoRestante *string          `json:"forma_pagamento_restante" validate:"omitempty,oneof=avista parcelado"`
	QuantidadeParcelas     *int             `json:"quantidade_parcelas"      validate:"omitempty,min=1,max=120"`
	ValorParcela           *decimal.Decimal `json:"valor_parcela"`
	DiaVencimento          *int             `json:"dia_vencimento"           validate:"omitempty,min=1,max=31"`
	FormaPagamentoParcelas *string          `json:"forma_pagamento_parcelas" validate:"omitempty,oneof=pix boleto transferencia"`
	DataVencimentoAvista   *string          `json:"data_vencimento_avista"` // YYYY-MM-DD

	MultaAtraso *decimal.Decimal `json:"multa_atraso" validate:"omitempty"`
	JurosAtraso *decimal.Decimal `json:"juros_atraso" validate:"omitempty"`

	ValorFinanciado  *decimal.Decimal `json:"valor_financiado"`
	BancoFinanciador *string          `json:"banco_financiador"`

	ValorMinimoVenda        *decimal.Decimal `json:"valor_minimo_venda"`
	ComissaoLoja            *decimal.Decimal `json:"comissao_loja"`
	PrazoConsignacao        *int             `json:"prazo_consignacao" validate:"omitempty,min=1"`
	MultaRetiradaAntecipada *decimal.Decimal `json:"multa_retirada_antecipada"`

	ChavePrincipal *bool `json:"chave_principal"`
	ChaveReserva   *bool `json:"chave_reserva"`
	Manual         *bool `json:"manual"`

	CondicaoGeral *string `json:"condicao_geral"`
	Observacoes   *string `json:"observacoes"`
}

// AtualizarContratoRequest mirrors the create surface minus Tipo, which
// is fixed for the lifetime of the contract.
type AtualizarContratoRequest struct {
	ClienteID      uint  `json:"cliente_id" validate:"required"`
	VeiculoID      uint  `json:"veiculo_id" validate:"required"`
	VeiculoTrocaID *uint `json:"veiculo_troca_id"`

	ValorVenda   *decimal.Decimal `json:"valor_venda"`
	EntradaTotal *decimal.Decimal `json:"entrada_total"`
	EntradaPaga  *decimal.Decimal `json:"entrada_paga"`

	FormaPagamentoRestante *string          `json:"forma_pagamento_restante" validate:"omitempty,oneof=avista parcelado"`
	QuantidadeParcelas     *int             `json:"quantidade_parcelas"      validate:"omitempty,min=1,max=120"`
	ValorParcela           *decimal.Decimal `json:"valor_parcela"`
	DiaVencimento          *int             `json:"dia_vencimento"           validate:"omitempty,min=1,max=31"`
	FormaPagamentoParcelas *string          `json:"forma_pagamento_parcelas" validate:"omitempty,oneof=pix boleto transferencia"`
	DataVencimentoAvista   *string          `json:"data_vencimento_avista"`

	MultaAtraso *decimal.Decimal `json:"multa_atraso"`
	JurosAtraso *decimal.Decimal `json:"juros_atraso"`

	ValorFinanciado  *decimal.Decimal `json:"valor_financiado"`
	BancoFinanciador *string          `json:"banco_financiador"`

	ValorMinimoVenda        *decimal.Decimal `json:"valor_minimo_venda"`
	ComissaoLoja            *decimal.Decimal `json:"comissao_loja"`
	PrazoConsignacao        *int             `json:"prazo_consignacao" validate:"omitempty,min=1"`
	MultaRetiradaAntecipada *decimal.Decimal `json:"multa_retirada_antecipada"`

	ChavePrincipal *bool `json:"chave_principal"`
	ChaveReserva   *bool `json:"chave_reserva"`
	Manual         *bool `json:"manual"`

	CondicaoGeral *string `json:"condicao_geral"`
	Observacoes   *string `json:"observacoes"`
}

type MarcarParcelaRequest struct {
	Paga bool `json:"paga"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ParcelaResponse struct {
	Numero     int             `json:"numero"`
	Vencimento string          `json:"vencimento"` // YYYY-MM-DD
	Valor      decimal.Decimal `json:"valor"`
	Paga       bool            `json:"paga"`
}

type ArquivoResponse struct {
	ID        uint   `json:"id"`
	Nome      string `json:"nome"`
	CreatedAt string `json:"created_at"`
}

type ContratoResponse struct {
	ID     uint   `json:"id"`
	Tipo   string `json:"tipo"`
	Status string `json:"status"`

	Cliente      ClienteResponse  `json:"cliente"`
	Veiculo      VeiculoResponse  `json:"veiculo"`
	VeiculoTroca *VeiculoResponse `json:"veiculo_troca,omitempty"`
	VendaID      *uint            `json:"venda_id,omitempty"`

	ValorVenda      *decimal.Decimal `json:"valor_venda"`
	EntradaTotal    *decimal.Decimal `json:"entrada_total"`
	EntradaPaga     *decimal.Decimal `json:"entrada_paga"`
	EntradaRestante *decimal.Decimal `json:"entrada_restante"`

	FormaPagamentoRestante *string          `json:"forma_pagamento_restante"`
	QuantidadeParcelas     *int             `json:"quantidade_parcelas"`
	ValorParcela           *decimal.Decimal `json:"valor_parcela"`
	DiaVencimento          *int             `json:"dia_vencimento"`
	FormaPagamentoParcelas *string          `json:"forma_pagamento_parcelas"`
	DataVencimentoAvista   *string          `json:"data_vencimento_avista"`

	MultaAtraso *decimal.Decimal `json:"multa_atraso"`
	JurosAtraso *decimal.Decimal `json:"juros_atraso"`

	ValorFinanciado  *decimal.Decimal `json:"valor_financiado"`
	BancoFinanciador *string          `json:"banco_financiador"`

	ValorMinimoVenda        *decimal.Decimal `json:"valor_minimo_venda"`
	ComissaoLoja            *decimal.Decimal `json:"comissao_loja"`
	PrazoConsignacao        *int             `json:"prazo_consignacao"`
	MultaRetiradaAntecipada *decimal.Decimal `json:"multa_retirada_antecipada"`

	ChavePrincipal *bool `json:"chave_principal"`
	ChaveReserva   *bool `json:"chave_reserva"`
	Manual         *bool `json:"manual"`

	CondicaoGeral *string `json:"condicao_geral"`
	Observacoes   *string `json:"observacoes"`

	Parcelas []ParcelaResponse `json:"parcelas"`
	Arquivos []ArquivoResponse `json:"arquivos"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// DocumentoResponse carries the rendered legal text of a contract.
type DocumentoResponse struct {
	ContratoID uint   `json:"contrato_id"`
	Tipo       string `json:"tipo"`
	Texto      string `json:"texto"`
}
