package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract types. Fixed at creation; each type determines which
// financial/checklist fields are meaningful and which legal template is
// rendered.
const (
	TipoComplementoEntrada  = "entry_complement"
	TipoCompraVenda         = "purchase_sale"
	TipoCompraVeiculo       = "vehicle_purchase"
	TipoConsignacao         = "consignment"
	TipoProtocoloEntrega    = "delivery_protocol"
	TipoRetiradaConsignacao = "consignment_withdrawal"
)

// Contract lifecycle. draft → generated → signed; draft|generated →
// cancelled. signed and cancelled are terminal.
const (
	ContratoStatusDraft     = "draft"
	ContratoStatusGenerated = "generated"
	ContratoStatusSigned    = "signed"
	ContratoStatusCancelled = "cancelled"
)

// TiposContrato lists every valid contract type.
var TiposContrato = []string{
	TipoComplementoEntrada,
	TipoCompraVenda,
	TipoCompraVeiculo,
	TipoConsignacao,
	TipoProtocoloEntrega,
	TipoRetiradaConsignacao,
}

// Contrato is one legal document instance tied to a sale/purchase/
// consignment transaction. Financial fields are nullable and populated
// per Tipo. Once Status is signed or cancelled no field may change;
// corrections require a new Contrato.
type Contrato struct {
	ID     uint   `gorm:"primaryKey"`
	Tipo   string `gorm:"type:varchar(30);not null;index"`
	Status string `gorm:"type:varchar(20);not null;default:'draft';index"`

	ClienteID       uint     `gorm:"index;not null"`
	Cliente         *Cliente `gorm:"foreignKey:ClienteID"`
	VeiculoID       uint     `gorm:"index;not null"`
	Veiculo         *Veiculo `gorm:"foreignKey:VeiculoID"`
	VeiculoTrocaID  *uint    `gorm:"index"`
	VeiculoTroca    *Veiculo `gorm:"foreignKey:VeiculoTrocaID"`
	VendaID         *uint    `gorm:"index"`

	// Valores principais
	ValorVenda      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	EntradaTotal    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	EntradaPaga     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// EntradaRestante = max(0, EntradaTotal − EntradaPaga); recomputed on
	// every write where both inputs are set, never stored negative.
	EntradaRestante *decimal.Decimal `gorm:"type:decimal(12,2)"`

	// Pagamento do saldo. FormaPagamentoRestante: "avista" | "parcelado".
	FormaPagamentoRestante *string `gorm:"type:varchar(20)"`
	QuantidadeParcelas     *int
	ValorParcela           *decimal.Decimal `gorm:"type:decimal(12,2)"`
	DiaVencimento          *int             // 1–31
	FormaPagamentoParcelas *string          `gorm:"type:varchar(30)"` // pix | boleto | transferencia
	DataVencimentoAvista   *time.Time

	// Encargos de mora (percentuais)
	MultaAtraso *decimal.Decimal `gorm:"type:decimal(5,2)"`
	JurosAtraso *decimal.Decimal `gorm:"type:decimal(5,2)"` // % ao mês

	// Financiamento (purchase_sale)
	ValorFinanciado  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	BancoFinanciador *string

	// Consignação
	ValorMinimoVenda        *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ComissaoLoja            *decimal.Decimal `gorm:"type:decimal(5,2)"` // %
	PrazoConsignacao        *int             // dias
	MultaRetiradaAntecipada *decimal.Decimal `gorm:"type:decimal(12,2)"`

	// Checklist de entrega (delivery_protocol)
	ChavePrincipal *bool
	ChaveReserva   *bool
	Manual         *bool

	CondicaoGeral *string `gorm:"type:text"`
	Observacoes   *string `gorm:"type:text"`

	Parcelas []ContratoParcela `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE"`
	Arquivos []ContratoArquivo `gorm:"foreignKey:ContratoID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Terminal reports whether the contract can no longer change state.
func (c *Contrato) Terminal() bool {
	return c.Status == ContratoStatusSigned || c.Status == ContratoStatusCancelled
}

// ContratoParcela is one installment of the remaining entry/balance,
// generated when FormaPagamentoRestante = "parcelado". Cascade-deleted
// with its contract.
type ContratoParcela struct {
	ID         uint `gorm:"primaryKey"`
	ContratoID uint `gorm:"index;not null"`
	Numero     int  `gorm:"not null"`
	Vencimento time.Time
	Valor      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Paga       bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ContratoArquivo is an append-only generated artifact (rendered
// document / exported PDF). Rows are never mutated after creation.
type ContratoArquivo struct {
	ID         uint   `gorm:"primaryKey"`
	ContratoID uint   `gorm:"index;not null"`
	Nome       string `gorm:"not null"`
	Caminho    string `gorm:"not null"` // relative to PDF_STORAGE_PATH
	CreatedAt  time.Time
}
