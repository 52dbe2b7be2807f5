package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ValidarAssinaturaRequest carries the 3-digit document fragment typed by
// the signer: last 3 digits for CPF, first 3 for CNPJ.
type ValidarAssinaturaRequest struct {
	Codigo string `json:"codigo" validate:"required,len=3,numeric"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// EmitirAssinaturaResponse is returned to staff when a signing token is
// issued. Link is the public URL the customer receives.
type EmitirAssinaturaResponse struct {
	Token      string `json:"token"`
	Link       string `json:"link"`
	ContratoID uint   `json:"contrato_id"`
	Status     string `json:"status"`
}

// AssinaturaPublicaResponse is what the public signing page sees: enough
// to identify the deal, never the full document number.
type AssinaturaPublicaResponse struct {
	Status         string `json:"status"`
	ContratoTipo   string `json:"contrato_tipo"`
	ContratoStatus string `json:"contrato_status"`
	ClienteNome    string `json:"cliente_nome"`
	Veiculo        string `json:"veiculo"`
	// TamanhoCodigo tells the page how many digits to ask for and from
	// which end: 3 in both cases, but the hint text differs per documento.
	TipoDocumento string `json:"tipo_documento"` // CPF | CNPJ
	TamanhoCodigo int    `json:"tamanho_codigo"`
	Texto         string `json:"texto,omitempty"` // rendered legal text, present while signable
}

type ValidarAssinaturaResponse struct {
	Status     string `json:"status"`
	Tentativas int    `json:"tentativas"`
}

type AssinarResponse struct {
	Status         string `json:"status"`
	ContratoStatus string `json:"contrato_status"`
	AssinadoEm     string `json:"assinado_em"`
}
