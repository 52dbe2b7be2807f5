package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AtualizarLojaRequest struct {
	RazaoSocial   string `json:"razao_social"  validate:"required,min=2,max=200"`
	NomeFantasia  string `json:"nome_fantasia" validate:"omitempty,max=200"`
	CNPJ          string `json:"cnpj"          validate:"required,min=14,max=18"`
	Endereco      string `json:"endereco"      validate:"omitempty,max=300"`
	Cidade        string `json:"cidade"        validate:"omitempty,max=100"`
	Estado        string `json:"estado"        validate:"omitempty,len=2"`
	CEP           string `json:"cep"           validate:"omitempty,max=9"`
	Representante string `json:"representante" validate:"omitempty,max=200"`
	Telefone      string `json:"telefone"      validate:"omitempty,max=20"`
	Email         string `json:"email"         validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LojaResponse struct {
	ID            uint   `json:"id"`
	RazaoSocial   string `json:"razao_social"`
	NomeFantasia  string `json:"nome_fantasia"`
	CNPJ          string `json:"cnpj"`
	Endereco      string `json:"endereco"`
	Cidade        string `json:"cidade"`
	Estado        string `json:"estado"`
	CEP           string `json:"cep"`
	Representante string `json:"representante"`
	Telefone      string `json:"telefone"`
	Email         string `json:"email"`
}
