package dto

// ─── Filter / List ──────────────────────────────────────────────────────────

// ClienteFilter is bound from query string of GET /v1/clientes.
type ClienteFilter struct {
	Busca string `form:"busca"` // matches nome or cpf_cnpj
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarClienteRequest struct {
	Nome          string  `json:"nome"           validate:"required,min=2,max=200"`
	CpfCnpj       string  `json:"cpf_cnpj"       validate:"required,min=11,max=18"`
	TipoDocumento string  `json:"tipo_documento" validate:"required,oneof=CPF CNPJ"`
	RG            *string `json:"rg"`
	CNH           *string `json:"cnh"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Telefone      string  `json:"telefone"       validate:"omitempty,max=20"`
	Endereco      string  `json:"endereco"       validate:"omitempty,max=300"`
	Cidade        string  `json:"cidade"         validate:"omitempty,max=100"`
	Estado        string  `json:"estado"         validate:"omitempty,len=2"`
	CEP           string  `json:"cep"            validate:"omitempty,max=9"`
}

type AtualizarClienteRequest struct {
	Nome          string  `json:"nome"           validate:"omitempty,min=2,max=200"`
	TipoDocumento string  `json:"tipo_documento" validate:"omitempty,oneof=CPF CNPJ"`
	RG            *string `json:"rg"`
	CNH           *string `json:"cnh"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Telefone      string  `json:"telefone"       validate:"omitempty,max=20"`
	Endereco      string  `json:"endereco"       validate:"omitempty,max=300"`
	Cidade        string  `json:"cidade"         validate:"omitempty,max=100"`
	Estado        string  `json:"estado"         validate:"omitempty,len=2"`
	CEP           string  `json:"cep"            validate:"omitempty,max=9"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID            uint    `json:"id"`
	Nome          string  `json:"nome"`
	CpfCnpj       string  `json:"cpf_cnpj"`
	TipoDocumento string  `json:"tipo_documento"`
	RG            *string `json:"rg"`
	CNH           *string `json:"cnh"`
	Email         *string `json:"email"`
	Telefone      string  `json:"telefone"`
	Endereco      string  `json:"endereco"`
	Cidade        string  `json:"cidade"`
	Estado        string  `json:"estado"`
	CEP           string  `json:"cep"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
