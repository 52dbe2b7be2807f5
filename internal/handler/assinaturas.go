package handler

import (
	"net/http"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type AssinaturasHandler struct{ svc service.AssinaturaService }

func NewAssinaturasHandler(svc service.AssinaturaService) *AssinaturasHandler {
	return &AssinaturasHandler{svc: svc}
}

// Emitir godoc
// @Summary      Emitir token de assinatura
// @Description  Gera um novo token público de assinatura para um contrato gerado. Qualquer token vivo anterior do mesmo contrato é invalidado na mesma transação.
// @Tags         assinaturas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do contrato"
// @Success      201 {object} dto.EmitirAssinaturaResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/contratos/{id}/assinatura [post]
func (h *AssinaturasHandler) Emitir(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Emitir(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Consultar godoc
// @Summary      Consultar assinatura (público)
// @Description  Página pública de assinatura: resume o contrato sem expor o documento completo do cliente. O texto legal só aparece após a validação.
// @Tags         assinaturas
// @Produce      json
// @Param        token path string true "Token de assinatura"
// @Success      200 {object} dto.AssinaturaPublicaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /public/assinatura/{token} [get]
func (h *AssinaturasHandler) Consultar(c *gin.Context) {
	resp, err := h.svc.Consultar(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Validar godoc
// @Summary      Validar identidade do assinante (público)
// @Description  Confere o fragmento de 3 dígitos do CPF (últimos) ou CNPJ (primeiros). Erros contam contra o teto de tentativas do token.
// @Tags         assinaturas
// @Accept       json
// @Produce      json
// @Param        token path string true "Token de assinatura"
// @Param        body  body dto.ValidarAssinaturaRequest true "Fragmento do documento"
// @Success      200 {object} dto.ValidarAssinaturaResponse
// @Failure      400 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /public/assinatura/{token}/validar [post]
func (h *AssinaturasHandler) Validar(c *gin.Context) {
	var req dto.ValidarAssinaturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Validar(c.Request.Context(), c.Param("token"), req.Codigo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Assinar godoc
// @Summary      Assinar contrato (público)
// @Description  Conclui a assinatura de um token validado: contrato e token viram signed na mesma transação. Idempotente para tokens já assinados.
// @Tags         assinaturas
// @Produce      json
// @Param        token path string true "Token de assinatura"
// @Success      200 {object} dto.AssinarResponse
// @Failure      409 {object} apierror.APIError
// @Router       /public/assinatura/{token}/assinar [post]
func (h *AssinaturasHandler) Assinar(c *gin.Context) {
	resp, err := h.svc.Assinar(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
