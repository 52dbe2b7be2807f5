package handler

import (
	"net/http"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type LojaHandler struct{ svc service.LojaService }

func NewLojaHandler(svc service.LojaService) *LojaHandler { return &LojaHandler{svc: svc} }

// Buscar godoc
// @Summary      Dados da loja
// @Description  Retorna os dados cadastrais da loja usados como parte vendedora nos contratos.
// @Tags         loja
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.LojaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/loja [get]
func (h *LojaHandler) Buscar(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar dados da loja
// @Tags         loja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AtualizarLojaRequest true "Dados da loja"
// @Success      200  {object} dto.LojaResponse
// @Router       /v1/loja [put]
func (h *LojaHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarLojaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
