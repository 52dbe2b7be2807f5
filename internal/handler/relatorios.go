package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/victor-jaber/Maybach-system-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct {
	relatorios service.RelatorioService
	vendas     service.VendaService
}

func NewRelatoriosHandler(relatorios service.RelatorioService, vendas service.VendaService) *RelatoriosHandler {
	return &RelatoriosHandler{relatorios: relatorios, vendas: vendas}
}

// VendasSemContrato godoc
// @Summary      Vendas sem contrato
// @Description  Lista vendas cuja criação automática de contrato falhou, com o motivo registrado.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.VendaResponse
// @Router       /v1/relatorios/vendas-sem-contrato [get]
func (h *RelatoriosHandler) VendasSemContrato(c *gin.Context) {
	resp, err := h.vendas.ListarSemContrato(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VendasSemContratoXLSX godoc
// @Summary      Exportar vendas sem contrato (XLSX)
// @Description  Gera a planilha de pendências para a equipe administrativa regularizar os contratos.
// @Tags         relatorios
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200 {file} binary
// @Router       /v1/relatorios/vendas-sem-contrato.xlsx [get]
func (h *RelatoriosHandler) VendasSemContratoXLSX(c *gin.Context) {
	data, err := h.relatorios.VendasSemContratoXLSX(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	fileName := fmt.Sprintf("vendas-sem-contrato-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
