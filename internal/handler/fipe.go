package handler

import (
	"errors"
	"net/http"

	"github.com/victor-jaber/Maybach-system-sub000/internal/apierror"
	"github.com/victor-jaber/Maybach-system-sub000/internal/infra"

	"github.com/gin-gonic/gin"
)

// FipeHandler proxies the public FIPE price table for staff appraisals.
// Every upstream call goes through the circuit breaker so a flaky FIPE
// never ties up request goroutines.
type FipeHandler struct {
	client *infra.FipeClient
	cb     *infra.CircuitBreaker
}

func NewFipeHandler(client *infra.FipeClient, cb *infra.CircuitBreaker) *FipeHandler {
	return &FipeHandler{client: client, cb: cb}
}

// Marcas godoc
// @Summary      Marcas da tabela FIPE
// @Tags         fipe
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} infra.FipeMarca
// @Failure      503 {object} apierror.APIError
// @Router       /v1/fipe/marcas [get]
func (h *FipeHandler) Marcas(c *gin.Context) {
	var marcas []infra.FipeMarca
	err := h.cb.Execute(func() error {
		var inner error
		marcas, inner = h.client.Marcas(c.Request.Context())
		return inner
	})
	if err != nil {
		h.respondUpstream(c, err)
		return
	}
	c.JSON(http.StatusOK, marcas)
}

// Modelos godoc
// @Summary      Modelos de uma marca FIPE
// @Tags         fipe
// @Produce      json
// @Security     BearerAuth
// @Param        codigo path string true "Código FIPE da marca"
// @Success      200 {object} object
// @Failure      503 {object} apierror.APIError
// @Router       /v1/fipe/marcas/{codigo}/modelos [get]
func (h *FipeHandler) Modelos(c *gin.Context) {
	var raw []byte
	err := h.cb.Execute(func() error {
		data, inner := h.client.Modelos(c.Request.Context(), c.Param("codigo"))
		if inner != nil {
			return inner
		}
		raw = data
		return nil
	})
	if err != nil {
		h.respondUpstream(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// Preco godoc
// @Summary      Preço de referência FIPE
// @Tags         fipe
// @Produce      json
// @Security     BearerAuth
// @Param        codigo path string true "Código da marca"
// @Param        modelo path string true "Código do modelo"
// @Param        ano    path string true "Código do ano"
// @Success      200 {object} infra.FipePreco
// @Failure      503 {object} apierror.APIError
// @Router       /v1/fipe/marcas/{codigo}/modelos/{modelo}/anos/{ano} [get]
func (h *FipeHandler) Preco(c *gin.Context) {
	var preco *infra.FipePreco
	err := h.cb.Execute(func() error {
		var inner error
		preco, inner = h.client.Preco(c.Request.Context(), c.Param("codigo"), c.Param("modelo"), c.Param("ano"))
		return inner
	})
	if err != nil {
		h.respondUpstream(c, err)
		return
	}
	c.JSON(http.StatusOK, preco)
}

func (h *FipeHandler) respondUpstream(c *gin.Context, err error) {
	if errors.Is(err, infra.ErrCircuitOpen) {
		c.JSON(http.StatusServiceUnavailable, apierror.New("consulta FIPE temporariamente indisponível"))
		return
	}
	c.JSON(http.StatusBadGateway, apierror.New("falha ao consultar a tabela FIPE"))
}
