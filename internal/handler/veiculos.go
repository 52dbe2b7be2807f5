package handler

import (
	"net/http"
	"strconv"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type VeiculosHandler struct{ svc service.VeiculoService }

func NewVeiculosHandler(svc service.VeiculoService) *VeiculosHandler {
	return &VeiculosHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar veículo
// @Tags         veiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarVeiculoRequest true "Dados do veículo"
// @Success      201  {object} dto.VeiculoResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/veiculos [post]
func (h *VeiculosHandler) Criar(c *gin.Context) {
	var req dto.CriarVeiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Buscar godoc
// @Summary      Detalhar veículo
// @Tags         veiculos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do veículo"
// @Success      200 {object} dto.VeiculoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/veiculos/{id} [get]
func (h *VeiculosHandler) Buscar(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary      Listar veículos
// @Tags         veiculos
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "disponivel | reservado | vendido | consignado | all"
// @Param        page   query int    false "Página (default 1)"
// @Param        limit  query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.VeiculoListResponse
// @Router       /v1/veiculos [get]
func (h *VeiculosHandler) Listar(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	resp, err := h.svc.Listar(c.Request.Context(), status, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar veículo
// @Tags         veiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID do veículo"
// @Param        body body dto.AtualizarVeiculoRequest true "Campos a atualizar"
// @Success      200  {object} dto.VeiculoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/veiculos/{id} [put]
func (h *VeiculosHandler) Atualizar(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarVeiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CriarMarca godoc
// @Summary      Cadastrar marca
// @Tags         veiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarMarcaRequest true "Nome da marca"
// @Success      201  {object} dto.MarcaResponse
// @Router       /v1/marcas [post]
func (h *VeiculosHandler) CriarMarca(c *gin.Context) {
	var req dto.CriarMarcaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarMarca(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarMarcas godoc
// @Summary      Listar marcas
// @Tags         veiculos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.MarcaResponse
// @Router       /v1/marcas [get]
func (h *VeiculosHandler) ListarMarcas(c *gin.Context) {
	resp, err := h.svc.ListarMarcas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
