package handler

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/victor-jaber/Maybach-system-sub000/internal/apierror"
	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ContratosHandler struct {
	svc            service.ContratoService
	pdfStoragePath string
}

func NewContratosHandler(svc service.ContratoService, pdfStoragePath string) *ContratosHandler {
	return &ContratosHandler{svc: svc, pdfStoragePath: pdfStoragePath}
}

// Criar godoc
// @Summary      Criar contrato
// @Description  Cria um contrato em rascunho. Os campos obrigatórios dependem do tipo.
// @Tags         contratos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarContratoRequest true "Dados do contrato"
// @Success      201  {object} dto.ContratoResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/contratos [post]
func (h *ContratosHandler) Criar(c *gin.Context) {
	var req dto.CriarContratoRequest
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
// @Summary      Detalhar contrato
// @Tags         contratos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do contrato"
// @Success      200 {object} dto.ContratoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/contratos/{id} [get]
func (h *ContratosHandler) Buscar(c *gin.Context) {
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
// @Summary      Listar contratos
// @Tags         contratos
// @Produce      json
// @Security     BearerAuth
// @Param        status     query string false "draft | generated | signed | cancelled | all"
// @Param        tipo       query string false "Tipo de contrato"
// @Param        cliente_id query int    false "Filtrar por cliente"
// @Param        page       query int    false "Página (default 1)"
// @Param        limit      query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.ContratoListResponse
// @Router       /v1/contratos [get]
func (h *ContratosHandler) Listar(c *gin.Context) {
	var filter dto.ContratoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar contrato
// @Description  Só contratos em rascunho ou gerados podem ser editados; as parcelas são regeneradas.
// @Tags         contratos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID do contrato"
// @Param        body body dto.AtualizarContratoRequest true "Campos do contrato"
// @Success      200  {object} dto.ContratoResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/contratos/{id} [put]
func (h *ContratosHandler) Atualizar(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarContratoRequest
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

// MudarStatus godoc
// @Summary      Mudar status do contrato
// @Description  Aplica uma transição do ciclo de vida: draft→generated, generated→signed, draft|generated→cancelled.
// @Tags         contratos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID do contrato"
// @Param        body body object{status=string} true "Novo status"
// @Success      200  {object} dto.ContratoResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/contratos/{id}/status [patch]
func (h *ContratosHandler) MudarStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" validate:"required,oneof=draft generated signed cancelled"`
	}
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.MudarStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary      Excluir contrato
// @Description  Remove um contrato não assinado e suas parcelas em cascata.
// @Tags         contratos
// @Security     BearerAuth
// @Param        id path int true "ID do contrato"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/contratos/{id} [delete]
func (h *ContratosHandler) Excluir(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GerarDocumento godoc
// @Summary      Renderizar texto legal do contrato
// @Description  Retorna o texto completo do documento. Determinístico: duas chamadas sobre o mesmo contrato produzem o mesmo texto byte a byte.
// @Tags         contratos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do contrato"
// @Success      200 {object} dto.DocumentoResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/contratos/{id}/documento [get]
func (h *ContratosHandler) GerarDocumento(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GerarDocumento(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarcarParcela godoc
// @Summary      Marcar parcela como paga/aberta
// @Tags         contratos
// @Accept       json
// @Security     BearerAuth
// @Param        id     path int true "ID do contrato"
// @Param        numero path int true "Número da parcela"
// @Param        body   body dto.MarcarParcelaRequest true "Estado de pagamento"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/contratos/{id}/parcelas/{numero} [patch]
func (h *ContratosHandler) MarcarParcela(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	numero, err := strconv.Atoi(c.Param("numero"))
	if err != nil || numero < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("número de parcela inválido"))
		return
	}
	var req dto.MarcarParcelaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.MarcarParcela(c.Request.Context(), id, numero, req.Paga); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarArquivos godoc
// @Summary      Listar artefatos do contrato
// @Tags         contratos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do contrato"
// @Success      200 {array} dto.ArquivoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/contratos/{id}/arquivos [get]
func (h *ContratosHandler) ListarArquivos(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarArquivos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BaixarArquivo godoc
// @Summary      Baixar PDF assinado
// @Tags         contratos
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id        path int true "ID do contrato"
// @Param        arquivoID path int true "ID do arquivo"
// @Success      200
// @Failure      404 {object} apierror.APIError
// @Router       /v1/contratos/{id}/arquivos/{arquivoID} [get]
func (h *ContratosHandler) BaixarArquivo(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	arquivoID, ok := parseUintParam(c, "arquivoID")
	if !ok {
		return
	}
	a, err := h.svc.BuscarArquivo(c.Request.Context(), arquivoID)
	if err != nil {
		respondError(c, err)
		return
	}
	if a.ContratoID != id {
		respondError(c, service.ErrNaoEncontrado)
		return
	}
	c.FileAttachment(filepath.Join(h.pdfStoragePath, a.Caminho), a.Nome)
}
