package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/victor-jaber/Maybach-system-sub000/internal/documento"
	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContratoService interface {
	Criar(ctx context.Context, req dto.CriarContratoRequest) (*dto.ContratoResponse, error)
	Buscar(ctx context.Context, id uint) (*dto.ContratoResponse, error)
	Listar(ctx context.Context, filter dto.ContratoFilter) (*dto.ContratoListResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarContratoRequest) (*dto.ContratoResponse, error)
	MudarStatus(ctx context.Context, id uint, status string) (*dto.ContratoResponse, error)
	Excluir(ctx context.Context, id uint) error
	GerarDocumento(ctx context.Context, id uint) (*dto.DocumentoResponse, error)
	// MontarDados assembles the flat renderer input for a contract whose
	// associations are already loaded. Shared with the signing flow and
	// the document worker.
	MontarDados(ctx context.Context, c *model.Contrato) (documento.Dados, error)
	MarcarParcela(ctx context.Context, contratoID uint, numero int, paga bool) error
	ListarArquivos(ctx context.Context, contratoID uint) ([]dto.ArquivoResponse, error)
	BuscarArquivo(ctx context.Context, arquivoID uint) (*model.ContratoArquivo, error)
	// CriarDeVenda derives a purchase_sale contract from a registered
	// sale. Callers treat the error as best-effort.
	CriarDeVenda(ctx context.Context, v *model.Venda) (*model.Contrato, error)
}

type contratoService struct {
	repo        repository.ContratoRepository
	clienteRepo repository.ClienteRepository
	veiculoRepo repository.VeiculoRepository
	lojaRepo    repository.LojaRepository
}

func NewContratoService(
	repo repository.ContratoRepository,
	clienteRepo repository.ClienteRepository,
	veiculoRepo repository.VeiculoRepository,
	lojaRepo repository.LojaRepository,
) ContratoService {
	return &contratoService{
		repo:        repo,
		clienteRepo: clienteRepo,
		veiculoRepo: veiculoRepo,
		lojaRepo:    lojaRepo,
	}
}

// ── Regras de campos obrigatórios por tipo ────────────────────────────────────
// Declarative required-field sets: one rule list per contract type, plus
// conditional rules keyed on formaPagamentoRestante that apply to every
// type. A rule is (field name, presence check).

type campoRegra struct {
	campo string
	ok    func(c *model.Contrato) bool
}

func temDecimal(get func(c *model.Contrato) *decimal.Decimal) func(*model.Contrato) bool {
	return func(c *model.Contrato) bool { return get(c) != nil }
}

var regrasPorTipo = map[string][]campoRegra{
	model.TipoComplementoEntrada: {
		{"valor_venda", temDecimal(func(c *model.Contrato) *decimal.Decimal { return c.ValorVenda })},
		{"entrada_total", temDecimal(func(c *model.Contrato) *decimal.Decimal { return c.EntradaTotal })},
		{"entrada_paga", temDecimal(func(c *model.Contrato) *decimal.Decimal { return c.EntradaPaga })},
		{"forma_pagamento_restante", func(c *model.Contrato) bool { return c.FormaPagamentoRestante != nil }},
	},
	model.TipoCompraVenda: {
		{"valor_venda", temDecimal(func(c *model.Contrato) *decimal.Decimal { return c.ValorVenda })},
	},
	model.TipoCompraVeiculo: {
		{"valor_venda", temDecimal(func(c *model.Contrato) *decimal.Decimal { return c.ValorVenda })},
	},
	model.TipoConsignacao: {
		{"valor_minimo_venda", temDecimal(func(c *model.Contrato) *decimal.Decimal { return c.ValorMinimoVenda })},
		{"comissao_loja", temDecimal(func(c *model.Contrato) *decimal.Decimal { return c.ComissaoLoja })},
		{"prazo_consignacao", func(c *model.Contrato) bool { return c.PrazoConsignacao != nil }},
	},
	model.TipoProtocoloEntrega: {
		{"chave_principal", func(c *model.Contrato) bool { return c.ChavePrincipal != nil }},
		{"chave_reserva", func(c *model.Contrato) bool { return c.ChaveReserva != nil }},
		{"manual", func(c *model.Contrato) bool { return c.Manual != nil }},
	},
	model.TipoRetiradaConsignacao: {},
}

// regrasParcelado applies whenever formaPagamentoRestante = parcelado,
// regrasAvista whenever avista, regardless of contract type.
var regrasParcelado = []campoRegra{
	{"quantidade_parcelas", func(c *model.Contrato) bool { return c.QuantidadeParcelas != nil }},
	{"valor_parcela", func(c *model.Contrato) bool { return c.ValorParcela != nil }},
	{"dia_vencimento", func(c *model.Contrato) bool { return c.DiaVencimento != nil }},
	{"forma_pagamento_parcelas", func(c *model.Contrato) bool { return c.FormaPagamentoParcelas != nil }},
}

var regrasAvista = []campoRegra{
	{"data_vencimento_avista", func(c *model.Contrato) bool { return c.DataVencimentoAvista != nil }},
}

func validarCampos(c *model.Contrato) error {
	regras, ok := regrasPorTipo[c.Tipo]
	if !ok {
		ve := newValidationError()
		ve.Fields["tipo"] = "tipo de contrato desconhecido"
		return ve
	}
	ve := newValidationError()
	for _, r := range regras {
		if !r.ok(c) {
			ve.Fields[r.campo] = "obrigatório para o tipo " + c.Tipo
		}
	}
	if c.FormaPagamentoRestante != nil {
		var condicionais []campoRegra
		switch *c.FormaPagamentoRestante {
		case "parcelado":
			condicionais = regrasParcelado
		case "avista":
			condicionais = regrasAvista
		}
		for _, r := range condicionais {
			if !r.ok(c) {
				ve.Fields[r.campo] = "obrigatório quando forma_pagamento_restante = " + *c.FormaPagamentoRestante
			}
		}
	}
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

// ── Transições de status ──────────────────────────────────────────────────────

var transicoes = map[string][]string{
	model.ContratoStatusDraft:     {model.ContratoStatusGenerated, model.ContratoStatusCancelled},
	model.ContratoStatusGenerated: {model.ContratoStatusSigned, model.ContratoStatusCancelled},
	model.ContratoStatusSigned:    {},
	model.ContratoStatusCancelled: {},
}

func transicaoValida(de, para string) bool {
	for _, s := range transicoes[de] {
		if s == para {
			return true
		}
	}
	return false
}

// ── Criar ─────────────────────────────────────────────────────────────────────

func (s *contratoService) Criar(ctx context.Context, req dto.CriarContratoRequest) (*dto.ContratoResponse, error) {
	c := contratoFromCreate(req)

	if err := validarCampos(c); err != nil {
		return nil, err
	}
	if err := s.resolverPartes(ctx, c); err != nil {
		return nil, err
	}
	recalcularEntradaRestante(c)
	c.Status = model.ContratoStatusDraft
	c.Parcelas = gerarParcelas(c, time.Now())

	if err := s.repo.Create(ctx, nil, c); err != nil {
		return nil, err
	}
	return s.Buscar(ctx, c.ID)
}

// resolverPartes checks that the referenced customer and vehicles exist.
// A missing row is NotFound; any other lookup failure is upstream.
func (s *contratoService) resolverPartes(ctx context.Context, c *model.Contrato) error {
	if _, err := s.clienteRepo.FindByID(ctx, c.ClienteID); err != nil {
		return classificarLookup("cliente", err)
	}
	if _, err := s.veiculoRepo.FindByID(ctx, c.VeiculoID); err != nil {
		return classificarLookup("veículo", err)
	}
	if c.VeiculoTrocaID != nil {
		if _, err := s.veiculoRepo.FindByID(ctx, *c.VeiculoTrocaID); err != nil {
			return classificarLookup("veículo de troca", err)
		}
	}
	return nil
}

func classificarLookup(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNaoEncontrado
	}
	return &UpstreamError{Op: op, Err: err}
}

// recalcularEntradaRestante enforces
// entradaRestante = max(0, entradaTotal − entradaPaga) on every write
// where both inputs are present.
func recalcularEntradaRestante(c *model.Contrato) {
	if c.EntradaTotal == nil || c.EntradaPaga == nil {
		return
	}
	restante := c.EntradaTotal.Sub(*c.EntradaPaga)
	if restante.IsNegative() {
		restante = decimal.Zero
	}
	c.EntradaRestante = &restante
}

// gerarParcelas builds the installment rows when the balance is
// parcelado. The first due date is at least 30 days out, landing on the
// agreed day of month; months clamp long days (31 → 28/30).
func gerarParcelas(c *model.Contrato, agora time.Time) []model.ContratoParcela {
	if c.FormaPagamentoRestante == nil || *c.FormaPagamentoRestante != "parcelado" {
		return nil
	}
	if c.QuantidadeParcelas == nil || c.ValorParcela == nil || c.DiaVencimento == nil {
		return nil
	}
	n := *c.QuantidadeParcelas
	dia := *c.DiaVencimento
	parcelas := make([]model.ContratoParcela, 0, n)

	// mes anchors on day 1 so AddDate month steps never normalize past
	// short months (Jan 31 + 1 month = Mar 3 in Go).
	base := agora.AddDate(0, 0, 30)
	piso := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)
	mes := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, time.UTC)
	if diaNoMes(mes, dia).Before(piso) {
		mes = mes.AddDate(0, 1, 0)
	}
	for i := 0; i < n; i++ {
		venc := diaNoMes(mes.AddDate(0, i, 0), dia)
		parcelas = append(parcelas, model.ContratoParcela{
			Numero:     i + 1,
			Vencimento: venc,
			Valor:      *c.ValorParcela,
		})
	}
	return parcelas
}

func diaNoMes(ref time.Time, dia int) time.Time {
	primeiro := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	ultimo := primeiro.AddDate(0, 1, -1).Day()
	if dia > ultimo {
		dia = ultimo
	}
	return time.Date(ref.Year(), ref.Month(), dia, 0, 0, 0, 0, time.UTC)
}

// ── Buscar / Listar ───────────────────────────────────────────────────────────

func (s *contratoService) Buscar(ctx context.Context, id uint) (*dto.ContratoResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return contratoToResponse(c), nil
}

func (s *contratoService) Listar(ctx context.Context, filter dto.ContratoFilter) (*dto.ContratoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	contratos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContratoListItem, 0, len(contratos))
	for _, c := range contratos {
		items = append(items, contratoToListItem(&c))
	}
	return &dto.ContratoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ── Atualizar ─────────────────────────────────────────────────────────────────

func (s *contratoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarContratoRequest) (*dto.ContratoResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	if c.Terminal() {
		return nil, &ConflictError{Msg: "contrato " + c.Status + " não pode ser alterado; crie um novo contrato"}
	}

	aplicarUpdate(c, req)
	if err := validarCampos(c); err != nil {
		return nil, err
	}
	if err := s.resolverPartes(ctx, c); err != nil {
		return nil, err
	}
	recalcularEntradaRestante(c)

	// Associations must not be written back by Save.
	parcelas := gerarParcelas(c, time.Now())
	c.Parcelas = nil
	c.Arquivos = nil
	c.Cliente = nil
	c.Veiculo = nil
	c.VeiculoTroca = nil

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceParcelas(ctx, c.ID, parcelas); err != nil {
		return nil, err
	}
	return s.Buscar(ctx, c.ID)
}

// ── MudarStatus ───────────────────────────────────────────────────────────────

func (s *contratoService) MudarStatus(ctx context.Context, id uint, status string) (*dto.ContratoResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	if !transicaoValida(c.Status, status) {
		return nil, &InvalidTransitionError{De: c.Status, Para: status}
	}
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.UpdateStatusTx(tx, id, status)
	})
	if err != nil {
		return nil, err
	}
	return s.Buscar(ctx, id)
}

// ── Excluir ───────────────────────────────────────────────────────────────────

func (s *contratoService) Excluir(ctx context.Context, id uint) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	if c.Status == model.ContratoStatusSigned {
		return &ConflictError{Msg: "contrato assinado não pode ser excluído"}
	}
	return s.repo.Delete(ctx, id)
}

// ── Documento ─────────────────────────────────────────────────────────────────

func (s *contratoService) GerarDocumento(ctx context.Context, id uint) (*dto.DocumentoResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	d, err := s.MontarDados(ctx, c)
	if err != nil {
		return nil, err
	}
	texto, err := documento.Render(c.Tipo, d)
	if err != nil {
		return nil, err
	}
	return &dto.DocumentoResponse{ContratoID: c.ID, Tipo: c.Tipo, Texto: texto}, nil
}

func (s *contratoService) MontarDados(ctx context.Context, c *model.Contrato) (documento.Dados, error) {
	loja, err := s.lojaRepo.Get(ctx)
	if err != nil {
		return documento.Dados{}, &UpstreamError{Op: "loja", Err: err}
	}
	if c.Cliente == nil || c.Veiculo == nil {
		return documento.Dados{}, &UpstreamError{Op: "contrato", Err: errors.New("associações não carregadas")}
	}

	d := documento.Dados{
		LojaRazaoSocial:   loja.RazaoSocial,
		LojaNomeFantasia:  derefStr(loja.NomeFantasia),
		LojaCNPJ:          loja.CNPJ,
		LojaEndereco:      loja.Endereco,
		LojaCidade:        loja.Cidade,
		LojaEstado:        loja.Estado,
		LojaRepresentante: loja.Representante,
		LojaTelefone:      loja.Telefone,
		LojaEmail:         loja.Email,

		ClienteNome:          c.Cliente.Nome,
		ClienteCpfCnpj:       c.Cliente.CpfCnpj,
		TipoDocumentoCliente: c.Cliente.TipoDocumento,
		ClienteRG:            derefStr(c.Cliente.RG),
		ClienteCNH:           derefStr(c.Cliente.CNH),
		ClienteEndereco:      c.Cliente.Endereco,
		ClienteCidade:        c.Cliente.Cidade,
		ClienteEstado:        c.Cliente.Estado,
		ClienteTelefone:      c.Cliente.Telefone,
		ClienteEmail:         derefStr(c.Cliente.Email),

		VeiculoModelo:  c.Veiculo.Modelo,
		VeiculoAno:     strconvAno(c.Veiculo.Ano),
		VeiculoCor:     c.Veiculo.Cor,
		VeiculoPlaca:   derefStr(c.Veiculo.Placa),
		VeiculoRenavam: derefStr(c.Veiculo.Renavam),
		VeiculoChassi:  derefStr(c.Veiculo.Chassi),

		ValorVenda:              formatarMoedaPtr(c.ValorVenda),
		EntradaTotal:            formatarMoedaPtr(c.EntradaTotal),
		EntradaPaga:             formatarMoedaPtr(c.EntradaPaga),
		EntradaRestante:         formatarMoedaPtr(c.EntradaRestante),
		EntradaRestantePositiva: c.EntradaRestante != nil && c.EntradaRestante.IsPositive(),
		ValorParcela:            formatarMoedaPtr(c.ValorParcela),
		ValorFinanciado:         formatarMoedaPtr(c.ValorFinanciado),
		TemFinanciamento:        c.ValorFinanciado != nil && c.ValorFinanciado.IsPositive(),
		BancoFinanciador:        derefStr(c.BancoFinanciador),
		ValorMinimoVenda:        formatarMoedaPtr(c.ValorMinimoVenda),
		MultaRetiradaAntecipada: formatarMoedaPtr(c.MultaRetiradaAntecipada),

		FormaPagamentoRestante: derefStr(c.FormaPagamentoRestante),
		FormaPagamentoParcelas: derefStr(c.FormaPagamentoParcelas),

		MultaAtraso:      decToInt(c.MultaAtraso),
		JurosAtraso:      decToInt(c.JurosAtraso),
		ComissaoLoja:     decToInt(c.ComissaoLoja),
		PrazoConsignacao: derefInt(c.PrazoConsignacao),

		ChavePrincipal: c.ChavePrincipal != nil && *c.ChavePrincipal,
		ChaveReserva:   c.ChaveReserva != nil && *c.ChaveReserva,
		Manual:         c.Manual != nil && *c.Manual,

		CondicaoGeral: derefStr(c.CondicaoGeral),
		Observacoes:   derefStr(c.Observacoes),
		DataContrato:  c.CreatedAt.Format("02/01/2006"),
	}
	if c.Veiculo.Marca != nil {
		d.VeiculoMarca = c.Veiculo.Marca.Nome
	}
	if c.QuantidadeParcelas != nil {
		d.QuantidadeParcelas = *c.QuantidadeParcelas
	}
	if c.DiaVencimento != nil {
		d.DiaVencimento = *c.DiaVencimento
	}
	if c.DataVencimentoAvista != nil {
		d.DataVencimentoAvista = c.DataVencimentoAvista.Format("02/01/2006")
	}
	if c.VeiculoTroca != nil {
		d.TemVeiculoTroca = true
		if c.VeiculoTroca.Marca != nil {
			d.VeiculoTrocaMarca = c.VeiculoTroca.Marca.Nome
		}
		d.VeiculoTrocaModelo = c.VeiculoTroca.Modelo
		d.VeiculoTrocaAno = strconvAno(c.VeiculoTroca.Ano)
		d.VeiculoTrocaPlaca = derefStr(c.VeiculoTroca.Placa)
	}
	return d, nil
}

// ── Parcelas ──────────────────────────────────────────────────────────────────

func (s *contratoService) MarcarParcela(ctx context.Context, contratoID uint, numero int, paga bool) error {
	err := s.repo.MarcarParcelaPaga(ctx, contratoID, numero, paga)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNaoEncontrado
	}
	return err
}

// ── Arquivos ──────────────────────────────────────────────────────────────────
// ContratoArquivo rows are append-only: the document worker records one
// per signed contract and nothing ever rewrites them.

func (s *contratoService) ListarArquivos(ctx context.Context, contratoID uint) ([]dto.ArquivoResponse, error) {
	if _, err := s.repo.FindByID(ctx, contratoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	arquivos, err := s.repo.ListArquivos(ctx, contratoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArquivoResponse, 0, len(arquivos))
	for _, a := range arquivos {
		out = append(out, dto.ArquivoResponse{
			ID:        a.ID,
			Nome:      a.Nome,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *contratoService) BuscarArquivo(ctx context.Context, arquivoID uint) (*model.ContratoArquivo, error) {
	a, err := s.repo.FindArquivoByID(ctx, arquivoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return a, nil
}

// ── Ponte venda → contrato ────────────────────────────────────────────────────

func (s *contratoService) CriarDeVenda(ctx context.Context, v *model.Venda) (*model.Contrato, error) {
	entrada := v.Entrada
	c := &model.Contrato{
		Tipo:           model.TipoCompraVenda,
		Status:         model.ContratoStatusDraft,
		ClienteID:      v.ClienteID,
		VeiculoID:      v.VeiculoID,
		VeiculoTrocaID: v.VeiculoTrocaID,
		VendaID:        &v.ID,
		ValorVenda:     &v.ValorTotal,
		EntradaTotal:   &entrada,
		EntradaPaga:    &entrada,
	}
	if v.QuantidadeParcelas != nil {
		parcelado := "parcelado"
		c.FormaPagamentoRestante = &parcelado
		c.QuantidadeParcelas = v.QuantidadeParcelas
		c.ValorParcela = v.ValorParcela
		c.DiaVencimento = v.DiaVencimento
		pix := "pix"
		if c.FormaPagamentoParcelas == nil {
			c.FormaPagamentoParcelas = &pix
		}
	}
	if err := validarCampos(c); err != nil {
		return nil, err
	}
	recalcularEntradaRestante(c)
	c.Parcelas = gerarParcelas(c, time.Now())
	if err := s.repo.Create(ctx, nil, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ── Conversões ────────────────────────────────────────────────────────────────

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func decToInt(p *decimal.Decimal) int {
	if p == nil {
		return 0
	}
	return int(p.IntPart())
}

func strconvAno(ano int) string {
	if ano == 0 {
		return ""
	}
	return decimal.NewFromInt(int64(ano)).String()
}

// formatarMoeda renders a decimal as a Brazilian currency string:
// thousands separated by ".", cents by "," — 6000 → "6.000,00".
func formatarMoeda(v decimal.Decimal) string {
	fixed := v.StringFixed(2) // -6000.00
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	partes := strings.SplitN(fixed, ".", 2)
	inteiro, centavos := partes[0], partes[1]

	var sb strings.Builder
	if neg {
		sb.WriteString("-")
	}
	pre := len(inteiro) % 3
	if pre > 0 {
		sb.WriteString(inteiro[:pre])
		if len(inteiro) > pre {
			sb.WriteString(".")
		}
	}
	for i := pre; i < len(inteiro); i += 3 {
		sb.WriteString(inteiro[i : i+3])
		if i+3 < len(inteiro) {
			sb.WriteString(".")
		}
	}
	sb.WriteString(",")
	sb.WriteString(centavos)
	return sb.String()
}

func formatarMoedaPtr(p *decimal.Decimal) string {
	if p == nil {
		return ""
	}
	return formatarMoeda(*p)
}

func contratoFromCreate(req dto.CriarContratoRequest) *model.Contrato {
	c := &model.Contrato{
		Tipo:           req.Tipo,
		ClienteID:      req.ClienteID,
		VeiculoID:      req.VeiculoID,
		VeiculoTrocaID: req.VeiculoTrocaID,

		ValorVenda:   req.ValorVenda,
		EntradaTotal: req.EntradaTotal,
		EntradaPaga:  req.EntradaPaga,

		FormaPagamentoRestante: req.FormaPagamentoRestante,
		QuantidadeParcelas:     req.QuantidadeParcelas,
		ValorParcela:           req.ValorParcela,
		DiaVencimento:          req.DiaVencimento,
		FormaPagamentoParcelas: req.FormaPagamentoParcelas,

		MultaAtraso: req.MultaAtraso,
		JurosAtraso: req.JurosAtraso,

		ValorFinanciado:  req.ValorFinanciado,
		BancoFinanciador: req.BancoFinanciador,

		ValorMinimoVenda:        req.ValorMinimoVenda,
		ComissaoLoja:            req.ComissaoLoja,
		PrazoConsignacao:        req.PrazoConsignacao,
		MultaRetiradaAntecipada: req.MultaRetiradaAntecipada,

		ChavePrincipal: req.ChavePrincipal,
		ChaveReserva:   req.ChaveReserva,
		Manual:         req.Manual,

		CondicaoGeral: req.CondicaoGeral,
		Observacoes:   req.Observacoes,
	}
	c.DataVencimentoAvista = parseDataPtr(req.DataVencimentoAvista)
	return c
}

func aplicarUpdate(c *model.Contrato, req dto.AtualizarContratoRequest) {
	c.ClienteID = req.ClienteID
	c.VeiculoID = req.VeiculoID
	c.VeiculoTrocaID = req.VeiculoTrocaID

	c.ValorVenda = req.ValorVenda
	c.EntradaTotal = req.EntradaTotal
	c.EntradaPaga = req.EntradaPaga

	c.FormaPagamentoRestante = req.FormaPagamentoRestante
	c.QuantidadeParcelas = req.QuantidadeParcelas
	c.ValorParcela = req.ValorParcela
	c.DiaVencimento = req.DiaVencimento
	c.FormaPagamentoParcelas = req.FormaPagamentoParcelas
	c.DataVencimentoAvista = parseDataPtr(req.DataVencimentoAvista)

	c.MultaAtraso = req.MultaAtraso
	c.JurosAtraso = req.JurosAtraso

	c.ValorFinanciado = req.ValorFinanciado
	c.BancoFinanciador = req.BancoFinanciador

	c.ValorMinimoVenda = req.ValorMinimoVenda
	c.ComissaoLoja = req.ComissaoLoja
	c.PrazoConsignacao = req.PrazoConsignacao
	c.MultaRetiradaAntecipada = req.MultaRetiradaAntecipada

	c.ChavePrincipal = req.ChavePrincipal
	c.ChaveReserva = req.ChaveReserva
	c.Manual = req.Manual

	c.CondicaoGeral = req.CondicaoGeral
	c.Observacoes = req.Observacoes
}

func parseDataPtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func contratoToListItem(c *model.Contrato) dto.ContratoListItem {
	item := dto.ContratoListItem{
		ID:         c.ID,
		Tipo:       c.Tipo,
		Status:     c.Status,
		ValorVenda: c.ValorVenda,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
	if c.Cliente != nil {
		item.ClienteNome = c.Cliente.Nome
	}
	if c.Veiculo != nil {
		item.Veiculo = veiculoResumo(c.Veiculo)
	}
	return item
}

// veiculoResumo is the one-line vehicle description used in lists and on
// the public signing screen.
func veiculoResumo(v *model.Veiculo) string {
	marca := ""
	if v.Marca != nil {
		marca = v.Marca.Nome + " "
	}
	return marca + v.Modelo + " " + strconvAno(v.Ano)
}

func contratoToResponse(c *model.Contrato) *dto.ContratoResponse {
	resp := &dto.ContratoResponse{
		ID:     c.ID,
		Tipo:   c.Tipo,
		Status: c.Status,

		VendaID: c.VendaID,

		ValorVenda:      c.ValorVenda,
		EntradaTotal:    c.EntradaTotal,
		EntradaPaga:     c.EntradaPaga,
		EntradaRestante: c.EntradaRestante,

		FormaPagamentoRestante: c.FormaPagamentoRestante,
		QuantidadeParcelas:     c.QuantidadeParcelas,
		ValorParcela:           c.ValorParcela,
		DiaVencimento:          c.DiaVencimento,
		FormaPagamentoParcelas: c.FormaPagamentoParcelas,

		MultaAtraso: c.MultaAtraso,
		JurosAtraso: c.JurosAtraso,

		ValorFinanciado:  c.ValorFinanciado,
		BancoFinanciador: c.BancoFinanciador,

		ValorMinimoVenda:        c.ValorMinimoVenda,
		ComissaoLoja:            c.ComissaoLoja,
		PrazoConsignacao:        c.PrazoConsignacao,
		MultaRetiradaAntecipada: c.MultaRetiradaAntecipada,

		ChavePrincipal: c.ChavePrincipal,
		ChaveReserva:   c.ChaveReserva,
		Manual:         c.Manual,

		CondicaoGeral: c.CondicaoGeral,
		Observacoes:   c.Observacoes,

		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.DataVencimentoAvista != nil {
		s := c.DataVencimentoAvista.Format("2006-01-02")
		resp.DataVencimentoAvista = &s
	}
	if c.Cliente != nil {
		resp.Cliente = clienteToResponse(c.Cliente)
	}
	if c.Veiculo != nil {
		resp.Veiculo = veiculoToResponse(c.Veiculo)
	}
	if c.VeiculoTroca != nil {
		vt := veiculoToResponse(c.VeiculoTroca)
		resp.VeiculoTroca = &vt
	}
	resp.Parcelas = make([]dto.ParcelaResponse, 0, len(c.Parcelas))
	for _, p := range c.Parcelas {
		resp.Parcelas = append(resp.Parcelas, dto.ParcelaResponse{
			Numero:     p.Numero,
			Vencimento: p.Vencimento.Format("2006-01-02"),
			Valor:      p.Valor,
			Paga:       p.Paga,
		})
	}
	resp.Arquivos = make([]dto.ArquivoResponse, 0, len(c.Arquivos))
	for _, a := range c.Arquivos {
		resp.Arquivos = append(resp.Arquivos, dto.ArquivoResponse{
			ID:        a.ID,
			Nome:      a.Nome,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
