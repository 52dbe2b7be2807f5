package service

import (
	"context"
	"time"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"
	"github.com/victor-jaber/Maybach-system-sub000/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil, which makes runTx run
// the callback directly instead of opening a transaction.

// ─── Helpers ─────────────────────────────────────────────────────────────────

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func lojaPadrao() *model.Loja {
	return &model.Loja{
		ID:            1,
		RazaoSocial:   "Maybach Motors Ltda",
		CNPJ:          "12.345.678/0001-90",
		Endereco:      "Av. das Nações 1000",
		Cidade:        "São Paulo",
		Estado:        "SP",
		Representante: "Carlos Pereira",
	}
}

// ─── ContratoRepository ──────────────────────────────────────────────────────

type contratoRepoStub struct {
	contratos map[uint]*model.Contrato
	seq       uint
	criarErr  error
}

var _ repository.ContratoRepository = (*contratoRepoStub)(nil)

func newContratoRepoStub() *contratoRepoStub {
	return &contratoRepoStub{contratos: make(map[uint]*model.Contrato)}
}

func (r *contratoRepoStub) DB() *gorm.DB { return nil }

func (r *contratoRepoStub) Create(_ context.Context, _ *gorm.DB, c *model.Contrato) error {
	if r.criarErr != nil {
		return r.criarErr
	}
	r.seq++
	c.ID = r.seq
	r.contratos[c.ID] = c
	return nil
}

func (r *contratoRepoStub) FindByID(_ context.Context, id uint) (*model.Contrato, error) {
	c, ok := r.contratos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *contratoRepoStub) Update(_ context.Context, c *model.Contrato) error {
	r.contratos[c.ID] = c
	return nil
}

func (r *contratoRepoStub) UpdateStatusTx(_ *gorm.DB, id uint, status string) error {
	c, ok := r.contratos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Status = status
	return nil
}

func (r *contratoRepoStub) Delete(_ context.Context, id uint) error {
	delete(r.contratos, id)
	return nil
}

func (r *contratoRepoStub) List(_ context.Context, _ dto.ContratoFilter) ([]model.Contrato, int64, error) {
	out := make([]model.Contrato, 0, len(r.contratos))
	for _, c := range r.contratos {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *contratoRepoStub) ReplaceParcelas(_ context.Context, contratoID uint, parcelas []model.ContratoParcela) error {
	if c, ok := r.contratos[contratoID]; ok {
		c.Parcelas = parcelas
	}
	return nil
}

func (r *contratoRepoStub) MarcarParcelaPaga(_ context.Context, contratoID uint, numero int, paga bool) error {
	c, ok := r.contratos[contratoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range c.Parcelas {
		if c.Parcelas[i].Numero == numero {
			c.Parcelas[i].Paga = paga
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *contratoRepoStub) CreateArquivo(_ context.Context, a *model.ContratoArquivo) error {
	if c, ok := r.contratos[a.ContratoID]; ok {
		c.Arquivos = append(c.Arquivos, *a)
	}
	return nil
}

func (r *contratoRepoStub) FindArquivoByID(_ context.Context, id uint) (*model.ContratoArquivo, error) {
	for _, c := range r.contratos {
		for i := range c.Arquivos {
			if c.Arquivos[i].ID == id {
				return &c.Arquivos[i], nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *contratoRepoStub) ListArquivos(_ context.Context, contratoID uint) ([]model.ContratoArquivo, error) {
	if c, ok := r.contratos[contratoID]; ok {
		return c.Arquivos, nil
	}
	return nil, nil
}

func (r *contratoRepoStub) ListAssinadosSemArquivo(_ context.Context, limit int) ([]model.Contrato, error) {
	out := make([]model.Contrato, 0)
	for _, c := range r.contratos {
		if len(out) == limit {
			break
		}
		if c.Status == model.ContratoStatusSigned && len(c.Arquivos) == 0 {
			out = append(out, *c)
		}
	}
	return out, nil
}

// ─── AssinaturaRepository ────────────────────────────────────────────────────

type assinaturaRepoStub struct {
	assinaturas map[uint]*model.AssinaturaContrato
	seq         uint
}

var _ repository.AssinaturaRepository = (*assinaturaRepoStub)(nil)

func newAssinaturaRepoStub() *assinaturaRepoStub {
	return &assinaturaRepoStub{assinaturas: make(map[uint]*model.AssinaturaContrato)}
}

func (r *assinaturaRepoStub) DB() *gorm.DB { return nil }

func (r *assinaturaRepoStub) CreateTx(_ *gorm.DB, a *model.AssinaturaContrato) error {
	r.seq++
	a.ID = r.seq
	r.assinaturas[a.ID] = a
	return nil
}

func (r *assinaturaRepoStub) InvalidarVivasTx(_ *gorm.DB, contratoID uint) (int64, error) {
	var n int64
	for _, a := range r.assinaturas {
		if a.ContratoID == contratoID && a.Viva() {
			a.Status = model.AssinaturaStatusInvalidated
			n++
		}
	}
	return n, nil
}

func (r *assinaturaRepoStub) FindByToken(_ context.Context, token string) (*model.AssinaturaContrato, error) {
	for _, a := range r.assinaturas {
		if a.Token == token {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *assinaturaRepoStub) FindVivaByContrato(_ context.Context, contratoID uint) (*model.AssinaturaContrato, error) {
	for _, a := range r.assinaturas {
		if a.ContratoID == contratoID && a.Viva() {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *assinaturaRepoStub) IncrementarTentativas(_ context.Context, id uint) (int, error) {
	a, ok := r.assinaturas[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	a.TentativasValidacao++
	return a.TentativasValidacao, nil
}

func (r *assinaturaRepoStub) UpdateStatusTx(_ *gorm.DB, id uint, status string, campos map[string]interface{}) error {
	a, ok := r.assinaturas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	if v, ok := campos["validado_em"].(time.Time); ok {
		a.ValidadoEm = &v
	}
	if v, ok := campos["assinado_em"].(time.Time); ok {
		a.AssinadoEm = &v
	}
	return nil
}

// ─── ClienteRepository ───────────────────────────────────────────────────────

type clienteRepoStub struct {
	clientes map[uint]*model.Cliente
}

var _ repository.ClienteRepository = (*clienteRepoStub)(nil)

func newClienteRepoStub() *clienteRepoStub {
	return &clienteRepoStub{clientes: make(map[uint]*model.Cliente)}
}

func (r *clienteRepoStub) Create(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *clienteRepoStub) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *clienteRepoStub) List(_ context.Context, _ string, _, _ int) ([]model.Cliente, int64, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *clienteRepoStub) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *clienteRepoStub) Delete(_ context.Context, id uint) error {
	delete(r.clientes, id)
	return nil
}

// ─── VeiculoRepository ───────────────────────────────────────────────────────

type veiculoRepoStub struct {
	veiculos map[uint]*model.Veiculo
	marcas   []model.Marca
}

var _ repository.VeiculoRepository = (*veiculoRepoStub)(nil)

func newVeiculoRepoStub() *veiculoRepoStub {
	return &veiculoRepoStub{veiculos: make(map[uint]*model.Veiculo)}
}

func (r *veiculoRepoStub) Create(_ context.Context, v *model.Veiculo) error {
	r.veiculos[v.ID] = v
	return nil
}

func (r *veiculoRepoStub) FindByID(_ context.Context, id uint) (*model.Veiculo, error) {
	v, ok := r.veiculos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *veiculoRepoStub) List(_ context.Context, _ string, _, _ int) ([]model.Veiculo, int64, error) {
	out := make([]model.Veiculo, 0, len(r.veiculos))
	for _, v := range r.veiculos {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *veiculoRepoStub) Update(_ context.Context, v *model.Veiculo) error {
	r.veiculos[v.ID] = v
	return nil
}

func (r *veiculoRepoStub) UpdateStatus(_ context.Context, id uint, status string) error {
	v, ok := r.veiculos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Status = status
	return nil
}

func (r *veiculoRepoStub) CreateMarca(_ context.Context, m *model.Marca) error {
	r.marcas = append(r.marcas, *m)
	return nil
}

func (r *veiculoRepoStub) ListMarcas(_ context.Context) ([]model.Marca, error) {
	return r.marcas, nil
}

// ─── LojaRepository ──────────────────────────────────────────────────────────

type lojaRepoStub struct {
	loja *model.Loja
}

var _ repository.LojaRepository = (*lojaRepoStub)(nil)

func (r *lojaRepoStub) Get(_ context.Context) (*model.Loja, error) {
	if r.loja == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.loja, nil
}

func (r *lojaRepoStub) Upsert(_ context.Context, l *model.Loja) error {
	r.loja = l
	return nil
}

// ─── VendaRepository ─────────────────────────────────────────────────────────

type vendaRepoStub struct {
	vendas map[uint]*model.Venda
	seq    uint
}

var _ repository.VendaRepository = (*vendaRepoStub)(nil)

func newVendaRepoStub() *vendaRepoStub {
	return &vendaRepoStub{vendas: make(map[uint]*model.Venda)}
}

func (r *vendaRepoStub) Create(_ context.Context, v *model.Venda) error {
	r.seq++
	v.ID = r.seq
	r.vendas[v.ID] = v
	return nil
}

func (r *vendaRepoStub) FindByID(_ context.Context, id uint) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *vendaRepoStub) Update(_ context.Context, v *model.Venda) error {
	r.vendas[v.ID] = v
	return nil
}

func (r *vendaRepoStub) List(_ context.Context, _ dto.VendaFilter) ([]model.Venda, int64, error) {
	out := make([]model.Venda, 0, len(r.vendas))
	for _, v := range r.vendas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *vendaRepoStub) ListSemContrato(_ context.Context) ([]model.Venda, error) {
	out := make([]model.Venda, 0)
	for _, v := range r.vendas {
		if v.ContratoID == nil {
			out = append(out, *v)
		}
	}
	return out, nil
}

// ─── Dispatcher ──────────────────────────────────────────────────────────────

type dispatcherStub struct {
	documentos []interface{}
	emails     []interface{}
}

var _ Dispatcher = (*dispatcherStub)(nil)

func (d *dispatcherStub) EnqueueDocumento(_ context.Context, payload interface{}) error {
	d.documentos = append(d.documentos, payload)
	return nil
}

func (d *dispatcherStub) EnqueueEmail(_ context.Context, payload interface{}) error {
	d.emails = append(d.emails, payload)
	return nil
}
