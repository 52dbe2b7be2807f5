package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contratoFixture struct {
	svc      ContratoService
	repo     *contratoRepoStub
	clientes *clienteRepoStub
	veiculos *veiculoRepoStub
}

func novoContratoFixture() *contratoFixture {
	repo := newContratoRepoStub()
	clientes := newClienteRepoStub()
	veiculos := newVeiculoRepoStub()
	loja := &lojaRepoStub{loja: lojaPadrao()}

	clientes.clientes[1] = &model.Cliente{
		ID: 1, Nome: "João da Silva", CpfCnpj: "123.456.789-01",
		TipoDocumento: "CPF", Endereco: "Rua das Flores 123",
		Cidade: "Campinas", Estado: "SP",
	}
	veiculos.veiculos[1] = &model.Veiculo{
		ID: 1, MarcaID: 1, Marca: &model.Marca{ID: 1, Nome: "Toyota"},
		Modelo: "Corolla XEi", Ano: 2022, Cor: "Prata",
		Preco: decimal.RequireFromString("120000.00"), Status: "disponivel",
	}
	veiculos.veiculos[2] = &model.Veiculo{
		ID: 2, MarcaID: 1, Modelo: "Argo", Ano: 2019, Status: "disponivel",
		Preco: decimal.RequireFromString("45000.00"),
	}

	return &contratoFixture{
		svc:      NewContratoService(repo, clientes, veiculos, loja),
		repo:     repo,
		clientes: clientes,
		veiculos: veiculos,
	}
}

func reqComplementoEntrada() dto.CriarContratoRequest {
	return dto.CriarContratoRequest{
		Tipo:                   model.TipoComplementoEntrada,
		ClienteID:              1,
		VeiculoID:              1,
		ValorVenda:             decPtr("30000.00"),
		EntradaTotal:           decPtr("10000.00"),
		EntradaPaga:            decPtr("4000.00"),
		FormaPagamentoRestante: strPtr("parcelado"),
		QuantidadeParcelas:     intPtr(3),
		ValorParcela:           decPtr("2000.00"),
		DiaVencimento:          intPtr(10),
		FormaPagamentoParcelas: strPtr("pix"),
	}
}

// ─── Criar ───────────────────────────────────────────────────────────────────

func TestCriarComplementoEntrada(t *testing.T) {
	f := novoContratoFixture()

	resp, err := f.svc.Criar(context.Background(), reqComplementoEntrada())
	require.NoError(t, err)

	assert.Equal(t, model.ContratoStatusDraft, resp.Status)
	require.NotNil(t, resp.EntradaRestante)
	assert.True(t, resp.EntradaRestante.Equal(decimal.RequireFromString("6000.00")))
	require.Len(t, resp.Parcelas, 3)
	for i, p := range resp.Parcelas {
		assert.Equal(t, i+1, p.Numero)
		assert.True(t, p.Valor.Equal(decimal.RequireFromString("2000.00")))
		assert.False(t, p.Paga)
	}
}

func TestCriarCamposObrigatoriosPorTipo(t *testing.T) {
	f := novoContratoFixture()

	_, err := f.svc.Criar(context.Background(), dto.CriarContratoRequest{
		Tipo: model.TipoComplementoEntrada, ClienteID: 1, VeiculoID: 1,
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "valor_venda")
	assert.Contains(t, ve.Fields, "entrada_total")
	assert.Contains(t, ve.Fields, "entrada_paga")
	assert.Contains(t, ve.Fields, "forma_pagamento_restante")
}

func TestCriarParceladoSemDetalhes(t *testing.T) {
	f := novoContratoFixture()

	req := reqComplementoEntrada()
	req.QuantidadeParcelas = nil
	req.ValorParcela = nil
	req.DiaVencimento = nil
	req.FormaPagamentoParcelas = nil

	_, err := f.svc.Criar(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "quantidade_parcelas")
	assert.Contains(t, ve.Fields, "valor_parcela")
	assert.Contains(t, ve.Fields, "dia_vencimento")
	assert.Contains(t, ve.Fields, "forma_pagamento_parcelas")
}

func TestCriarAvistaSemVencimento(t *testing.T) {
	f := novoContratoFixture()

	req := reqComplementoEntrada()
	req.FormaPagamentoRestante = strPtr("avista")
	req.QuantidadeParcelas = nil
	req.ValorParcela = nil
	req.DiaVencimento = nil
	req.FormaPagamentoParcelas = nil

	_, err := f.svc.Criar(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "data_vencimento_avista")
}

func TestCriarTipoDesconhecido(t *testing.T) {
	f := novoContratoFixture()

	_, err := f.svc.Criar(context.Background(), dto.CriarContratoRequest{
		Tipo: "lease", ClienteID: 1, VeiculoID: 1,
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "tipo")
}

func TestCriarProtocoloEntrega(t *testing.T) {
	f := novoContratoFixture()

	resp, err := f.svc.Criar(context.Background(), dto.CriarContratoRequest{
		Tipo:           model.TipoProtocoloEntrega,
		ClienteID:      1,
		VeiculoID:      1,
		ChavePrincipal: boolPtr(true),
		ChaveReserva:   boolPtr(false),
		Manual:         boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ContratoStatusDraft, resp.Status)
	assert.Empty(t, resp.Parcelas)
}

func TestCriarClienteInexistente(t *testing.T) {
	f := novoContratoFixture()

	req := reqComplementoEntrada()
	req.ClienteID = 99

	_, err := f.svc.Criar(context.Background(), req)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestCriarVeiculoTrocaInexistente(t *testing.T) {
	f := novoContratoFixture()

	req := reqComplementoEntrada()
	req.VeiculoTrocaID = uintPtr(99)

	_, err := f.svc.Criar(context.Background(), req)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func uintPtr(n uint) *uint { return &n }

// ─── Entrada restante ────────────────────────────────────────────────────────

func TestEntradaRestanteNuncaNegativa(t *testing.T) {
	f := novoContratoFixture()

	req := reqComplementoEntrada()
	req.EntradaTotal = decPtr("10000.00")
	req.EntradaPaga = decPtr("12000.00") // paid more than agreed
	req.FormaPagamentoRestante = strPtr("avista")
	req.DataVencimentoAvista = strPtr("2026-04-01")
	req.QuantidadeParcelas = nil
	req.ValorParcela = nil
	req.DiaVencimento = nil
	req.FormaPagamentoParcelas = nil

	resp, err := f.svc.Criar(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.EntradaRestante)
	assert.True(t, resp.EntradaRestante.IsZero())
}

// ─── Parcelas ────────────────────────────────────────────────────────────────

func contratoParcelado(n, dia int) *model.Contrato {
	parcelado := "parcelado"
	return &model.Contrato{
		FormaPagamentoRestante: &parcelado,
		QuantidadeParcelas:     &n,
		ValorParcela:           decPtr("2000.00"),
		DiaVencimento:          &dia,
	}
}

func TestGerarParcelasPrimeiroVencimentoMinimoTrintaDias(t *testing.T) {
	agora := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	ps := gerarParcelas(contratoParcelado(3, 10), agora)
	require.Len(t, ps, 3)

	// day 10 of the month 30 days out falls before the floor, so the
	// schedule starts one month later
	assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), ps[0].Vencimento)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), ps[1].Vencimento)
	assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), ps[2].Vencimento)
}

func TestGerarParcelasClampFimDeMes(t *testing.T) {
	agora := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	ps := gerarParcelas(contratoParcelado(3, 31), agora)
	require.Len(t, ps, 3)

	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), ps[0].Vencimento)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), ps[1].Vencimento)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), ps[2].Vencimento)
}

func TestGerarParcelasSomenteQuandoParcelado(t *testing.T) {
	avista := "avista"
	c := contratoParcelado(3, 10)
	c.FormaPagamentoRestante = &avista
	assert.Nil(t, gerarParcelas(c, time.Now()))

	c = contratoParcelado(3, 10)
	c.FormaPagamentoRestante = nil
	assert.Nil(t, gerarParcelas(c, time.Now()))
}

func TestMarcarParcelaInexistente(t *testing.T) {
	f := novoContratoFixture()
	f.repo.contratos[1] = &model.Contrato{ID: 1, Status: model.ContratoStatusDraft}

	err := f.svc.MarcarParcela(context.Background(), 1, 7, true)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

// ─── Transições de status ────────────────────────────────────────────────────

func TestMudarStatusCicloDeVida(t *testing.T) {
	f := novoContratoFixture()
	f.repo.contratos[1] = &model.Contrato{ID: 1, Tipo: model.TipoCompraVenda, Status: model.ContratoStatusDraft}

	resp, err := f.svc.MudarStatus(context.Background(), 1, model.ContratoStatusGenerated)
	require.NoError(t, err)
	assert.Equal(t, model.ContratoStatusGenerated, resp.Status)

	resp, err = f.svc.MudarStatus(context.Background(), 1, model.ContratoStatusSigned)
	require.NoError(t, err)
	assert.Equal(t, model.ContratoStatusSigned, resp.Status)
}

func TestMudarStatusArestasInvalidas(t *testing.T) {
	casos := []struct{ de, para string }{
		{model.ContratoStatusDraft, model.ContratoStatusSigned},
		{model.ContratoStatusGenerated, model.ContratoStatusDraft},
		{model.ContratoStatusSigned, model.ContratoStatusCancelled},
		{model.ContratoStatusCancelled, model.ContratoStatusGenerated},
	}
	for _, caso := range casos {
		f := novoContratoFixture()
		f.repo.contratos[1] = &model.Contrato{ID: 1, Tipo: model.TipoCompraVenda, Status: caso.de}

		_, err := f.svc.MudarStatus(context.Background(), 1, caso.para)

		var te *InvalidTransitionError
		require.ErrorAs(t, err, &te, "%s → %s", caso.de, caso.para)
		assert.Equal(t, caso.de, te.De)
		assert.Equal(t, caso.para, te.Para)
	}
}

func TestMudarStatusContratoInexistente(t *testing.T) {
	f := novoContratoFixture()
	_, err := f.svc.MudarStatus(context.Background(), 42, model.ContratoStatusGenerated)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

// ─── Atualizar / Excluir ─────────────────────────────────────────────────────

func TestAtualizarContratoTerminal(t *testing.T) {
	for _, status := range []string{model.ContratoStatusSigned, model.ContratoStatusCancelled} {
		f := novoContratoFixture()
		f.repo.contratos[1] = &model.Contrato{ID: 1, Tipo: model.TipoCompraVenda, Status: status}

		_, err := f.svc.Atualizar(context.Background(), 1, dto.AtualizarContratoRequest{
			ClienteID: 1, VeiculoID: 1, ValorVenda: decPtr("100000.00"),
		})

		var ce *ConflictError
		require.ErrorAs(t, err, &ce, "status=%s", status)
		assert.Contains(t, ce.Msg, "não pode ser alterado")
	}
}

func TestExcluirContratoAssinado(t *testing.T) {
	f := novoContratoFixture()
	f.repo.contratos[1] = &model.Contrato{ID: 1, Status: model.ContratoStatusSigned}

	err := f.svc.Excluir(context.Background(), 1)

	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, f.repo.contratos, uint(1))
}

func TestExcluirContratoDraft(t *testing.T) {
	f := novoContratoFixture()
	f.repo.contratos[1] = &model.Contrato{ID: 1, Status: model.ContratoStatusDraft}

	require.NoError(t, f.svc.Excluir(context.Background(), 1))
	assert.NotContains(t, f.repo.contratos, uint(1))
}

// ─── Arquivos ────────────────────────────────────────────────────────────────

func TestListarArquivos(t *testing.T) {
	f := novoContratoFixture()
	f.repo.contratos[1] = &model.Contrato{
		ID: 1, Status: model.ContratoStatusSigned,
		Arquivos: []model.ContratoArquivo{
			{ID: 10, ContratoID: 1, Nome: "contrato_1.pdf", Caminho: "contrato_1.pdf"},
		},
	}

	arquivos, err := f.svc.ListarArquivos(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, arquivos, 1)
	assert.Equal(t, "contrato_1.pdf", arquivos[0].Nome)

	_, err = f.svc.ListarArquivos(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestBuscarArquivoInexistente(t *testing.T) {
	f := novoContratoFixture()
	_, err := f.svc.BuscarArquivo(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

// ─── Ponte venda → contrato ──────────────────────────────────────────────────

func TestCriarDeVendaParcelada(t *testing.T) {
	f := novoContratoFixture()

	venda := &model.Venda{
		ID:                 9,
		ClienteID:          1,
		VeiculoID:          1,
		UsuarioID:          3,
		ValorTotal:         decimal.RequireFromString("50000.00"),
		Entrada:            decimal.RequireFromString("10000.00"),
		QuantidadeParcelas: intPtr(4),
		ValorParcela:       decPtr("2500.00"),
		DiaVencimento:      intPtr(5),
	}

	c, err := f.svc.CriarDeVenda(context.Background(), venda)
	require.NoError(t, err)

	assert.Equal(t, model.TipoCompraVenda, c.Tipo)
	assert.Equal(t, model.ContratoStatusDraft, c.Status)
	require.NotNil(t, c.VendaID)
	assert.Equal(t, uint(9), *c.VendaID)
	require.NotNil(t, c.EntradaRestante)
	assert.True(t, c.EntradaRestante.IsZero())
	require.NotNil(t, c.FormaPagamentoParcelas)
	assert.Equal(t, "pix", *c.FormaPagamentoParcelas)
	assert.Len(t, c.Parcelas, 4)
}

func TestCriarDeVendaAvista(t *testing.T) {
	f := novoContratoFixture()

	venda := &model.Venda{
		ID: 9, ClienteID: 1, VeiculoID: 1, UsuarioID: 3,
		ValorTotal: decimal.RequireFromString("50000.00"),
		Entrada:    decimal.RequireFromString("50000.00"),
	}

	c, err := f.svc.CriarDeVenda(context.Background(), venda)
	require.NoError(t, err)
	assert.Nil(t, c.FormaPagamentoRestante)
	assert.Empty(t, c.Parcelas)
}

func TestCriarDeVendaRepositorioIndisponivel(t *testing.T) {
	f := novoContratoFixture()
	f.repo.criarErr = errors.New("conexão recusada")

	venda := &model.Venda{
		ID: 9, ClienteID: 1, VeiculoID: 1, UsuarioID: 3,
		ValorTotal: decimal.RequireFromString("50000.00"),
	}

	_, err := f.svc.CriarDeVenda(context.Background(), venda)
	assert.Error(t, err)
}

// ─── Documento ───────────────────────────────────────────────────────────────

func TestGerarDocumentoDeterministico(t *testing.T) {
	f := novoContratoFixture()

	resp, err := f.svc.Criar(context.Background(), reqComplementoEntrada())
	require.NoError(t, err)

	// the stub does not preload associations
	c := f.repo.contratos[resp.ID]
	c.Cliente = f.clientes.clientes[1]
	c.Veiculo = f.veiculos.veiculos[1]

	a, err := f.svc.GerarDocumento(context.Background(), resp.ID)
	require.NoError(t, err)
	b, err := f.svc.GerarDocumento(context.Background(), resp.ID)
	require.NoError(t, err)

	assert.Equal(t, a.Texto, b.Texto)
	assert.Contains(t, a.Texto, "João da Silva")
	assert.Contains(t, a.Texto, "Maybach Motors Ltda")
}

func TestGerarDocumentoSemAssociacoes(t *testing.T) {
	f := novoContratoFixture()
	f.repo.contratos[1] = &model.Contrato{ID: 1, Tipo: model.TipoCompraVenda, Status: model.ContratoStatusDraft}

	_, err := f.svc.GerarDocumento(context.Background(), 1)

	var ue *UpstreamError
	assert.ErrorAs(t, err, &ue)
}
