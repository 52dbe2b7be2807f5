package documento

import (
	"strings"
	"testing"

	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dadosBase() Dados {
	return Dados{
		LojaRazaoSocial:   "Maybach Motors Ltda",
		LojaCNPJ:          "12.345.678/0001-90",
		LojaEndereco:      "Av. das Nações 1000",
		LojaCidade:        "São Paulo",
		LojaEstado:        "SP",
		LojaRepresentante: "Carlos Pereira",

		ClienteNome:          "João da Silva",
		ClienteCpfCnpj:       "123.456.789-01",
		TipoDocumentoCliente: "CPF",
		ClienteEndereco:      "Rua das Flores 123",
		ClienteCidade:        "Campinas",
		ClienteEstado:        "SP",

		VeiculoMarca:  "Toyota",
		VeiculoModelo: "Corolla XEi",
		VeiculoAno:    "2022",
		VeiculoCor:    "Prata",

		DataContrato: "15/03/2026",
	}
}

func TestRenderComplementoEntradaParcelado(t *testing.T) {
	d := dadosBase()
	d.EntradaTotal = "10.000,00"
	d.EntradaPaga = "4.000,00"
	d.EntradaRestante = "6.000,00"
	d.EntradaRestantePositiva = true
	d.FormaPagamentoRestante = "parcelado"
	d.QuantidadeParcelas = 3
	d.ValorParcela = "2.000,00"
	d.DiaVencimento = 10
	d.FormaPagamentoParcelas = "pix"
	d.MultaAtraso = 2
	d.JurosAtraso = 1

	texto, err := Render(model.TipoComplementoEntrada, d)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(texto, "INSTRUMENTO PARTICULAR DE COMPLEMENTO DE ENTRADA"))
	assert.Contains(t, texto, "remanescendo o saldo de R$ 6.000,00")
	assert.Contains(t, texto, "3 (três) parcelas mensais e sucessivas de R$ 2.000,00")
	assert.Contains(t, texto, "vencimento todo dia 10")
	assert.Contains(t, texto, "por meio de PIX")
	assert.Contains(t, texto, "A primeira parcela vencerá 30 (trinta) dias após a assinatura")
	assert.Contains(t, texto, "multa de 2% (dois por cento)")
	assert.Contains(t, texto, "juros de 1% (um por cento) ao mês")
	assert.Contains(t, texto, "foro da comarca de São Paulo/SP")
	assert.Contains(t, texto, "São Paulo/SP, 15/03/2026.")
}

func TestRenderComplementoEntradaAvista(t *testing.T) {
	d := dadosBase()
	d.EntradaTotal = "10.000,00"
	d.EntradaPaga = "4.000,00"
	d.EntradaRestante = "6.000,00"
	d.FormaPagamentoRestante = "avista"
	d.DataVencimentoAvista = "01/04/2026"

	texto, err := Render(model.TipoComplementoEntrada, d)
	require.NoError(t, err)

	assert.Contains(t, texto, "pago em parcela única, com vencimento em 01/04/2026")
	assert.Contains(t, texto, "por meio de a definir")
	assert.NotContains(t, texto, "parcelas mensais e sucessivas")
	assert.NotContains(t, texto, "DA MORA")
}

func TestRenderCompraVendaSemFinanciamento(t *testing.T) {
	d := dadosBase()
	d.ValorVenda = "120.000,00"

	texto, err := Render(model.TipoCompraVenda, d)
	require.NoError(t, err)

	assert.Contains(t, texto, "O preço certo e ajustado da venda é de R$ 120.000,00.")
	assert.NotContains(t, texto, "DO FINANCIAMENTO")
	assert.NotContains(t, texto, "DO COMPLEMENTO DE ENTRADA")
	assert.NotContains(t, texto, "veículo dado em troca")
}

func TestRenderCompraVendaComFinanciamentoETroca(t *testing.T) {
	d := dadosBase()
	d.ValorVenda = "120.000,00"
	d.EntradaTotal = "30.000,00"
	d.EntradaPaga = "10.000,00"
	d.EntradaRestante = "20.000,00"
	d.EntradaRestantePositiva = true
	d.TemFinanciamento = true
	d.ValorFinanciado = "70.000,00"
	d.BancoFinanciador = "Banco Alfa S.A."
	d.TemVeiculoTroca = true
	d.VeiculoTrocaMarca = "Fiat"
	d.VeiculoTrocaModelo = "Argo"
	d.VeiculoTrocaAno = "2019"
	d.VeiculoTrocaPlaca = "ABC1D23"

	texto, err := Render(model.TipoCompraVenda, d)
	require.NoError(t, err)

	assert.Contains(t, texto, "R$ 70.000,00 será objeto de financiamento junto a Banco Alfa S.A.")
	assert.Contains(t, texto, "condição suspensiva")
	assert.Contains(t, texto, "marca Fiat, modelo Argo, ano 2019, placa ABC1D23")
	assert.Contains(t, texto, "O saldo de entrada de R$ 20.000,00 será regido por instrumento próprio")
}

func TestRenderCompraVendaFinanciamentoSemBanco(t *testing.T) {
	d := dadosBase()
	d.ValorVenda = "90.000,00"
	d.TemFinanciamento = true
	d.ValorFinanciado = "50.000,00"

	texto, err := Render(model.TipoCompraVenda, d)
	require.NoError(t, err)
	assert.Contains(t, texto, "financiamento junto a instituição financeira a definir")
}

func TestRenderPartesClienteCNPJ(t *testing.T) {
	d := dadosBase()
	d.ValorVenda = "200.000,00"
	d.ClienteNome = "Transportes Silva Ltda"
	d.ClienteCpfCnpj = "98.765.432/0001-10"
	d.TipoDocumentoCliente = "CNPJ"
	d.ClienteRG = "12.345.678-9" // must be ignored for CNPJ holders

	texto, err := Render(model.TipoCompraVenda, d)
	require.NoError(t, err)

	assert.Contains(t, texto, "inscrita no CNPJ sob o nº 98.765.432/0001-10")
	assert.NotContains(t, texto, "portador(a) do RG")
}

func TestRenderDeterministico(t *testing.T) {
	d := dadosBase()
	d.EntradaTotal = "10.000,00"
	d.EntradaPaga = "4.000,00"
	d.EntradaRestante = "6.000,00"
	d.FormaPagamentoRestante = "parcelado"
	d.QuantidadeParcelas = 12
	d.ValorParcela = "500,00"
	d.DiaVencimento = 5
	d.FormaPagamentoParcelas = "boleto"

	a, err := Render(model.TipoComplementoEntrada, d)
	require.NoError(t, err)
	b, err := Render(model.TipoComplementoEntrada, d)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same input must produce identical bytes")
}

func TestRenderTipoDesconhecido(t *testing.T) {
	_, err := Render("lease", dadosBase())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo de contrato desconhecido")
}

func TestRenderTodosOsTipos(t *testing.T) {
	d := dadosBase()
	d.ValorVenda = "100.000,00"
	d.ValorMinimoVenda = "80.000,00"
	d.ComissaoLoja = 5
	d.PrazoConsignacao = 90
	d.ChavePrincipal = true
	d.ChaveReserva = true
	d.Manual = false

	for _, tipo := range model.TiposContrato {
		texto, err := Render(tipo, d)
		require.NoError(t, err, "tipo=%s", tipo)
		assert.NotEmpty(t, texto, "tipo=%s", tipo)
		assert.Contains(t, texto, "IDENTIFICAÇÃO DAS PARTES", "tipo=%s", tipo)
	}
}
