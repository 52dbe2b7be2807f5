package documento

import (
	"fmt"
	"strings"
)

// Contrato de compra e venda de veículo (loja vende ao cliente).
// Blocos condicionais: troca, financiamento (somente quando
// ValorFinanciado > 0) e remissão ao complemento de entrada (somente
// quando há entrada restante).
var blocosCompraVenda = []bloco{
	cabecalho("INSTRUMENTO PARTICULAR DE COMPRA E VENDA DE VEÍCULO"),
	partes("VENDEDORA", "COMPRADOR(A)"),
	descricaoVeiculo("PRIMEIRA"),
	blocoPreco,
	blocoTroca,
	pagamentoSaldo("TERCEIRA"),
	mora("QUARTA"),
	blocoFinanciamento,
	blocoRemissaoComplemento,
	blocoTradicao,
	condicoesGerais("OITAVA"),
	foro("NONA"),
	observacoes,
	fecho("VENDEDORA", "COMPRADOR(A)"),
}

func blocoPreco(d Dados) (string, bool) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"CLÁUSULA SEGUNDA — DO PREÇO\n\nO preço certo e ajustado da venda é de R$ %s.",
		d.ValorVenda))
	if d.EntradaTotal != "" {
		sb.WriteString(fmt.Sprintf(
			" A título de entrada, o(a) COMPRADOR(A) pagará R$ %s, dos quais R$ %s já se encontram quitados.",
			d.EntradaTotal, d.EntradaPaga))
	}
	return sb.String(), true
}

func blocoTroca(d Dados) (string, bool) {
	if !d.TemVeiculoTroca {
		return "", false
	}
	return fmt.Sprintf(
		"Parágrafo único. Integra o pagamento o veículo dado em troca pelo(a) COMPRADOR(A): marca %s, modelo %s, ano %s, placa %s, que passa a integrar o estoque da VENDEDORA no estado em que se encontra.",
		d.VeiculoTrocaMarca, d.VeiculoTrocaModelo, d.VeiculoTrocaAno, d.VeiculoTrocaPlaca), true
}

// blocoFinanciamento is rendered only when there is financed value: the
// financing approval is a suspensive condition of the sale.
func blocoFinanciamento(d Dados) (string, bool) {
	if !d.TemFinanciamento {
		return "", false
	}
	banco := d.BancoFinanciador
	if banco == "" {
		banco = "instituição financeira a definir"
	}
	return fmt.Sprintf(
		"CLÁUSULA QUINTA — DO FINANCIAMENTO\n\nO valor de R$ %s será objeto de financiamento junto a %s. A aprovação do financiamento constitui condição suspensiva do presente negócio: não sendo aprovado, a venda se resolve de pleno direito, restituindo-se ao(à) COMPRADOR(A) os valores já pagos, sem multa para qualquer das partes.",
		d.ValorFinanciado, banco), true
}

// blocoRemissaoComplemento cross-references the legally linked entry
// complement contract; rendered only while entry remains unpaid.
func blocoRemissaoComplemento(d Dados) (string, bool) {
	if !d.EntradaRestantePositiva {
		return "", false
	}
	return fmt.Sprintf(
		"CLÁUSULA SEXTA — DO COMPLEMENTO DE ENTRADA\n\nO saldo de entrada de R$ %s será regido por instrumento próprio de complemento de entrada, celebrado entre as mesmas partes e juridicamente vinculado ao presente contrato.",
		d.EntradaRestante), true
}

func blocoTradicao(d Dados) (string, bool) {
	return "CLÁUSULA SÉTIMA — DA TRADIÇÃO E DA TRANSFERÊNCIA\n\nA posse do veículo será transferida ao(à) COMPRADOR(A) no ato da assinatura, correndo por sua conta as despesas de transferência de propriedade junto ao órgão de trânsito, bem como multas, tributos e encargos incidentes a partir desta data.", true
}
