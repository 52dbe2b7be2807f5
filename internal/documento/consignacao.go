package documento

import "fmt"

// Contrato de consignação: o cliente (consignante) deixa o veículo para
// venda pela loja (consignatária) mediante comissão.
var blocosConsignacao = []bloco{
	cabecalho("INSTRUMENTO PARTICULAR DE CONSIGNAÇÃO DE VEÍCULO"),
	partes("CONSIGNATÁRIA", "CONSIGNANTE"),
	descricaoVeiculo("PRIMEIRA"),
	blocoValorMinimo,
	blocoComissao,
	blocoPrazoConsignacao,
	blocoRetiradaAntecipada,
	blocoGuardaVeiculo,
	condicoesGerais("SÉTIMA"),
	foro("OITAVA"),
	observacoes,
	fecho("CONSIGNATÁRIA", "CONSIGNANTE"),
}

func blocoValorMinimo(d Dados) (string, bool) {
	return fmt.Sprintf(
		"CLÁUSULA SEGUNDA — DO VALOR MÍNIMO DE VENDA\n\nO veículo será ofertado a terceiros por valor não inferior a R$ %s, somente podendo ser alienado abaixo desse montante com anuência expressa e por escrito do(a) CONSIGNANTE.",
		d.ValorMinimoVenda), true
}

func blocoComissao(d Dados) (string, bool) {
	return fmt.Sprintf(
		"CLÁUSULA TERCEIRA — DA COMISSÃO\n\nPela intermediação, a CONSIGNATÁRIA fará jus à comissão de %d%% (%s por cento) sobre o valor efetivo da venda, deduzida do repasse devido ao(à) CONSIGNANTE.",
		d.ComissaoLoja, numeroPorExtenso(d.ComissaoLoja)), true
}

func blocoPrazoConsignacao(d Dados) (string, bool) {
	return fmt.Sprintf(
		"CLÁUSULA QUARTA — DO PRAZO\n\nA consignação vigorará pelo prazo de %d (%s) dias contados da assinatura, prorrogável por acordo entre as partes.",
		d.PrazoConsignacao, numeroPorExtenso(d.PrazoConsignacao)), true
}

func blocoRetiradaAntecipada(d Dados) (string, bool) {
	if d.MultaRetiradaAntecipada == "" {
		return "", false
	}
	return fmt.Sprintf(
		"CLÁUSULA QUINTA — DA RETIRADA ANTECIPADA\n\nA retirada do veículo pelo(a) CONSIGNANTE antes do término do prazo ajustado sujeitá-lo(a) ao pagamento de multa compensatória de R$ %s, destinada a cobrir as despesas de guarda, preparação e divulgação já incorridas.",
		d.MultaRetiradaAntecipada), true
}

func blocoGuardaVeiculo(d Dados) (string, bool) {
	return "CLÁUSULA SEXTA — DA GUARDA\n\nDurante a vigência da consignação a CONSIGNATÁRIA responderá pela guarda e conservação do veículo, vedado o seu uso para fins diversos da demonstração a interessados.", true
}
