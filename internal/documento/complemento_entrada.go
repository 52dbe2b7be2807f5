package documento

import "fmt"

// Contrato de complemento de entrada: cobre a parcela não paga da
// entrada de uma compra e venda, à qual fica juridicamente vinculado.
var blocosComplementoEntrada = []bloco{
	cabecalho("INSTRUMENTO PARTICULAR DE COMPLEMENTO DE ENTRADA"),
	partes("VENDEDORA", "COMPRADOR(A)"),
	descricaoVeiculo("PRIMEIRA"),
	blocoEntrada,
	pagamentoSaldo("TERCEIRA"),
	mora("QUARTA"),
	blocoVinculacao,
	condicoesGerais("SEXTA"),
	foro("SÉTIMA"),
	observacoes,
	fecho("VENDEDORA", "COMPRADOR(A)"),
}

func blocoEntrada(d Dados) (string, bool) {
	return fmt.Sprintf(
		"CLÁUSULA SEGUNDA — DA ENTRADA\n\nDo valor de entrada ajustado em R$ %s, o(a) COMPRADOR(A) já quitou R$ %s, remanescendo o saldo de R$ %s, objeto do presente instrumento.",
		d.EntradaTotal, d.EntradaPaga, d.EntradaRestante), true
}

func blocoVinculacao(d Dados) (string, bool) {
	return "CLÁUSULA QUINTA — DA VINCULAÇÃO\n\nO presente complemento de entrada integra, para todos os fins de direito, o contrato de compra e venda celebrado entre as mesmas partes sobre o veículo descrito na Cláusula Primeira, e a quitação daquele fica condicionada à integral quitação deste.", true
}
