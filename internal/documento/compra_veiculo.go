package documento

import "fmt"

// Contrato de compra de veículo: a loja compra o veículo do cliente
// (aquisição de estoque ou recebimento de troca avulsa).
var blocosCompraVeiculo = []bloco{
	cabecalho("INSTRUMENTO PARTICULAR DE COMPRA DE VEÍCULO"),
	partes("COMPRADORA", "VENDEDOR(A)"),
	descricaoVeiculo("PRIMEIRA"),
	blocoPrecoAquisicao,
	pagamentoSaldo("TERCEIRA"),
	blocoGarantiaEviccao,
	condicoesGerais("QUINTA"),
	foro("SEXTA"),
	observacoes,
	fecho("COMPRADORA", "VENDEDOR(A)"),
}

func blocoPrecoAquisicao(d Dados) (string, bool) {
	return fmt.Sprintf(
		"CLÁUSULA SEGUNDA — DO PREÇO\n\nA COMPRADORA pagará ao(à) VENDEDOR(A), pelo veículo descrito na Cláusula Primeira, o valor certo e ajustado de R$ %s.",
		d.ValorVenda), true
}

func blocoGarantiaEviccao(d Dados) (string, bool) {
	return "CLÁUSULA QUARTA — DAS GARANTIAS\n\nO(A) VENDEDOR(A) declara que o veículo se encontra livre e desembaraçado de quaisquer ônus, gravames, alienação fiduciária, débitos de multas e tributos anteriores a esta data, respondendo pela evicção na forma da lei.", true
}
