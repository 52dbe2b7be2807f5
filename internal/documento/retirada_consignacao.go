package documento

import "fmt"

// Termo de retirada de consignação: devolve o veículo consignado ao
// consignante e encerra a consignação correspondente.
var blocosRetiradaConsignacao = []bloco{
	cabecalho("TERMO DE RETIRADA DE VEÍCULO EM CONSIGNAÇÃO"),
	partes("CONSIGNATÁRIA", "CONSIGNANTE"),
	descricaoVeiculo("PRIMEIRA"),
	blocoDevolucao,
	blocoMultaRetirada,
	blocoQuitacaoConsignacao,
	observacoes,
	fecho("CONSIGNATÁRIA", "CONSIGNANTE"),
}

func blocoDevolucao(d Dados) (string, bool) {
	return "CLÁUSULA SEGUNDA — DA DEVOLUÇÃO\n\nA CONSIGNATÁRIA restitui nesta data ao(à) CONSIGNANTE o veículo descrito na Cláusula Primeira, no mesmo estado de conservação em que foi recebido, encerrando-se a consignação celebrada entre as partes.", true
}

func blocoMultaRetirada(d Dados) (string, bool) {
	if d.MultaRetiradaAntecipada == "" {
		return "", false
	}
	return fmt.Sprintf(
		"CLÁUSULA TERCEIRA — DA MULTA POR RETIRADA ANTECIPADA\n\nPor ocorrer a retirada antes do prazo ajustado no contrato de consignação, o(a) CONSIGNANTE pagará à CONSIGNATÁRIA, neste ato, a multa compensatória de R$ %s.",
		d.MultaRetiradaAntecipada), true
}

func blocoQuitacaoConsignacao(d Dados) (string, bool) {
	return "CLÁUSULA QUARTA — DA QUITAÇÃO\n\nCom a assinatura do presente termo as partes outorgam-se mútua, plena e irrevogável quitação quanto às obrigações do contrato de consignação, nada mais havendo a reclamar a qualquer título.", true
}
