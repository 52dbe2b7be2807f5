package documento

import (
	"fmt"
	"strings"
)

// Protocolo de entrega: termo assinado no ato da entrega do veículo,
// com o checklist de itens entregues.
var blocosProtocoloEntrega = []bloco{
	cabecalho("PROTOCOLO DE ENTREGA DE VEÍCULO"),
	partes("VENDEDORA", "COMPRADOR(A)"),
	descricaoVeiculo("PRIMEIRA"),
	blocoChecklistEntrega,
	blocoEstadoVeiculo,
	condicoesGerais("QUARTA"),
	observacoes,
	fecho("VENDEDORA", "COMPRADOR(A)"),
}

func blocoChecklistEntrega(d Dados) (string, bool) {
	item := func(ok bool) string {
		if ok {
			return "SIM"
		}
		return "NÃO"
	}
	var sb strings.Builder
	sb.WriteString("CLÁUSULA SEGUNDA — DOS ITENS ENTREGUES\n\nO(A) COMPRADOR(A) declara haver recebido, nesta data, juntamente com o veículo:\n")
	sb.WriteString(fmt.Sprintf("\n— Chave principal: %s", item(d.ChavePrincipal)))
	sb.WriteString(fmt.Sprintf("\n— Chave reserva: %s", item(d.ChaveReserva)))
	sb.WriteString(fmt.Sprintf("\n— Manual do proprietário: %s", item(d.Manual)))
	return sb.String(), true
}

func blocoEstadoVeiculo(d Dados) (string, bool) {
	return "CLÁUSULA TERCEIRA — DO ESTADO DO VEÍCULO\n\nO(A) COMPRADOR(A) declara haver vistoriado o veículo e o recebe no estado em que se encontra, nada havendo a reclamar quanto a itens aparentes de lataria, pintura, pneus e acessórios.", true
}
