// Package documento turns structured contract data into the exact legal
// text shown to and signed by the customer. Render is a pure function:
// same input, same bytes — no clock, no randomness, no storage. Any
// "generated at" stamping happens outside, by whoever fills Dados.
package documento

import (
	"fmt"
	"strings"

	"github.com/victor-jaber/Maybach-system-sub000/internal/model"
)

// Dados is the flat record of every field referenced by any template.
// Monetary fields arrive pre-formatted ("10.000,00"), dates pre-formatted
// ("02/01/2006"), percentages as plain integers.
type Dados struct {
	// Loja (vendedora)
	LojaRazaoSocial   string
	LojaNomeFantasia  string
	LojaCNPJ          string
	LojaEndereco      string
	LojaCidade        string
	LojaEstado        string
	LojaRepresentante string
	LojaTelefone      string
	LojaEmail         string

	// Cliente. TipoDocumentoCliente: "CPF" | "CNPJ" — decides which
	// identity lines appear.
	ClienteNome          string
	ClienteCpfCnpj       string
	TipoDocumentoCliente string
	ClienteRG            string
	ClienteCNH           string
	ClienteEndereco      string
	ClienteCidade        string
	ClienteEstado        string
	ClienteTelefone      string
	ClienteEmail         string

	// Veículo objeto do contrato
	VeiculoMarca   string
	VeiculoModelo  string
	VeiculoAno     string
	VeiculoCor     string
	VeiculoPlaca   string
	VeiculoRenavam string
	VeiculoChassi  string

	// Veículo dado em troca (quando houver)
	TemVeiculoTroca     bool
	VeiculoTrocaMarca   string
	VeiculoTrocaModelo  string
	VeiculoTrocaAno     string
	VeiculoTrocaPlaca   string

	// Valores (strings monetárias pré-formatadas)
	ValorVenda              string
	EntradaTotal            string
	EntradaPaga             string
	EntradaRestante         string
	EntradaRestantePositiva bool
	ValorParcela            string
	ValorFinanciado         string
	TemFinanciamento        bool
	BancoFinanciador        string
	ValorMinimoVenda        string
	MultaRetiradaAntecipada string

	// Pagamento do saldo
	FormaPagamentoRestante string // "avista" | "parcelado"
	QuantidadeParcelas     int
	DiaVencimento          int
	FormaPagamentoParcelas string // pix | boleto | transferencia | ""
	DataVencimentoAvista   string

	// Encargos e consignação (percentuais inteiros)
	MultaAtraso      int
	JurosAtraso      int
	ComissaoLoja     int
	PrazoConsignacao int

	// Checklist de entrega
	ChavePrincipal bool
	ChaveReserva   bool
	Manual         bool

	CondicaoGeral string
	Observacoes   string
	DataContrato  string
}

// bloco is one clause of a template. Returning ok=false omits the
// clause entirely (conditional sections: financiamento, troca, …).
type bloco func(d Dados) (string, bool)

// Render produces the full legal text for one contract type.
func Render(tipo string, d Dados) (string, error) {
	var blocos []bloco
	switch tipo {
	case model.TipoComplementoEntrada:
		blocos = blocosComplementoEntrada
	case model.TipoCompraVenda:
		blocos = blocosCompraVenda
	case model.TipoCompraVeiculo:
		blocos = blocosCompraVeiculo
	case model.TipoConsignacao:
		blocos = blocosConsignacao
	case model.TipoProtocoloEntrega:
		blocos = blocosProtocoloEntrega
	case model.TipoRetiradaConsignacao:
		blocos = blocosRetiradaConsignacao
	default:
		return "", fmt.Errorf("documento: tipo de contrato desconhecido: %q", tipo)
	}

	var sb strings.Builder
	first := true
	for _, b := range blocos {
		texto, ok := b(d)
		if !ok {
			continue
		}
		if !first {
			sb.WriteString("\n\n")
		}
		sb.WriteString(texto)
		first = false
	}
	return sb.String(), nil
}

// ── Blocos compartilhados ────────────────────────────────────────────────────

func cabecalho(titulo string) bloco {
	return func(d Dados) (string, bool) {
		return titulo, true
	}
}

// partes identifies the two parties under their role names for the
// contract type (VENDEDORA/COMPRADOR, COMPRADORA/VENDEDOR,
// CONSIGNATÁRIA/CONSIGNANTE). The customer identity lines depend on
// TipoDocumentoCliente: a CPF holder may carry RG/CNH; a CNPJ holder is
// identified by company registration only.
func partes(papelLoja, papelCliente string) bloco {
	return func(d Dados) (string, bool) {
		var sb strings.Builder
		sb.WriteString("IDENTIFICAÇÃO DAS PARTES\n\n")
		sb.WriteString(fmt.Sprintf(
			"%s: %s, pessoa jurídica de direito privado, inscrita no CNPJ sob o nº %s, com sede em %s, %s/%s, neste ato representada por %s.",
			papelLoja, d.LojaRazaoSocial, d.LojaCNPJ, d.LojaEndereco, d.LojaCidade, d.LojaEstado, d.LojaRepresentante))
		sb.WriteString("\n\n")
		if d.TipoDocumentoCliente == "CNPJ" {
			sb.WriteString(fmt.Sprintf(
				"%s: %s, pessoa jurídica de direito privado, inscrita no CNPJ sob o nº %s, com sede em %s, %s/%s.",
				papelCliente, d.ClienteNome, d.ClienteCpfCnpj, d.ClienteEndereco, d.ClienteCidade, d.ClienteEstado))
		} else {
			sb.WriteString(fmt.Sprintf(
				"%s: %s, inscrito(a) no CPF sob o nº %s", papelCliente, d.ClienteNome, d.ClienteCpfCnpj))
			if d.ClienteRG != "" {
				sb.WriteString(fmt.Sprintf(", portador(a) do RG nº %s", d.ClienteRG))
			}
			if d.ClienteCNH != "" {
				sb.WriteString(fmt.Sprintf(", CNH nº %s", d.ClienteCNH))
			}
			sb.WriteString(fmt.Sprintf(", residente e domiciliado(a) em %s, %s/%s.",
				d.ClienteEndereco, d.ClienteCidade, d.ClienteEstado))
		}
		return sb.String(), true
	}
}

func descricaoVeiculo(numeroClausula string) bloco {
	return func(d Dados) (string, bool) {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf(
			"CLÁUSULA %s — DO OBJETO\n\nO presente contrato tem por objeto o veículo marca %s, modelo %s, ano %s, cor %s",
			numeroClausula, d.VeiculoMarca, d.VeiculoModelo, d.VeiculoAno, d.VeiculoCor))
		if d.VeiculoPlaca != "" {
			sb.WriteString(fmt.Sprintf(", placa %s", d.VeiculoPlaca))
		}
		if d.VeiculoRenavam != "" {
			sb.WriteString(fmt.Sprintf(", RENAVAM %s", d.VeiculoRenavam))
		}
		if d.VeiculoChassi != "" {
			sb.WriteString(fmt.Sprintf(", chassi %s", d.VeiculoChassi))
		}
		sb.WriteString(".")
		return sb.String(), true
	}
}

// pagamentoSaldo renders the conditional payment block: a single due
// date when "avista"; installment enumeration plus the 30-day first
// installment clause when "parcelado".
func pagamentoSaldo(numeroClausula string) bloco {
	return func(d Dados) (string, bool) {
		switch d.FormaPagamentoRestante {
		case "avista":
			return fmt.Sprintf(
				"CLÁUSULA %s — DO PAGAMENTO\n\nO valor remanescente de R$ %s será pago em parcela única, com vencimento em %s, por meio de %s.",
				numeroClausula, d.EntradaRestante, d.DataVencimentoAvista,
				formaPagamentoLabel(d.FormaPagamentoParcelas)), true
		case "parcelado":
			var sb strings.Builder
			sb.WriteString(fmt.Sprintf(
				"CLÁUSULA %s — DO PAGAMENTO\n\nO valor remanescente de R$ %s será pago em %d (%s) parcelas mensais e sucessivas de R$ %s cada, com vencimento todo dia %d, por meio de %s.",
				numeroClausula, d.EntradaRestante, d.QuantidadeParcelas,
				numeroPorExtenso(d.QuantidadeParcelas), d.ValorParcela,
				d.DiaVencimento, formaPagamentoLabel(d.FormaPagamentoParcelas)))
			sb.WriteString("\n\nParágrafo único. A primeira parcela vencerá 30 (trinta) dias após a assinatura do presente contrato.")
			return sb.String(), true
		default:
			return "", false
		}
	}
}

// mora renders the late-payment clause, spelling both percentages out in
// words for legal fidelity.
func mora(numeroClausula string) bloco {
	return func(d Dados) (string, bool) {
		if d.MultaAtraso == 0 && d.JurosAtraso == 0 {
			return "", false
		}
		return fmt.Sprintf(
			"CLÁUSULA %s — DA MORA\n\nO atraso no pagamento de qualquer parcela sujeitará o(a) devedor(a) à multa de %d%% (%s por cento) sobre o valor da parcela, acrescida de juros de %d%% (%s por cento) ao mês, calculados pro rata die.",
			numeroClausula, d.MultaAtraso, numeroPorExtenso(d.MultaAtraso),
			d.JurosAtraso, numeroPorExtenso(d.JurosAtraso)), true
	}
}

func condicoesGerais(numeroClausula string) bloco {
	return func(d Dados) (string, bool) {
		if d.CondicaoGeral == "" {
			return "", false
		}
		return fmt.Sprintf("CLÁUSULA %s — DAS CONDIÇÕES GERAIS\n\n%s", numeroClausula, d.CondicaoGeral), true
	}
}

func observacoes(d Dados) (string, bool) {
	if d.Observacoes == "" {
		return "", false
	}
	return fmt.Sprintf("OBSERVAÇÕES\n\n%s", d.Observacoes), true
}

func foro(numeroClausula string) bloco {
	return func(d Dados) (string, bool) {
		return fmt.Sprintf(
			"CLÁUSULA %s — DO FORO\n\nFica eleito o foro da comarca de %s/%s para dirimir quaisquer controvérsias oriundas do presente contrato, com renúncia expressa a qualquer outro, por mais privilegiado que seja.",
			numeroClausula, d.LojaCidade, d.LojaEstado), true
	}
}

func fecho(papelLoja, papelCliente string) bloco {
	return func(d Dados) (string, bool) {
		var sb strings.Builder
		sb.WriteString("E, por estarem justas e contratadas, as partes firmam o presente instrumento em duas vias de igual teor e forma.")
		if d.DataContrato != "" {
			sb.WriteString(fmt.Sprintf("\n\n%s/%s, %s.", d.LojaCidade, d.LojaEstado, d.DataContrato))
		}
		sb.WriteString(fmt.Sprintf("\n\n_________________________________\n%s\n%s", d.LojaRazaoSocial, papelLoja))
		sb.WriteString(fmt.Sprintf("\n\n_________________________________\n%s\n%s", d.ClienteNome, papelCliente))
		return sb.String(), true
	}
}
