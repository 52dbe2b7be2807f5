package documento

import "strconv"

// Número por extenso em português, na faixa usada pelas cláusulas
// contratuais (quantidade de parcelas, multa, juros). 0–20 vêm de uma
// tabela fixa; 21–99 compõem "dezena e unidade"; a partir de 100 o
// texto legal usa o próprio numeral.
var extenso0a20 = [...]string{
	"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete",
	"oito", "nove", "dez", "onze", "doze", "treze", "quatorze", "quinze",
	"dezesseis", "dezessete", "dezoito", "dezenove", "vinte",
}

var extensoDezenas = map[int]string{
	20: "vinte",
	30: "trinta",
	40: "quarenta",
	50: "cinquenta",
	60: "sessenta",
	70: "setenta",
	80: "oitenta",
	90: "noventa",
}

func numeroPorExtenso(n int) string {
	if n < 0 || n >= 100 {
		return strconv.Itoa(n)
	}
	if n <= 20 {
		return extenso0a20[n]
	}
	dezena := (n / 10) * 10
	unidade := n % 10
	if unidade == 0 {
		return extensoDezenas[dezena]
	}
	return extensoDezenas[dezena] + " e " + extenso0a20[unidade]
}

// formaPagamentoLabel maps a payment-method key to the label printed in
// the contract. Unknown or empty keys render as "a definir".
func formaPagamentoLabel(metodo string) string {
	switch metodo {
	case "pix":
		return "PIX"
	case "boleto":
		return "Boleto Bancário"
	case "transferencia":
		return "Transferência Bancária (TED/DOC)"
	default:
		return "a definir"
	}
}
