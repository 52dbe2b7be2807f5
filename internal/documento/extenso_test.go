package documento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeroPorExtenso(t *testing.T) {
	casos := []struct {
		n        int
		esperado string
	}{
		{0, "zero"},
		{1, "um"},
		{3, "três"},
		{10, "dez"},
		{14, "quatorze"},
		{20, "vinte"},
		{21, "vinte e um"},
		{30, "trinta"},
		{48, "quarenta e oito"},
		{99, "noventa e nove"},
		{100, "100"},
		{120, "120"},
		{-1, "-1"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, numeroPorExtenso(c.n), "n=%d", c.n)
	}
}

func TestFormaPagamentoLabel(t *testing.T) {
	assert.Equal(t, "PIX", formaPagamentoLabel("pix"))
	assert.Equal(t, "Boleto Bancário", formaPagamentoLabel("boleto"))
	assert.Equal(t, "Transferência Bancária (TED/DOC)", formaPagamentoLabel("transferencia"))
	assert.Equal(t, "a definir", formaPagamentoLabel(""))
	assert.Equal(t, "a definir", formaPagamentoLabel("cheque"))
}
