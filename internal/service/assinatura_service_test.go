package service

import (
	"context"
	"testing"
	"time"

	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assinaturaFixture struct {
	svc        AssinaturaService
	repo       *assinaturaRepoStub
	contratos  *contratoRepoStub
	dispatcher *dispatcherStub
	contrato   *model.Contrato
	cliente    *model.Cliente
}

func novaAssinaturaFixture(maxTentativas int) *assinaturaFixture {
	contratoRepo := newContratoRepoStub()
	assinaturaRepo := newAssinaturaRepoStub()
	clientes := newClienteRepoStub()
	veiculos := newVeiculoRepoStub()
	loja := &lojaRepoStub{loja: lojaPadrao()}
	dispatcher := &dispatcherStub{}

	cliente := &model.Cliente{
		ID: 1, Nome: "João da Silva", CpfCnpj: "123.456.789-01",
		TipoDocumento: "CPF", Email: strPtr("joao@example.com"),
		Endereco: "Rua das Flores 123", Cidade: "Campinas", Estado: "SP",
	}
	veiculo := &model.Veiculo{
		ID: 1, MarcaID: 1, Marca: &model.Marca{ID: 1, Nome: "Toyota"},
		Modelo: "Corolla XEi", Ano: 2022, Cor: "Prata",
	}
	contrato := &model.Contrato{
		ID: 1, Tipo: model.TipoCompraVenda, Status: model.ContratoStatusGenerated,
		ClienteID: 1, VeiculoID: 1,
		ValorVenda: decPtr("120000.00"),
		Cliente:    cliente, Veiculo: veiculo,
	}
	clientes.clientes[1] = cliente
	veiculos.veiculos[1] = veiculo
	contratoRepo.contratos[1] = contrato

	contratoSvc := NewContratoService(contratoRepo, clientes, veiculos, loja)
	svc := NewAssinaturaService(assinaturaRepo, contratoRepo, contratoSvc, dispatcher,
		maxTentativas, "https://app.maybach.example")

	return &assinaturaFixture{
		svc:        svc,
		repo:       assinaturaRepo,
		contratos:  contratoRepo,
		dispatcher: dispatcher,
		contrato:   contrato,
		cliente:    cliente,
	}
}

// ─── Emitir ──────────────────────────────────────────────────────────────────

func TestEmitirToken(t *testing.T) {
	f := novaAssinaturaFixture(5)

	resp, err := f.svc.Emitir(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, resp.Token, 32)
	assert.Equal(t, "https://app.maybach.example/assinar/"+resp.Token, resp.Link)
	assert.Equal(t, model.AssinaturaStatusPending, resp.Status)
	require.Len(t, f.dispatcher.emails, 1)
}

func TestEmitirExigeContratoGenerated(t *testing.T) {
	for _, status := range []string{
		model.ContratoStatusDraft,
		model.ContratoStatusSigned,
		model.ContratoStatusCancelled,
	} {
		f := novaAssinaturaFixture(5)
		f.contrato.Status = status

		_, err := f.svc.Emitir(context.Background(), 1)

		var ce *ConflictError
		require.ErrorAs(t, err, &ce, "status=%s", status)
	}
}

func TestEmitirInvalidaTokenAnterior(t *testing.T) {
	f := novaAssinaturaFixture(5)

	primeiro, err := f.svc.Emitir(context.Background(), 1)
	require.NoError(t, err)
	segundo, err := f.svc.Emitir(context.Background(), 1)
	require.NoError(t, err)
	require.NotEqual(t, primeiro.Token, segundo.Token)

	antigo, err := f.repo.FindByToken(context.Background(), primeiro.Token)
	require.NoError(t, err)
	assert.Equal(t, model.AssinaturaStatusInvalidated, antigo.Status)

	// the replaced token disappears from the public flow
	_, err = f.svc.Consultar(context.Background(), primeiro.Token)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestEmitirContratoInexistente(t *testing.T) {
	f := novaAssinaturaFixture(5)
	_, err := f.svc.Emitir(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

// emitir creates a token and wires the contract association the way the
// real repository's Preload would.
func emitir(t *testing.T, f *assinaturaFixture) string {
	t.Helper()
	resp, err := f.svc.Emitir(context.Background(), f.contrato.ID)
	require.NoError(t, err)
	a, err := f.repo.FindByToken(context.Background(), resp.Token)
	require.NoError(t, err)
	a.Contrato = f.contrato
	return resp.Token
}

// ─── Consultar ───────────────────────────────────────────────────────────────

func TestConsultarAntesDaValidacao(t *testing.T) {
	f := novaAssinaturaFixture(5)
	token := emitir(t, f)

	resp, err := f.svc.Consultar(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, model.AssinaturaStatusPending, resp.Status)
	assert.Equal(t, "João da Silva", resp.ClienteNome)
	assert.Equal(t, "CPF", resp.TipoDocumento)
	assert.Equal(t, 3, resp.TamanhoCodigo)
	assert.Contains(t, resp.Veiculo, "Corolla XEi")
	assert.Empty(t, resp.Texto, "legal text must stay hidden until the identity check passes")
}

func TestConsultarDepoisDaValidacao(t *testing.T) {
	f := novaAssinaturaFixture(5)
	token := emitir(t, f)

	_, err := f.svc.Validar(context.Background(), token, "901")
	require.NoError(t, err)

	resp, err := f.svc.Consultar(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, model.AssinaturaStatusValidated, resp.Status)
	assert.Contains(t, resp.Texto, "IDENTIFICAÇÃO DAS PARTES")
	assert.Contains(t, resp.Texto, "João da Silva")
}

func TestConsultarTokenDesconhecido(t *testing.T) {
	f := novaAssinaturaFixture(5)
	_, err := f.svc.Consultar(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

// ─── Validar ─────────────────────────────────────────────────────────────────

func TestValidarFragmentoCPF(t *testing.T) {
	f := novaAssinaturaFixture(5)
	token := emitir(t, f)

	// CPF 123.456.789-01 → last three digits
	resp, err := f.svc.Validar(context.Background(), token, "901")
	require.NoError(t, err)
	assert.Equal(t, model.AssinaturaStatusValidated, resp.Status)

	a, err := f.repo.FindByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, model.AssinaturaStatusValidated, a.Status)
	assert.NotNil(t, a.ValidadoEm)
}

func TestValidarFragmentoCNPJ(t *testing.T) {
	f := novaAssinaturaFixture(5)
	f.cliente.CpfCnpj = "98.765.432/0001-10"
	f.cliente.TipoDocumento = "CNPJ"
	token := emitir(t, f)

	// CNPJ → first three digits
	_, err := f.svc.Validar(context.Background(), token, "987")
	require.NoError(t, err)

	_, err = f.svc.Validar(context.Background(), emitir(t, f), "110")
	assert.ErrorIs(t, err, ErrCodigoInvalido)
}

func TestValidarCodigoErradoIncrementaTentativas(t *testing.T) {
	f := novaAssinaturaFixture(5)
	token := emitir(t, f)

	_, err := f.svc.Validar(context.Background(), token, "000")
	assert.ErrorIs(t, err, ErrCodigoInvalido)

	a, err := f.repo.FindByToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 1, a.TentativasValidacao)
	assert.Equal(t, model.AssinaturaStatusPending, a.Status)
}

func TestValidarTetoDeTentativas(t *testing.T) {
	f := novaAssinaturaFixture(2)
	token := emitir(t, f)

	for i := 0; i < 2; i++ {
		_, err := f.svc.Validar(context.Background(), token, "000")
		assert.ErrorIs(t, err, ErrCodigoInvalido)
	}

	// the third attempt is blocked even with the right code
	_, err := f.svc.Validar(context.Background(), token, "901")
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Msg, "tentativas")
}

func TestValidarSemTetoQuandoZero(t *testing.T) {
	f := novaAssinaturaFixture(0)
	token := emitir(t, f)

	for i := 0; i < 10; i++ {
		_, err := f.svc.Validar(context.Background(), token, "000")
		assert.ErrorIs(t, err, ErrCodigoInvalido)
	}
	_, err := f.svc.Validar(context.Background(), token, "901")
	assert.NoError(t, err)
}

func TestValidarDocumentoMalformado(t *testing.T) {
	f := novaAssinaturaFixture(5)
	f.cliente.CpfCnpj = "1234"
	token := emitir(t, f)

	_, err := f.svc.Validar(context.Background(), token, "234")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "cpf_cnpj")
}

// ─── Assinar ─────────────────────────────────────────────────────────────────

func TestAssinarFluxoCompleto(t *testing.T) {
	f := novaAssinaturaFixture(5)
	token := emitir(t, f)

	_, err := f.svc.Validar(context.Background(), token, "901")
	require.NoError(t, err)

	resp, err := f.svc.Assinar(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, model.AssinaturaStatusSigned, resp.Status)
	assert.Equal(t, model.ContratoStatusSigned, resp.ContratoStatus)
	_, perr := time.Parse(time.RFC3339, resp.AssinadoEm)
	assert.NoError(t, perr)

	assert.Equal(t, model.ContratoStatusSigned, f.contrato.Status)
	require.Len(t, f.dispatcher.documentos, 1)
}

func TestAssinarExigeValidacao(t *testing.T) {
	f := novaAssinaturaFixture(5)
	token := emitir(t, f)

	_, err := f.svc.Assinar(context.Background(), token)

	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Msg, "não validada")
	assert.Empty(t, f.dispatcher.documentos)
}

func TestAssinarIdempotente(t *testing.T) {
	f := novaAssinaturaFixture(5)
	token := emitir(t, f)

	_, err := f.svc.Validar(context.Background(), token, "901")
	require.NoError(t, err)
	primeiro, err := f.svc.Assinar(context.Background(), token)
	require.NoError(t, err)

	segundo, err := f.svc.Assinar(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, primeiro.AssinadoEm, segundo.AssinadoEm)
	assert.Len(t, f.dispatcher.documentos, 1, "re-signing must not enqueue another document job")
}

func TestAssinarContratoForaDeGenerated(t *testing.T) {
	f := novaAssinaturaFixture(5)
	token := emitir(t, f)

	_, err := f.svc.Validar(context.Background(), token, "901")
	require.NoError(t, err)

	// contract cancelled between validation and signature
	f.contrato.Status = model.ContratoStatusCancelled

	_, err = f.svc.Assinar(context.Background(), token)

	var te *InvalidTransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, model.ContratoStatusCancelled, te.De)
}
