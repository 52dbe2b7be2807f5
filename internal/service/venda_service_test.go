package service

import (
	"context"
	"errors"
	"testing"

	"github.com/victor-jaber/Maybach-system-sub000/internal/dto"
	"github.com/victor-jaber/Maybach-system-sub000/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ponteStub replaces the contract service in the sale flow; only
// CriarDeVenda is reachable from Registrar.
type ponteStub struct {
	ContratoService
	contrato *model.Contrato
	err      error
	chamadas int
}

func (p *ponteStub) CriarDeVenda(_ context.Context, _ *model.Venda) (*model.Contrato, error) {
	p.chamadas++
	if p.err != nil {
		return nil, p.err
	}
	return p.contrato, nil
}

type vendaFixture struct {
	svc      VendaService
	repo     *vendaRepoStub
	veiculos *veiculoRepoStub
	ponte    *ponteStub
}

func novaVendaFixture(ponte *ponteStub) *vendaFixture {
	repo := newVendaRepoStub()
	clientes := newClienteRepoStub()
	veiculos := newVeiculoRepoStub()

	clientes.clientes[1] = &model.Cliente{ID: 1, Nome: "João da Silva", CpfCnpj: "123.456.789-01", TipoDocumento: "CPF"}
	veiculos.veiculos[1] = &model.Veiculo{
		ID: 1, MarcaID: 1, Modelo: "Corolla XEi", Ano: 2022,
		Preco: decimal.RequireFromString("120000.00"), Status: "disponivel",
	}

	return &vendaFixture{
		svc:      NewVendaService(repo, clientes, veiculos, ponte),
		repo:     repo,
		veiculos: veiculos,
		ponte:    ponte,
	}
}

func reqVenda() dto.RegistrarVendaRequest {
	entrada := decimal.RequireFromString("20000.00")
	return dto.RegistrarVendaRequest{
		ClienteID:  1,
		VeiculoID:  1,
		ValorTotal: decimal.RequireFromString("120000.00"),
		Entrada:    &entrada,
	}
}

func TestRegistrarVendaCriaContrato(t *testing.T) {
	f := novaVendaFixture(&ponteStub{contrato: &model.Contrato{ID: 7}})

	resp, err := f.svc.Registrar(context.Background(), 3, reqVenda())
	require.NoError(t, err)

	require.NotNil(t, resp.ContratoID)
	assert.Equal(t, uint(7), *resp.ContratoID)
	assert.Nil(t, resp.ContratoErro)
	assert.Equal(t, 1, f.ponte.chamadas)

	assert.Equal(t, "vendido", f.veiculos.veiculos[1].Status)

	venda := f.repo.vendas[resp.ID]
	require.NotNil(t, venda.ContratoID)
	assert.Equal(t, uint(3), venda.UsuarioID)
}

func TestRegistrarVendaSobreviveAFalhaDaPonte(t *testing.T) {
	f := novaVendaFixture(&ponteStub{err: errors.New("loja não cadastrada")})

	resp, err := f.svc.Registrar(context.Background(), 3, reqVenda())
	require.NoError(t, err, "a falha da ponte não pode bloquear a venda")

	assert.Nil(t, resp.ContratoID)
	require.NotNil(t, resp.ContratoErro)
	assert.Contains(t, *resp.ContratoErro, "loja não cadastrada")

	// the gap stays queryable
	semContrato, err := f.svc.ListarSemContrato(context.Background())
	require.NoError(t, err)
	require.Len(t, semContrato, 1)
	assert.Equal(t, resp.ID, semContrato[0].ID)

	// the vehicle is still sold
	assert.Equal(t, "vendido", f.veiculos.veiculos[1].Status)
}

func TestRegistrarVeiculoJaVendido(t *testing.T) {
	f := novaVendaFixture(&ponteStub{contrato: &model.Contrato{ID: 7}})
	f.veiculos.veiculos[1].Status = "vendido"

	_, err := f.svc.Registrar(context.Background(), 3, reqVenda())

	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 0, f.ponte.chamadas)
	assert.Empty(t, f.repo.vendas)
}

func TestRegistrarClienteInexistente(t *testing.T) {
	f := novaVendaFixture(&ponteStub{})

	req := reqVenda()
	req.ClienteID = 99

	_, err := f.svc.Registrar(context.Background(), 3, req)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
	assert.Empty(t, f.repo.vendas)
}

func TestRegistrarEntradaOpcional(t *testing.T) {
	f := novaVendaFixture(&ponteStub{contrato: &model.Contrato{ID: 7}})

	req := reqVenda()
	req.Entrada = nil

	resp, err := f.svc.Registrar(context.Background(), 3, req)
	require.NoError(t, err)
	require.NotNil(t, resp.Entrada)
	assert.True(t, resp.Entrada.IsZero())
}

func TestBuscarVendaInexistente(t *testing.T) {
	f := novaVendaFixture(&ponteStub{})
	_, err := f.svc.Buscar(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}
