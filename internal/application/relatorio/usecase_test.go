package relatorio_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-backend/loja-api/internal/application/relatorio"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// fakeRelatorioRepo devolve linhas fixadas por chave.
type fakeRelatorioRepo struct {
	porProduto  map[string][]repository.VendaDetalheRow
	porCliente  map[string][]repository.VendaDetalheRow
	porDeposito map[string][]repository.EstoqueDepositoRow
}

func (r *fakeRelatorioRepo) VendasPorProduto(produtoID string) ([]repository.VendaDetalheRow, error) {
	return r.porProduto[produtoID], nil
}
func (r *fakeRelatorioRepo) VendasPorCliente(clienteID string) ([]repository.VendaDetalheRow, error) {
	return r.porCliente[clienteID], nil
}
func (r *fakeRelatorioRepo) EstoquePorDeposito(depositoID string) ([]repository.EstoqueDepositoRow, error) {
	return r.porDeposito[depositoID], nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestVendasPorProdutoSumarizadas_TotalCobrado(t *testing.T) {
	// 2 × 5.00 + 3 × 4.00 = 22.00
	repo := &fakeRelatorioRepo{porProduto: map[string][]repository.VendaDetalheRow{
		"p1": {
			{VendaID: "v1", ProdutoID: "p1", ProdutoNome: "Caneta", ClienteNome: "Maria", DataVenda: "2024-03-01", Quantidade: 2, PrecoUnitario: dec("5.00")},
			{VendaID: "v2", ProdutoID: "p1", ProdutoNome: "Caneta", ClienteNome: "João", DataVenda: "2024-03-02", Quantidade: 3, PrecoUnitario: dec("4.00")},
		},
	}}
	uc := relatorio.NewRelatorioUseCase(repo)

	out, err := uc.VendasPorProdutoSumarizadas(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", out.ProdutoID)
	assert.Equal(t, "Caneta", out.ProdutoNome)
	assert.Equal(t, 5, out.TotalQuantidadeVendida)
	assert.True(t, dec("22.00").Equal(out.TotalPrecoCobrado),
		"total cobrado deve ser a soma de preço × quantidade por venda, era %s", out.TotalPrecoCobrado)
}

func TestVendasPorProdutoSumarizadas_SemVendas(t *testing.T) {
	uc := relatorio.NewRelatorioUseCase(&fakeRelatorioRepo{})

	out, err := uc.VendasPorProdutoSumarizadas(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalQuantidadeVendida)
	assert.True(t, decimal.Zero.Equal(out.TotalPrecoCobrado))
}

func TestVendasPorProdutoDetalhadas(t *testing.T) {
	repo := &fakeRelatorioRepo{porProduto: map[string][]repository.VendaDetalheRow{
		"p1": {
			{VendaID: "v1", ProdutoID: "p1", ProdutoNome: "Caneta", ClienteNome: "Maria", DataVenda: "2024-03-01", Quantidade: 2, PrecoUnitario: dec("5.00")},
		},
	}}
	uc := relatorio.NewRelatorioUseCase(repo)

	out, err := uc.VendasPorProdutoDetalhadas(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "v1", out[0].VendaID)
	assert.Equal(t, "Maria", out[0].ClienteNome)
	assert.Equal(t, 2, out[0].Quantidade)
}

func TestVendasPorClienteSumarizadas_AgrupaPorProduto(t *testing.T) {
	repo := &fakeRelatorioRepo{porCliente: map[string][]repository.VendaDetalheRow{
		"c1": {
			{VendaID: "v1", ProdutoID: "p1", ProdutoNome: "Caneta", ClienteNome: "Maria", Quantidade: 2, PrecoUnitario: dec("5.00")},
			{VendaID: "v2", ProdutoID: "p2", ProdutoNome: "Caderno", ClienteNome: "Maria", Quantidade: 1, PrecoUnitario: dec("12.00")},
			{VendaID: "v3", ProdutoID: "p1", ProdutoNome: "Caneta", ClienteNome: "Maria", Quantidade: 4, PrecoUnitario: dec("5.50")},
		},
	}}
	uc := relatorio.NewRelatorioUseCase(repo)

	out, err := uc.VendasPorClienteSumarizadas(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, out, 2, "um sumário por produto comprado")

	// Ordem de primeira aparição preservada.
	assert.Equal(t, "p1", out[0].ProdutoID)
	assert.Equal(t, 6, out[0].TotalQuantidadeVendida)
	assert.True(t, dec("32.00").Equal(out[0].TotalPrecoCobrado)) // 2×5.00 + 4×5.50

	assert.Equal(t, "p2", out[1].ProdutoID)
	assert.Equal(t, 1, out[1].TotalQuantidadeVendida)
	assert.True(t, dec("12.00").Equal(out[1].TotalPrecoCobrado))
}

func TestEstoquePorDeposito(t *testing.T) {
	repo := &fakeRelatorioRepo{porDeposito: map[string][]repository.EstoqueDepositoRow{
		"d1": {
			{ProdutoNome: "Caneta", Quantidade: 10},
			{ProdutoNome: "Caderno", Quantidade: 3},
		},
	}}
	uc := relatorio.NewRelatorioUseCase(repo)

	out, err := uc.EstoquePorDeposito(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Caneta", out[0].ProdutoNome)
	assert.Equal(t, 10, out[0].Quantidade)
}

func TestEstoquePorDeposito_Vazio(t *testing.T) {
	uc := relatorio.NewRelatorioUseCase(&fakeRelatorioRepo{})

	out, err := uc.EstoquePorDeposito(context.Background(), "d1")
	require.NoError(t, err)
	assert.Empty(t, out)
}
