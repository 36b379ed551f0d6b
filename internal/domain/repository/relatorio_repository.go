package repository

import "github.com/shopspring/decimal"

// VendaDetalheRow é uma linha detalhada de venda para os relatórios
// (projeção nomeada, uma por venda, com os joins já resolvidos).
type VendaDetalheRow struct {
	VendaID       string
	ProdutoID     string
	ProdutoNome   string
	ClienteNome   string
	DataVenda     string
	Quantidade    int
	PrecoUnitario decimal.Decimal
}

// EstoqueDepositoRow é uma linha do relatório de estoque por depósito.
type EstoqueDepositoRow struct {
	ProdutoNome string
	Quantidade  int
}

// RelatorioRepository agrupa as consultas de leitura dos relatórios.
// Nenhuma delas tem efeito colateral; a sumarização acontece no caso de uso.
type RelatorioRepository interface {
	VendasPorProduto(produtoID string) ([]VendaDetalheRow, error)
	VendasPorCliente(clienteID string) ([]VendaDetalheRow, error)
	EstoquePorDeposito(depositoID string) ([]EstoqueDepositoRow, error)
}
