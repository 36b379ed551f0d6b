package dto

import "github.com/shopspring/decimal"

// VendaDetalheResponse linha detalhada dos relatórios de vendas
// (por produto ou por cliente).
type VendaDetalheResponse struct {
	ProdutoNome   string          `json:"produto_nome"`
	DataVenda     string          `json:"data_venda"`
	VendaID       string          `json:"venda_id"`
	ClienteNome   string          `json:"cliente_nome"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// VendaSumarioResponse agregado de vendas de um produto:
// TotalPrecoCobrado = Σ(preco_unitario × quantidade).
type VendaSumarioResponse struct {
	ProdutoID              string          `json:"produto_id"`
	ProdutoNome            string          `json:"produto_nome"`
	TotalQuantidadeVendida int             `json:"total_quantidade_vendida"`
	TotalPrecoCobrado      decimal.Decimal `json:"total_preco_cobrado"`
}

// EstoqueDepositoResponse linha do relatório de estoque por depósito.
type EstoqueDepositoResponse struct {
	ProdutoNome string `json:"produto_nome"`
	Quantidade  int    `json:"quantidade"`
}
