package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVendaRequest entrada para registrar uma venda.
// PrecoUnitario é o preço cobrado nesta venda (snapshot), não precisa
// coincidir com o preço corrente do produto.
type CreateVendaRequest struct {
	DataVenda        string          `json:"data_venda" validate:"required"`
	NumeroNotaFiscal string          `json:"numero_nota_fiscal" validate:"required"`
	ClienteID        string          `json:"cliente_id" validate:"required"`
	ProdutoID        string          `json:"produto_id" validate:"required"`
	DepositoID       string          `json:"deposito_id" validate:"required"`
	Quantidade       int             `json:"quantidade" validate:"required,gt=0"`
	PrecoUnitario    decimal.Decimal `json:"preco_unitario"`
}

// UpdateVendaRequest entrada para a atualização administrativa de uma venda.
// Sobrescreve todos os campos mutáveis; não passa pelo livro de estoque.
type UpdateVendaRequest struct {
	DataVenda        string          `json:"data_venda" validate:"required"`
	NumeroNotaFiscal string          `json:"numero_nota_fiscal" validate:"required"`
	ClienteID        string          `json:"cliente_id" validate:"required"`
	ProdutoID        string          `json:"produto_id" validate:"required"`
	DepositoID       string          `json:"deposito_id" validate:"required"`
	Quantidade       int             `json:"quantidade" validate:"required,gt=0"`
	PrecoUnitario    decimal.Decimal `json:"preco_unitario"`
}

// VendaResponse saída de uma venda com as associações resolvidas.
type VendaResponse struct {
	ID               string           `json:"id"`
	DataVenda        string           `json:"data_venda"`
	NumeroNotaFiscal string           `json:"numero_nota_fiscal"`
	ClienteID        string           `json:"cliente_id"`
	Cliente          *ClienteResponse `json:"cliente,omitempty"`
	ProdutoID        string           `json:"produto_id"`
	Produto          *ProdutoResponse `json:"produto,omitempty"`
	DepositoID       string           `json:"deposito_id"`
	Quantidade       int              `json:"quantidade"`
	PrecoUnitario    decimal.Decimal  `json:"preco_unitario"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// VendaListResponse lista paginada de vendas.
type VendaListResponse struct {
	Items []VendaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
