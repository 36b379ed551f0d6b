package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para criar um produto.
// Quantidade aqui é o estoque inicial; depois da criação o campo só muda
// pelo ciclo de vida das vendas.
type CreateProdutoRequest struct {
	Nome       string          `json:"nome" validate:"required,min=1,max=200"`
	Preco      decimal.Decimal `json:"preco"`
	Quantidade int             `json:"quantidade" validate:"min=0"`
	DepositoID string          `json:"deposito_id" validate:"required"`
}

// UpdateProdutoRequest entrada para atualizar um produto.
// Não carrega Quantidade: o saldo em estoque pertence ao livro de vendas.
type UpdateProdutoRequest struct {
	Nome       string          `json:"nome" validate:"required,min=1,max=200"`
	Preco      decimal.Decimal `json:"preco"`
	DepositoID string          `json:"deposito_id" validate:"required"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID         string            `json:"id"`
	Nome       string            `json:"nome"`
	Preco      decimal.Decimal   `json:"preco"`
	Quantidade int               `json:"quantidade"`
	DepositoID string            `json:"deposito_id"`
	Deposito   *DepositoResponse `json:"deposito,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ProdutoListResponse lista paginada de produtos.
type ProdutoListResponse struct {
	Items []ProdutoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
