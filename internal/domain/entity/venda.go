package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda registra a saída de uma quantidade de um produto para um cliente.
//
// PrecoUnitario é um snapshot do preço cobrado no momento da venda,
// independente do preço corrente do produto. DataVenda é mantida como texto,
// no formato em que o chamador a enviou.
//
// O DepositoID é gravado como informado e não é conferido contra o depósito
// do próprio produto.
type Venda struct {
	ID               string
	DataVenda        string
	NumeroNotaFiscal string
	ClienteID        string
	Cliente          *Cliente
	ProdutoID        string
	Produto          *Produto
	DepositoID       string
	Quantidade       int
	PrecoUnitario    decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
