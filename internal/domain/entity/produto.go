package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item em estoque. Quantidade é mutada exclusivamente
// pelo ciclo de vida da Venda (baixa na criação, estorno na exclusão); o
// update de CRUD não toca nesse campo.
type Produto struct {
	ID         string
	Nome       string
	Preco      decimal.Decimal // preço de venda corrente (a venda grava seu próprio snapshot)
	Quantidade int             // saldo em estoque, nunca negativo
	DepositoID string
	Deposito   *Deposito // resolvido via join quando carregado pelo repositório
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
