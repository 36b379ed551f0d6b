package entity

import "time"

// Cliente representa um cliente da loja. Imutável do ponto de vista do
// livro de estoque; é apenas referenciado pela Venda.
type Cliente struct {
	ID        string
	Nome      string
	Cpf       string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
