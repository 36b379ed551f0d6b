package entity

import "time"

// Fornecedor representa um fornecedor cadastrado (CRUD simples, sem
// acoplamento com vendas ou estoque).
type Fornecedor struct {
	ID        string
	Cnpj      string
	Nome      string
	Endereco  string
	Email     string
	Telefone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
