package entity

import "time"

// Usuario representa um usuário do sistema, usado apenas para emissão de
// identidade (login/JWT). Ortogonal ao livro de estoque.
type Usuario struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash string // hash bcrypt, nunca a senha em claro após persistir
	CreatedAt time.Time
	UpdatedAt time.Time
}
