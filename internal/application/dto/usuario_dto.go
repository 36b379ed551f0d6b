package dto

import "time"

// CreateUsuarioRequest entrada para criar um usuário via CRUD.
type CreateUsuarioRequest struct {
	Nome  string `json:"nome" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

// UpdateUsuarioRequest entrada para atualizar um usuário (sem troca de senha).
type UpdateUsuarioRequest struct {
	Nome  string `json:"nome" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// UsuarioResponse saída de um usuário (nunca expõe o hash da senha).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuarioListResponse lista paginada de usuários.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
