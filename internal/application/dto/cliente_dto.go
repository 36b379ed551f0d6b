package dto

import "time"

// CreateClienteRequest entrada para criar um cliente.
type CreateClienteRequest struct {
	Nome  string `json:"nome" validate:"required,min=1,max=200"`
	Cpf   string `json:"cpf" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateClienteRequest entrada para atualizar um cliente (sobrescrita integral).
type UpdateClienteRequest struct {
	Nome  string `json:"nome" validate:"required,min=1,max=200"`
	Cpf   string `json:"cpf" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Cpf       string    `json:"cpf"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClienteListResponse lista paginada de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
