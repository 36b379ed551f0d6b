package dto

import "time"

// CreateFornecedorRequest entrada para criar um fornecedor.
type CreateFornecedorRequest struct {
	Cnpj     string `json:"cnpj" validate:"required"`
	Nome     string `json:"nome" validate:"required,min=1,max=200"`
	Endereco string `json:"endereco" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefone string `json:"telefone" validate:"required"`
}

// UpdateFornecedorRequest entrada para atualizar um fornecedor (sobrescrita integral).
type UpdateFornecedorRequest struct {
	Cnpj     string `json:"cnpj" validate:"required"`
	Nome     string `json:"nome" validate:"required,min=1,max=200"`
	Endereco string `json:"endereco" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefone string `json:"telefone" validate:"required"`
}

// FornecedorResponse saída de um fornecedor.
type FornecedorResponse struct {
	ID        string    `json:"id"`
	Cnpj      string    `json:"cnpj"`
	Nome      string    `json:"nome"`
	Endereco  string    `json:"endereco"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FornecedorListResponse lista paginada de fornecedores.
type FornecedorListResponse struct {
	Items []FornecedorResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
