package dto

import "time"

// CreateDepositoRequest entrada para criar um depósito.
type CreateDepositoRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=200"`
}

// UpdateDepositoRequest entrada para atualizar um depósito.
type UpdateDepositoRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=200"`
}

// DepositoResponse saída de um depósito.
type DepositoResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DepositoListResponse lista paginada de depósitos.
type DepositoListResponse struct {
	Items []DepositoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
