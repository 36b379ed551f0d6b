package entity

import "time"

// Deposito representa um depósito físico que armazena zero ou mais produtos.
type Deposito struct {
	ID        string
	Nome      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
