package repository

import "github.com/loja-backend/loja-api/internal/domain/entity"

// ClienteRepository define a porta de persistência para Cliente.
// GetByID devolve (nil, nil) quando o cliente não existe.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
