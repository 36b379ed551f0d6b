package repository

import "github.com/loja-backend/loja-api/internal/domain/entity"

// DepositoRepository define a porta de persistência para Deposito.
type DepositoRepository interface {
	Create(deposito *entity.Deposito) error
	GetByID(id string) (*entity.Deposito, error)
	List(limit, offset int) ([]*entity.Deposito, error)
	Update(deposito *entity.Deposito) error
	Delete(id string) error
}
