package repository

import "github.com/loja-backend/loja-api/internal/domain/entity"

// VendaRepository define a porta de persistência para Venda.
// Os gets resolvem Cliente, Produto e Produto.Deposito via join; o chamador
// recebe as associações completas, sem nova ida ao banco.
type VendaRepository interface {
	Create(venda *entity.Venda) error
	GetByID(id string) (*entity.Venda, error)
	List(limit, offset int) ([]*entity.Venda, error)
	Update(venda *entity.Venda) error
	Delete(id string) error
}
