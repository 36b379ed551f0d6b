package repository

import "github.com/loja-backend/loja-api/internal/domain/entity"

// ProdutoRepository define a porta de persistência para Produto.
//
// GetByIDForUpdate carrega o produto (com o depósito resolvido) bloqueando a
// linha até o fim da transação corrente (SELECT ... FOR UPDATE). É a base da
// verificação de suficiência do livro de estoque: só faz sentido dentro de
// um TxRunner.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	GetByIDForUpdate(id string) (*entity.Produto, error)
	List(limit, offset int) ([]*entity.Produto, error)
	Update(produto *entity.Produto) error
	UpdateQuantidade(id string, quantidade int) error
	Delete(id string) error
}
