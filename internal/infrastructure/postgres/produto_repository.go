package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/loja-backend/loja-api/internal/domain"
	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoSelect = `
	SELECT p.id, p.nome, p.preco, p.quantidade, p.deposito_id, p.created_at, p.updated_at,
	       d.id, d.nome, d.created_at, d.updated_at
	FROM produtos p
	JOIN depositos d ON d.id = p.deposito_id`

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var d entity.Deposito
	err := row.Scan(
		&p.ID, &p.Nome, &p.Preco, &p.Quantidade, &p.DepositoID, &p.CreatedAt, &p.UpdatedAt,
		&d.ID, &d.Nome, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Deposito = &d
	return &p, nil
}

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, preco, quantidade, deposito_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Preco, produto.Quantidade, produto.DepositoID,
		produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // deposito_id inexistente
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID com o depósito resolvido; (nil, nil) quando não existe.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, err := scanProduto(r.q.QueryRow(context.Background(), produtoSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtém o produto bloqueando a linha de produtos até o fim
// da transação (SELECT ... FOR UPDATE OF p). Base da verificação de
// suficiência: duas vendas concorrentes do mesmo produto serializam aqui.
func (r *ProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	p, err := scanProduto(r.q.QueryRow(context.Background(),
		produtoSelect+` WHERE p.id = $1 FOR UPDATE OF p`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto for update: %w", err)
	}
	return p, nil
}

// List lista produtos com paginação, depósito resolvido.
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(),
		produtoSelect+` ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update sobrescreve nome, preço e depósito. Não toca em quantidade:
// o saldo só muda via UpdateQuantidade, dentro do ciclo de vida da venda.
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, preco = $3, deposito_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Preco, produto.DepositoID, produto.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateQuantidade grava o novo saldo em estoque do produto.
func (r *ProdutoRepo) UpdateQuantidade(id string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade produto: %w", err)
	}
	return nil
}

// Delete remove um produto por ID.
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
