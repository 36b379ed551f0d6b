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

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação de VendaRepository sobre PostgreSQL
// (usável com pool ou tx).
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// vendaSelect resolve Cliente, Produto e Produto.Deposito em um único join.
const vendaSelect = `
	SELECT v.id, v.data_venda, v.numero_nota_fiscal, v.cliente_id, v.produto_id, v.deposito_id,
	       v.quantidade, v.preco_unitario, v.created_at, v.updated_at,
	       c.id, c.nome, c.cpf, c.email, c.created_at, c.updated_at,
	       p.id, p.nome, p.preco, p.quantidade, p.deposito_id, p.created_at, p.updated_at,
	       d.id, d.nome, d.created_at, d.updated_at
	FROM vendas v
	JOIN clientes  c ON c.id = v.cliente_id
	JOIN produtos  p ON p.id = v.produto_id
	JOIN depositos d ON d.id = p.deposito_id`

func scanVenda(row pgx.Row) (*entity.Venda, error) {
	var v entity.Venda
	var c entity.Cliente
	var p entity.Produto
	var d entity.Deposito
	err := row.Scan(
		&v.ID, &v.DataVenda, &v.NumeroNotaFiscal, &v.ClienteID, &v.ProdutoID, &v.DepositoID,
		&v.Quantidade, &v.PrecoUnitario, &v.CreatedAt, &v.UpdatedAt,
		&c.ID, &c.Nome, &c.Cpf, &c.Email, &c.CreatedAt, &c.UpdatedAt,
		&p.ID, &p.Nome, &p.Preco, &p.Quantidade, &p.DepositoID, &p.CreatedAt, &p.UpdatedAt,
		&d.ID, &d.Nome, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Deposito = &d
	v.Cliente = &c
	v.Produto = &p
	return &v, nil
}

// Create persiste uma nova venda.
func (r *VendaRepo) Create(venda *entity.Venda) error {
	query := `
		INSERT INTO vendas (id, data_venda, numero_nota_fiscal, cliente_id, produto_id, deposito_id,
		                    quantidade, preco_unitario, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		venda.ID, venda.DataVenda, venda.NumeroNotaFiscal, venda.ClienteID, venda.ProdutoID,
		venda.DepositoID, venda.Quantidade, venda.PrecoUnitario, venda.CreatedAt, venda.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // referência inexistente (ex.: deposito_id)
		}
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// GetByID obtém uma venda com as associações resolvidas; (nil, nil) quando não existe.
func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	v, err := scanVenda(r.q.QueryRow(context.Background(), vendaSelect+` WHERE v.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return v, nil
}

// List lista vendas com paginação, associações resolvidas.
func (r *VendaRepo) List(limit, offset int) ([]*entity.Venda, error) {
	rows, err := r.q.Query(context.Background(),
		vendaSelect+` ORDER BY v.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venda
	for rows.Next() {
		v, err := scanVenda(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Update sobrescreve todos os campos mutáveis da venda.
// Não mexe no estoque; a baixa/estorno acontecem só em Create/Delete do caso de uso.
func (r *VendaRepo) Update(venda *entity.Venda) error {
	query := `
		UPDATE vendas SET data_venda = $2, numero_nota_fiscal = $3, cliente_id = $4,
		                  produto_id = $5, deposito_id = $6, quantidade = $7,
		                  preco_unitario = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		venda.ID, venda.DataVenda, venda.NumeroNotaFiscal, venda.ClienteID, venda.ProdutoID,
		venda.DepositoID, venda.Quantidade, venda.PrecoUnitario, venda.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update venda: %w", err)
	}
	return nil
}

// Delete remove uma venda por ID.
func (r *VendaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vendas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venda: %w", err)
	}
	return nil
}
