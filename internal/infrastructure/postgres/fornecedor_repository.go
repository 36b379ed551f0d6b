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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um novo fornecedor.
func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (id, cnpj, nome, endereco, email, telefone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Cnpj, f.Nome, f.Endereco, f.Email, f.Telefone, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID; (nil, nil) quando não existe.
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `
		SELECT id, cnpj, nome, endereco, email, telefone, created_at, updated_at
		FROM fornecedores WHERE id = $1`
	var f entity.Fornecedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Cnpj, &f.Nome, &f.Endereco, &f.Email, &f.Telefone, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// List lista fornecedores com paginação.
func (r *FornecedorRepo) List(limit, offset int) ([]*entity.Fornecedor, error) {
	query := `
		SELECT id, cnpj, nome, endereco, email, telefone, created_at, updated_at
		FROM fornecedores ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Cnpj, &f.Nome, &f.Endereco, &f.Email, &f.Telefone, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update sobrescreve os campos mutáveis de um fornecedor.
func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores SET cnpj = $2, nome = $3, endereco = $4, email = $5, telefone = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Cnpj, f.Nome, f.Endereco, f.Email, f.Telefone, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

// Delete remove um fornecedor por ID.
func (r *FornecedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	return nil
}
