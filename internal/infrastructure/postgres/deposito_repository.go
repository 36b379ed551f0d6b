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

var _ repository.DepositoRepository = (*DepositoRepo)(nil)

// DepositoRepo implementação de DepositoRepository sobre PostgreSQL.
type DepositoRepo struct {
	q Querier
}

// NewDepositoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDepositoRepository(q Querier) *DepositoRepo {
	return &DepositoRepo{q: q}
}

// Create persiste um novo depósito.
func (r *DepositoRepo) Create(d *entity.Deposito) error {
	query := `
		INSERT INTO depositos (id, nome, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.Nome, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert deposito: %w", err)
	}
	return nil
}

// GetByID obtém um depósito por ID; (nil, nil) quando não existe.
func (r *DepositoRepo) GetByID(id string) (*entity.Deposito, error) {
	query := `
		SELECT id, nome, created_at, updated_at
		FROM depositos WHERE id = $1`
	var d entity.Deposito
	err := r.q.QueryRow(context.Background(), query, id).Scan(&d.ID, &d.Nome, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deposito: %w", err)
	}
	return &d, nil
}

// List lista depósitos com paginação.
func (r *DepositoRepo) List(limit, offset int) ([]*entity.Deposito, error) {
	query := `
		SELECT id, nome, created_at, updated_at
		FROM depositos ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list depositos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deposito
	for rows.Next() {
		var d entity.Deposito
		if err := rows.Scan(&d.ID, &d.Nome, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan deposito: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update sobrescreve o nome de um depósito.
func (r *DepositoRepo) Update(d *entity.Deposito) error {
	query := `UPDATE depositos SET nome = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.Nome, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update deposito: %w", err)
	}
	return nil
}

// Delete remove um depósito por ID.
func (r *DepositoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM depositos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deposito: %w", err)
	}
	return nil
}
