package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/loja-backend/loja-api/internal/application/venda"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// Garante que TxRunner implementa venda.TxRunner.
var _ venda.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. O rollback no defer cobre qualquer caminho de saída;
// depois de um Commit bem-sucedido ele vira no-op.
func (r *TxRunner) Run(ctx context.Context, fn func(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	vendaRepo := NewVendaRepository(tx)
	produtoRepo := NewProdutoRepository(tx)
	clienteRepo := NewClienteRepository(tx)

	if err := fn(vendaRepo, produtoRepo, clienteRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
