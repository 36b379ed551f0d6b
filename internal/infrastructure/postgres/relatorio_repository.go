package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas de leitura para os relatórios de vendas e estoque.
// Sempre roda fora de transação, direto no pool.
type RelatorioRepo struct {
	pool *pgxpool.Pool
}

// NewRelatorioRepository constrói o adaptador de relatórios.
func NewRelatorioRepository(pool *pgxpool.Pool) *RelatorioRepo {
	return &RelatorioRepo{pool: pool}
}

const vendaDetalheSelect = `
	SELECT v.id, v.produto_id, p.nome, c.nome, v.data_venda, v.quantidade, v.preco_unitario
	FROM vendas v
	JOIN produtos p ON p.id = v.produto_id
	JOIN clientes c ON c.id = v.cliente_id`

func (r *RelatorioRepo) queryDetalhes(query, arg string) ([]repository.VendaDetalheRow, error) {
	rows, err := r.pool.Query(context.Background(), query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []repository.VendaDetalheRow
	for rows.Next() {
		var row repository.VendaDetalheRow
		if err := rows.Scan(
			&row.VendaID, &row.ProdutoID, &row.ProdutoNome, &row.ClienteNome,
			&row.DataVenda, &row.Quantidade, &row.PrecoUnitario,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// VendasPorProduto devolve uma linha por venda do produto informado.
func (r *RelatorioRepo) VendasPorProduto(produtoID string) ([]repository.VendaDetalheRow, error) {
	out, err := r.queryDetalhes(vendaDetalheSelect+` WHERE v.produto_id = $1 ORDER BY v.created_at`, produtoID)
	if err != nil {
		return nil, fmt.Errorf("relatorio.VendasPorProduto: %w", err)
	}
	return out, nil
}

// VendasPorCliente devolve uma linha por venda do cliente informado.
func (r *RelatorioRepo) VendasPorCliente(clienteID string) ([]repository.VendaDetalheRow, error) {
	out, err := r.queryDetalhes(vendaDetalheSelect+` WHERE v.cliente_id = $1 ORDER BY v.created_at`, clienteID)
	if err != nil {
		return nil, fmt.Errorf("relatorio.VendasPorCliente: %w", err)
	}
	return out, nil
}

// EstoquePorDeposito lista nome e saldo de cada produto do depósito.
func (r *RelatorioRepo) EstoquePorDeposito(depositoID string) ([]repository.EstoqueDepositoRow, error) {
	const query = `
		SELECT nome, quantidade
		FROM produtos WHERE deposito_id = $1
		ORDER BY nome`
	rows, err := r.pool.Query(context.Background(), query, depositoID)
	if err != nil {
		return nil, fmt.Errorf("relatorio.EstoquePorDeposito: %w", err)
	}
	defer rows.Close()
	var out []repository.EstoqueDepositoRow
	for rows.Next() {
		var row repository.EstoqueDepositoRow
		if err := rows.Scan(&row.ProdutoNome, &row.Quantidade); err != nil {
			return nil, fmt.Errorf("relatorio.EstoquePorDeposito scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
