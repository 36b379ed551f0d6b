// Package relatorio contém os casos de uso das consultas agregadas de
// vendas e estoque. São leituras puras: nenhuma delas tem efeito colateral
// sobre o livro de estoque.
package relatorio

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// RelatorioUseCase monta os relatórios a partir das linhas detalhadas do
// repositório. A sumarização acontece aqui, em projeções nomeadas, com
// aritmética decimal.
type RelatorioUseCase struct {
	relatorioRepo repository.RelatorioRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(relatorioRepo repository.RelatorioRepository) *RelatorioUseCase {
	return &RelatorioUseCase{relatorioRepo: relatorioRepo}
}

// VendasPorProdutoDetalhadas devolve uma linha por venda do produto.
// Lista vazia quando o produto não tem vendas (o handler traduz para 404).
func (uc *RelatorioUseCase) VendasPorProdutoDetalhadas(ctx context.Context, produtoID string) ([]dto.VendaDetalheResponse, error) {
	rows, err := uc.relatorioRepo.VendasPorProduto(produtoID)
	if err != nil {
		return nil, err
	}
	return toDetalheResponses(rows), nil
}

// VendasPorProdutoSumarizadas agrega todas as vendas do produto:
// total de quantidade e total cobrado = Σ(preco_unitario × quantidade).
// Sem vendas devolve o agregado zerado.
func (uc *RelatorioUseCase) VendasPorProdutoSumarizadas(ctx context.Context, produtoID string) (*dto.VendaSumarioResponse, error) {
	rows, err := uc.relatorioRepo.VendasPorProduto(produtoID)
	if err != nil {
		return nil, err
	}
	sumarios := sumarizarPorProduto(rows)
	if len(sumarios) == 0 {
		return &dto.VendaSumarioResponse{TotalPrecoCobrado: decimal.Zero}, nil
	}
	return &sumarios[0], nil
}

// VendasPorClienteDetalhadas devolve uma linha por venda do cliente.
func (uc *RelatorioUseCase) VendasPorClienteDetalhadas(ctx context.Context, clienteID string) ([]dto.VendaDetalheResponse, error) {
	rows, err := uc.relatorioRepo.VendasPorCliente(clienteID)
	if err != nil {
		return nil, err
	}
	return toDetalheResponses(rows), nil
}

// VendasPorClienteSumarizadas agrega as vendas do cliente agrupadas por
// produto (um sumário por produto comprado).
func (uc *RelatorioUseCase) VendasPorClienteSumarizadas(ctx context.Context, clienteID string) ([]dto.VendaSumarioResponse, error) {
	rows, err := uc.relatorioRepo.VendasPorCliente(clienteID)
	if err != nil {
		return nil, err
	}
	return sumarizarPorProduto(rows), nil
}

// EstoquePorDeposito lista nome e saldo dos produtos do depósito.
func (uc *RelatorioUseCase) EstoquePorDeposito(ctx context.Context, depositoID string) ([]dto.EstoqueDepositoResponse, error) {
	rows, err := uc.relatorioRepo.EstoquePorDeposito(depositoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EstoqueDepositoResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.EstoqueDepositoResponse{
			ProdutoNome: row.ProdutoNome,
			Quantidade:  row.Quantidade,
		})
	}
	return out, nil
}

func toDetalheResponses(rows []repository.VendaDetalheRow) []dto.VendaDetalheResponse {
	out := make([]dto.VendaDetalheResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.VendaDetalheResponse{
			ProdutoNome:   row.ProdutoNome,
			DataVenda:     row.DataVenda,
			VendaID:       row.VendaID,
			ClienteNome:   row.ClienteNome,
			Quantidade:    row.Quantidade,
			PrecoUnitario: row.PrecoUnitario,
		})
	}
	return out
}

// sumarizarPorProduto agrupa linhas detalhadas por produto, preservando a
// ordem de primeira aparição.
func sumarizarPorProduto(rows []repository.VendaDetalheRow) []dto.VendaSumarioResponse {
	var ordem []string
	porProduto := make(map[string]*dto.VendaSumarioResponse)
	for _, row := range rows {
		s, ok := porProduto[row.ProdutoID]
		if !ok {
			s = &dto.VendaSumarioResponse{
				ProdutoID:         row.ProdutoID,
				ProdutoNome:       row.ProdutoNome,
				TotalPrecoCobrado: decimal.Zero,
			}
			porProduto[row.ProdutoID] = s
			ordem = append(ordem, row.ProdutoID)
		}
		s.TotalQuantidadeVendida += row.Quantidade
		s.TotalPrecoCobrado = s.TotalPrecoCobrado.Add(
			row.PrecoUnitario.Mul(decimal.NewFromInt(int64(row.Quantidade))))
	}
	out := make([]dto.VendaSumarioResponse, 0, len(ordem))
	for _, id := range ordem {
		out = append(out, *porProduto[id])
	}
	return out
}
