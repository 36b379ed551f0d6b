package venda

import (
	"context"

	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa tx. Garante a atomicidade do livro de estoque:
// a verificação de suficiência e a baixa (ou o estorno e a remoção) são
// confirmados juntos ou desfeitos juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		vendaRepo repository.VendaRepository,
		produtoRepo repository.ProdutoRepository,
		clienteRepo repository.ClienteRepository,
	) error) error
}

// NotaFiscalBuilder gera o XML simplificado da nota fiscal de uma venda.
type NotaFiscalBuilder interface {
	Build(venda *entity.Venda) ([]byte, error)
}

// ReciboPDFGenerator gera o recibo em PDF de uma venda.
type ReciboPDFGenerator interface {
	GenerateReciboPDF(ctx context.Context, venda *entity.Venda) ([]byte, error)
}
