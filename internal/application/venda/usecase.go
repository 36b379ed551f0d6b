package venda

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/domain"
	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// VendaUseCase implementa o ciclo de vida da venda e seu acoplamento com o
// estoque do produto: a criação valida as referências e dá baixa na
// quantidade; a exclusão estorna. As duas operações rodam dentro de uma
// única transação, com a linha do produto bloqueada (SELECT ... FOR UPDATE),
// para que duas vendas concorrentes não vendam o mesmo saldo duas vezes.
type VendaUseCase struct {
	txRunner  TxRunner
	vendaRepo repository.VendaRepository
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(txRunner TxRunner, vendaRepo repository.VendaRepository) *VendaUseCase {
	return &VendaUseCase{txRunner: txRunner, vendaRepo: vendaRepo}
}

// Create registra uma venda. Dentro da transação, na ordem:
//  1. o cliente precisa existir            -> domain.ErrClienteNaoEncontrado
//  2. o produto precisa existir (com lock) -> domain.ErrProdutoNaoEncontrado
//  3. o saldo precisa cobrir a quantidade  -> domain.ErrQuantidadeInsuficiente
//
// Efeitos (atômicos): baixa de Quantidade no produto e insert da venda.
// A resposta sai com Cliente, Produto e Depósito resolvidos.
//
// O deposito_id informado é gravado como veio; não é conferido contra o
// depósito do próprio produto.
func (uc *VendaUseCase) Create(ctx context.Context, in dto.CreateVendaRequest) (*dto.VendaResponse, error) {
	if in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	novaVenda := &entity.Venda{
		ID:               uuid.New().String(),
		DataVenda:        in.DataVenda,
		NumeroNotaFiscal: in.NumeroNotaFiscal,
		ClienteID:        in.ClienteID,
		ProdutoID:        in.ProdutoID,
		DepositoID:       in.DepositoID,
		Quantidade:       in.Quantidade,
		PrecoUnitario:    in.PrecoUnitario,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := uc.txRunner.Run(ctx, func(
		vendaRepo repository.VendaRepository,
		produtoRepo repository.ProdutoRepository,
		clienteRepo repository.ClienteRepository,
	) error {
		cliente, err := clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return domain.ErrClienteNaoEncontrado
		}

		produto, err := produtoRepo.GetByIDForUpdate(in.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrProdutoNaoEncontrado
		}

		if produto.Quantidade < in.Quantidade {
			return domain.ErrQuantidadeInsuficiente
		}

		if err := produtoRepo.UpdateQuantidade(produto.ID, produto.Quantidade-in.Quantidade); err != nil {
			return err
		}
		if err := vendaRepo.Create(novaVenda); err != nil {
			return err
		}

		// Associações completas na resposta, sem nova ida ao banco.
		produto.Quantidade -= in.Quantidade
		novaVenda.Cliente = cliente
		novaVenda.Produto = produto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVendaResponse(novaVenda), nil
}

// Delete estorna e remove uma venda. Venda inexistente é no-op silencioso.
// Presente: bloqueia a linha do produto, devolve a quantidade vendida ao
// saldo e remove a venda, tudo na mesma transação.
func (uc *VendaUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		vendaRepo repository.VendaRepository,
		produtoRepo repository.ProdutoRepository,
		_ repository.ClienteRepository,
	) error {
		v, err := vendaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}

		produto, err := produtoRepo.GetByIDForUpdate(v.ProdutoID)
		if err != nil {
			return err
		}
		if produto != nil {
			if err := produtoRepo.UpdateQuantidade(produto.ID, produto.Quantidade+v.Quantidade); err != nil {
				return err
			}
		}
		return vendaRepo.Delete(id)
	})
}

// Update sobrescreve os campos mutáveis de uma venda existente.
// Não revalida suficiência nem ajusta o estoque, mesmo quando quantidade ou
// produto mudam; é uma edição administrativa fora do livro de estoque.
func (uc *VendaUseCase) Update(ctx context.Context, id string, in dto.UpdateVendaRequest) (*dto.VendaResponse, error) {
	existing, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	existing.DataVenda = in.DataVenda
	existing.NumeroNotaFiscal = in.NumeroNotaFiscal
	existing.ClienteID = in.ClienteID
	existing.ProdutoID = in.ProdutoID
	existing.DepositoID = in.DepositoID
	existing.Quantidade = in.Quantidade
	existing.PrecoUnitario = in.PrecoUnitario
	existing.UpdatedAt = time.Now()

	if err := uc.vendaRepo.Update(existing); err != nil {
		return nil, err
	}
	updated, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toVendaResponse(updated), nil
}

// GetByID obtém uma venda com as associações resolvidas; nil quando não existe.
func (uc *VendaUseCase) GetByID(ctx context.Context, id string) (*dto.VendaResponse, error) {
	v, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return toVendaResponse(v), nil
}

// List lista vendas com paginação.
func (uc *VendaUseCase) List(ctx context.Context, limit, offset int) (*dto.VendaListResponse, error) {
	list, err := uc.vendaRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendaResponse(v))
	}
	return &dto.VendaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toVendaResponse(v *entity.Venda) *dto.VendaResponse {
	if v == nil {
		return nil
	}
	out := &dto.VendaResponse{
		ID:               v.ID,
		DataVenda:        v.DataVenda,
		NumeroNotaFiscal: v.NumeroNotaFiscal,
		ClienteID:        v.ClienteID,
		ProdutoID:        v.ProdutoID,
		DepositoID:       v.DepositoID,
		Quantidade:       v.Quantidade,
		PrecoUnitario:    v.PrecoUnitario,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.Cliente != nil {
		out.Cliente = &dto.ClienteResponse{
			ID:        v.Cliente.ID,
			Nome:      v.Cliente.Nome,
			Cpf:       v.Cliente.Cpf,
			Email:     v.Cliente.Email,
			CreatedAt: v.Cliente.CreatedAt,
			UpdatedAt: v.Cliente.UpdatedAt,
		}
	}
	if v.Produto != nil {
		out.Produto = &dto.ProdutoResponse{
			ID:         v.Produto.ID,
			Nome:       v.Produto.Nome,
			Preco:      v.Produto.Preco,
			Quantidade: v.Produto.Quantidade,
			DepositoID: v.Produto.DepositoID,
			CreatedAt:  v.Produto.CreatedAt,
			UpdatedAt:  v.Produto.UpdatedAt,
		}
		if v.Produto.Deposito != nil {
			out.Produto.Deposito = &dto.DepositoResponse{
				ID:        v.Produto.Deposito.ID,
				Nome:      v.Produto.Deposito.Nome,
				CreatedAt: v.Produto.Deposito.CreatedAt,
				UpdatedAt: v.Produto.Deposito.UpdatedAt,
			}
		}
	}
	return out
}
