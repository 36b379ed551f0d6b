package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/internal/domain/repository"
	"github.com/loja-backend/loja-api/pkg/texto"
)

// ProdutoUseCase casos de uso CRUD para produtos. O saldo em estoque só
// muda pelo ciclo de vida das vendas; Update nunca toca Quantidade.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cria um produto com o estoque inicial informado.
func (uc *ProdutoUseCase) Create(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	now := time.Now()
	produto := &entity.Produto{
		ID:         uuid.New().String(),
		Nome:       in.Nome,
		Preco:      in.Preco,
		Quantidade: in.Quantidade,
		DepositoID: in.DepositoID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// GetByID obtém um produto por ID; nil quando não existe.
func (uc *ProdutoUseCase) GetByID(id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	return toProdutoResponse(produto), nil
}

// Update sobrescreve nome, preço e depósito. Quantidade permanece a do
// registro corrente.
func (uc *ProdutoUseCase) Update(id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	produto.Nome = in.Nome
	produto.Preco = in.Preco
	produto.DepositoID = in.DepositoID
	produto.UpdatedAt = time.Now()
	if err := uc.repo.Update(produto); err != nil {
		return nil, err
	}
	atualizado, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProdutoResponse(atualizado), nil
}

// List lista produtos com paginação.
func (uc *ProdutoUseCase) List(limit, offset int) (*dto.ProdutoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProdutoResponse(p))
	}
	return &dto.ProdutoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search filtra produtos por nome, ignorando acentos e caixa. A comparação
// roda sobre a página carregada do repositório.
func (uc *ProdutoUseCase) Search(nome string, limit, offset int) (*dto.ProdutoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	alvo := texto.Normalizar(nome)
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		if strings.Contains(texto.Normalizar(p.Nome), alvo) {
			items = append(items, *toProdutoResponse(p))
		}
	}
	return &dto.ProdutoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um produto por ID.
func (uc *ProdutoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:         p.ID,
		Nome:       p.Nome,
		Preco:      p.Preco,
		Quantidade: p.Quantidade,
		DepositoID: p.DepositoID,
		Deposito:   toDepositoResponse(p.Deposito),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
