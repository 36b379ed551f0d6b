package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/application/usecase"
	"github.com/loja-backend/loja-api/internal/domain/entity"
)

type fakeProdutoRepo struct {
	porID map[string]*entity.Produto
	ordem []string
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{porID: make(map[string]*entity.Produto)}
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error {
	cp := *p
	r.porID[p.ID] = &cp
	r.ordem = append(r.ordem, p.ID)
	return nil
}
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	return r.GetByID(id)
}
func (r *fakeProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(r.ordem))
	for _, id := range r.ordem {
		cp := *r.porID[id]
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeProdutoRepo) Update(p *entity.Produto) error {
	existing, ok := r.porID[p.ID]
	if !ok {
		return nil
	}
	// Espelha o adapter real: o update de CRUD não toca o saldo.
	saldo := existing.Quantidade
	cp := *p
	cp.Quantidade = saldo
	r.porID[p.ID] = &cp
	return nil
}
func (r *fakeProdutoRepo) UpdateQuantidade(id string, quantidade int) error {
	if p, ok := r.porID[id]; ok {
		p.Quantidade = quantidade
	}
	return nil
}
func (r *fakeProdutoRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

func criaProduto(t *testing.T, uc *usecase.ProdutoUseCase, nome string, quantidade int) *dto.ProdutoResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProdutoRequest{
		Nome:       nome,
		Preco:      decimal.RequireFromString("5.00"),
		Quantidade: quantidade,
		DepositoID: "d1",
	})
	require.NoError(t, err)
	return out
}

func TestProdutoCreate_ComEstoqueInicial(t *testing.T) {
	repo := newFakeProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo)

	out := criaProduto(t, uc, "Caneta Azul", 10)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 10, out.Quantidade)
	assert.Equal(t, "d1", out.DepositoID)
}

func TestProdutoUpdate_NaoAlteraQuantidade(t *testing.T) {
	repo := newFakeProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo)

	created := criaProduto(t, uc, "Caneta Azul", 10)

	out, err := uc.Update(created.ID, dto.UpdateProdutoRequest{
		Nome:       "Caneta Azul Premium",
		Preco:      decimal.RequireFromString("7.50"),
		DepositoID: "d2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Caneta Azul Premium", out.Nome)
	assert.Equal(t, 10, out.Quantidade, "o update de CRUD preserva o saldo em estoque")
	assert.True(t, decimal.RequireFromString("7.50").Equal(out.Preco))
}

func TestProdutoUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())

	out, err := uc.Update("nao-existe", dto.UpdateProdutoRequest{Nome: "X", DepositoID: "d1"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProdutoSearch_IgnoraAcentosECaixa(t *testing.T) {
	repo := newFakeProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo)

	criaProduto(t, uc, "Cartão Presente", 5)
	criaProduto(t, uc, "Caneta Azul", 10)
	criaProduto(t, uc, "CARTAO POSTAL", 3)

	out, err := uc.Search("cartao", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2, "a busca deve casar com e sem acento")

	nomes := []string{out.Items[0].Nome, out.Items[1].Nome}
	assert.Contains(t, nomes, "Cartão Presente")
	assert.Contains(t, nomes, "CARTAO POSTAL")
}

func TestProdutoSearch_TermoAcentuado(t *testing.T) {
	repo := newFakeProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo)

	criaProduto(t, uc, "Cafe Torrado", 5)

	out, err := uc.Search("CAFÉ", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Cafe Torrado", out.Items[0].Nome)
}
