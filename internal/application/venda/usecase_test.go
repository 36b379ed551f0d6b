package venda_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-backend/loja-api/internal/application/dto"
	appvenda "github.com/loja-backend/loja-api/internal/application/venda"
	"github.com/loja-backend/loja-api/internal/domain"
	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu       sync.Mutex
	clientes map[string]*entity.Cliente
	produtos map[string]*entity.Produto
	vendas   map[string]*entity.Venda
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clientes: make(map[string]*entity.Cliente),
		produtos: make(map[string]*entity.Produto),
		vendas:   make(map[string]*entity.Venda),
	}
}

type fakeClienteRepo struct{ s *fakeStore }

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	cp := *c
	r.s.clientes[c.ID] = &cp
	return nil
}
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) Update(c *entity.Cliente) error                    { return nil }
func (r *fakeClienteRepo) Delete(id string) error                            { return nil }

type fakeProdutoRepo struct{ s *fakeStore }

func (r *fakeProdutoRepo) Create(p *entity.Produto) error {
	cp := *p
	r.s.produtos[p.ID] = &cp
	return nil
}
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := r.s.produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	return r.GetByID(id)
}
func (r *fakeProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) { return nil, nil }
func (r *fakeProdutoRepo) Update(p *entity.Produto) error                    { return nil }
func (r *fakeProdutoRepo) UpdateQuantidade(id string, quantidade int) error {
	p, ok := r.s.produtos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantidade = quantidade
	return nil
}
func (r *fakeProdutoRepo) Delete(id string) error { return nil }

type fakeVendaRepo struct{ s *fakeStore }

func (r *fakeVendaRepo) Create(v *entity.Venda) error {
	cp := *v
	r.s.vendas[v.ID] = &cp
	return nil
}
func (r *fakeVendaRepo) GetByID(id string) (*entity.Venda, error) {
	v, ok := r.s.vendas[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	if c, ok := r.s.clientes[v.ClienteID]; ok {
		cc := *c
		cp.Cliente = &cc
	}
	if p, ok := r.s.produtos[v.ProdutoID]; ok {
		pc := *p
		cp.Produto = &pc
	}
	return &cp, nil
}
func (r *fakeVendaRepo) List(limit, offset int) ([]*entity.Venda, error) {
	out := make([]*entity.Venda, 0, len(r.s.vendas))
	for id := range r.s.vendas {
		v, _ := r.GetByID(id)
		out = append(out, v)
	}
	return out, nil
}
func (r *fakeVendaRepo) Update(v *entity.Venda) error {
	cp := *v
	cp.Cliente = nil
	cp.Produto = nil
	r.s.vendas[v.ID] = &cp
	return nil
}
func (r *fakeVendaRepo) Delete(id string) error {
	delete(r.s.vendas, id)
	return nil
}

// fakeTxRunner serializa as "transações" com um mutex, imitando o lock de
// linha do banco nas execuções concorrentes.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(&fakeVendaRepo{s: t.s}, &fakeProdutoRepo{s: t.s}, &fakeClienteRepo{s: t.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func novoAmbiente(t *testing.T, saldo int) (*appvenda.VendaUseCase, *fakeStore) {
	t.Helper()
	s := newFakeStore()
	s.clientes["c1"] = &entity.Cliente{ID: "c1", Nome: "Maria da Silva", Cpf: "11122233344"}
	s.produtos["p1"] = &entity.Produto{
		ID:         "p1",
		Nome:       "Caneta Azul",
		Preco:      decimal.RequireFromString("5.00"),
		Quantidade: saldo,
		DepositoID: "d1",
	}
	uc := appvenda.NewVendaUseCase(&fakeTxRunner{s: s}, &fakeVendaRepo{s: s})
	return uc, s
}

func pedidoVenda(quantidade int) dto.CreateVendaRequest {
	return dto.CreateVendaRequest{
		DataVenda:        "2024-03-01",
		NumeroNotaFiscal: "NF-0001",
		ClienteID:        "c1",
		ProdutoID:        "p1",
		DepositoID:       "d1",
		Quantidade:       quantidade,
		PrecoUnitario:    decimal.RequireFromString("5.00"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_BaixaEstoqueEResolveAssociacoes(t *testing.T) {
	uc, s := novoAmbiente(t, 10)

	out, err := uc.Create(context.Background(), pedidoVenda(4))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 6, s.produtos["p1"].Quantidade, "a venda deve dar baixa no saldo")
	assert.Len(t, s.vendas, 1, "a venda deve ser persistida")

	require.NotNil(t, out.Cliente, "a resposta deve trazer o cliente resolvido")
	assert.Equal(t, "Maria da Silva", out.Cliente.Nome)
	require.NotNil(t, out.Produto, "a resposta deve trazer o produto resolvido")
	assert.Equal(t, "Caneta Azul", out.Produto.Nome)
	assert.Equal(t, 6, out.Produto.Quantidade, "o produto da resposta deve refletir a baixa")
}

func TestCreate_ClienteInexistente(t *testing.T) {
	uc, s := novoAmbiente(t, 10)
	in := pedidoVenda(1)
	in.ClienteID = "nao-existe"

	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrClienteNaoEncontrado)
	assert.Equal(t, "Cliente não encontrado.", err.Error())
	assert.Equal(t, 10, s.produtos["p1"].Quantidade, "falha não pode tocar o estoque")
	assert.Empty(t, s.vendas)
}

func TestCreate_ProdutoInexistente(t *testing.T) {
	uc, s := novoAmbiente(t, 10)
	in := pedidoVenda(1)
	in.ProdutoID = "nao-existe"

	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrProdutoNaoEncontrado)
	assert.Equal(t, "Produto não encontrado.", err.Error())
	assert.Equal(t, 10, s.produtos["p1"].Quantidade)
	assert.Empty(t, s.vendas)
}

func TestCreate_SaldoInsuficiente(t *testing.T) {
	uc, s := novoAmbiente(t, 3)

	_, err := uc.Create(context.Background(), pedidoVenda(5))
	require.ErrorIs(t, err, domain.ErrQuantidadeInsuficiente)
	assert.Equal(t, "Quantidade insuficiente no depósito.", err.Error())
	assert.Equal(t, 3, s.produtos["p1"].Quantidade, "recusa não pode alterar o saldo")
	assert.Empty(t, s.vendas, "recusa não pode gravar a venda")
}

func TestCreate_SaldoExato(t *testing.T) {
	uc, s := novoAmbiente(t, 5)

	_, err := uc.Create(context.Background(), pedidoVenda(5))
	require.NoError(t, err, "vender exatamente o saldo disponível é permitido")
	assert.Equal(t, 0, s.produtos["p1"].Quantidade)
}

func TestCreate_QuantidadeInvalida(t *testing.T) {
	uc, s := novoAmbiente(t, 10)

	for _, q := range []int{0, -3} {
		_, err := uc.Create(context.Background(), pedidoVenda(q))
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, 10, s.produtos["p1"].Quantidade)
}

// Cenário completo: saldo 10, venda de 7 ok, nova venda de 5 recusada,
// saldo permanece 3.
func TestCreate_SequenciaComRecusa(t *testing.T) {
	uc, s := novoAmbiente(t, 10)

	_, err := uc.Create(context.Background(), pedidoVenda(7))
	require.NoError(t, err)
	assert.Equal(t, 3, s.produtos["p1"].Quantidade)

	_, err = uc.Create(context.Background(), pedidoVenda(5))
	require.ErrorIs(t, err, domain.ErrQuantidadeInsuficiente)
	assert.Equal(t, 3, s.produtos["p1"].Quantidade)
	assert.Len(t, s.vendas, 1)
}

// Duas vendas concorrentes disputando o mesmo saldo: no máximo uma pode
// vencer quando a soma excede o disponível.
func TestCreate_ConcorrenciaNaoVendeSaldoDuasVezes(t *testing.T) {
	uc, s := novoAmbiente(t, 10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(context.Background(), pedidoVenda(7))
		}(i)
	}
	wg.Wait()

	sucessos := 0
	for _, err := range errs {
		if err == nil {
			sucessos++
		} else {
			require.ErrorIs(t, err, domain.ErrQuantidadeInsuficiente)
		}
	}
	assert.Equal(t, 1, sucessos, "apenas uma das vendas concorrentes pode vencer")
	assert.Equal(t, 3, s.produtos["p1"].Quantidade)
	assert.Len(t, s.vendas, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_EstornaEstoque(t *testing.T) {
	uc, s := novoAmbiente(t, 10)

	out, err := uc.Create(context.Background(), pedidoVenda(4))
	require.NoError(t, err)
	require.Equal(t, 6, s.produtos["p1"].Quantidade)

	require.NoError(t, uc.Delete(context.Background(), out.ID))
	assert.Equal(t, 10, s.produtos["p1"].Quantidade, "a exclusão deve devolver a quantidade ao saldo")
	assert.Empty(t, s.vendas)
}

func TestDelete_VendaInexistenteENoOp(t *testing.T) {
	uc, s := novoAmbiente(t, 10)

	err := uc.Delete(context.Background(), "nao-existe")
	require.NoError(t, err, "excluir venda inexistente é no-op silencioso")
	assert.Equal(t, 10, s.produtos["p1"].Quantidade)
}

func TestDelete_ProdutoJaRemovido(t *testing.T) {
	uc, s := novoAmbiente(t, 10)

	out, err := uc.Create(context.Background(), pedidoVenda(2))
	require.NoError(t, err)

	delete(s.produtos, "p1")
	require.NoError(t, uc.Delete(context.Background(), out.ID),
		"a exclusão deve prosseguir mesmo sem o produto para estornar")
	assert.Empty(t, s.vendas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_NaoTocaEstoque(t *testing.T) {
	uc, s := novoAmbiente(t, 10)

	out, err := uc.Create(context.Background(), pedidoVenda(4))
	require.NoError(t, err)
	require.Equal(t, 6, s.produtos["p1"].Quantidade)

	upd := dto.UpdateVendaRequest{
		DataVenda:        "2024-03-02",
		NumeroNotaFiscal: "NF-0002",
		ClienteID:        "c1",
		ProdutoID:        "p1",
		DepositoID:       "d1",
		Quantidade:       9, // maior que o saldo restante, de propósito
		PrecoUnitario:    decimal.RequireFromString("6.50"),
	}
	updated, err := uc.Update(context.Background(), out.ID, upd)
	require.NoError(t, err)

	assert.Equal(t, 6, s.produtos["p1"].Quantidade,
		"a edição administrativa não ajusta o estoque")
	assert.Equal(t, 9, updated.Quantidade)
	assert.Equal(t, "NF-0002", updated.NumeroNotaFiscal)
	assert.True(t, decimal.RequireFromString("6.50").Equal(updated.PrecoUnitario))
}

func TestUpdate_VendaInexistente(t *testing.T) {
	uc, _ := novoAmbiente(t, 10)

	_, err := uc.Update(context.Background(), "nao-existe", dto.UpdateVendaRequest{
		DataVenda:        "2024-03-02",
		NumeroNotaFiscal: "NF-0002",
		ClienteID:        "c1",
		ProdutoID:        "p1",
		DepositoID:       "d1",
		Quantidade:       1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_Inexistente(t *testing.T) {
	uc, _ := novoAmbiente(t, 10)

	out, err := uc.GetByID(context.Background(), "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestList_RetornaVendasComAssociacoes(t *testing.T) {
	uc, _ := novoAmbiente(t, 10)

	_, err := uc.Create(context.Background(), pedidoVenda(2))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), pedidoVenda(3))
	require.NoError(t, err)

	out, err := uc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	for _, item := range out.Items {
		assert.NotNil(t, item.Cliente)
		assert.NotNil(t, item.Produto)
	}
}
