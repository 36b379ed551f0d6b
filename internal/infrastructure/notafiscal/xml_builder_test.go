package notafiscal_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/internal/infrastructure/notafiscal"
)

func vendaCompleta() *entity.Venda {
	return &entity.Venda{
		ID:               "v1",
		DataVenda:        "2024-03-01",
		NumeroNotaFiscal: "NF-0001",
		Quantidade:       3,
		PrecoUnitario:    decimal.RequireFromString("5.50"),
		Cliente: &entity.Cliente{
			ID:    "c1",
			Nome:  "João das Couves",
			Cpf:   "11122233344",
			Email: "joao@example.com",
		},
		Produto: &entity.Produto{
			ID:   "p1",
			Nome: "Caneta Azul",
			Deposito: &entity.Deposito{
				ID:   "d1",
				Nome: "Depósito Central",
			},
		},
	}
}

func TestBuild_DocumentoCompleto(t *testing.T) {
	b := notafiscal.NewXMLBuilder()

	out, err := b.Build(vendaCompleta())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("NotaFiscal")
	require.NotNil(t, root)

	ide := root.SelectElement("Identificacao")
	require.NotNil(t, ide)
	assert.Equal(t, "NF-0001", ide.SelectElement("Numero").Text())
	assert.Equal(t, "2024-03-01", ide.SelectElement("DataEmissao").Text())
	assert.Equal(t, "v1", ide.SelectElement("VendaID").Text())

	dest := root.SelectElement("Destinatario")
	require.NotNil(t, dest)
	assert.Equal(t, "Joao das Couves", dest.SelectElement("Nome").Text(),
		"o nome deve sair sem acentos")
	assert.Equal(t, "11122233344", dest.SelectElement("CPF").Text())

	item := root.SelectElement("Item")
	require.NotNil(t, item)
	assert.Equal(t, "3", item.SelectElement("Quantidade").Text())
	assert.Equal(t, "5.50", item.SelectElement("ValorUnitario").Text())
	assert.Equal(t, "16.50", item.SelectElement("ValorTotal").Text())
	assert.Equal(t, "Deposito Central", item.SelectElement("Deposito").Text())

	tot := root.SelectElement("Totais")
	require.NotNil(t, tot)
	assert.Equal(t, "16.50", tot.SelectElement("ValorNota").Text())
}

func TestBuild_SemAssociacoes(t *testing.T) {
	b := notafiscal.NewXMLBuilder()

	v := vendaCompleta()
	v.Cliente = nil
	_, err := b.Build(v)
	assert.Error(t, err, "venda sem cliente resolvido não gera nota")

	v = vendaCompleta()
	v.Produto = nil
	_, err = b.Build(v)
	assert.Error(t, err)

	_, err = b.Build(nil)
	assert.Error(t, err)
}

func TestBuild_SemDeposito(t *testing.T) {
	b := notafiscal.NewXMLBuilder()

	v := vendaCompleta()
	v.Produto.Deposito = nil
	out, err := b.Build(v)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	item := doc.SelectElement("NotaFiscal").SelectElement("Item")
	assert.Nil(t, item.SelectElement("Deposito"), "sem depósito resolvido o elemento é omitido")
}
