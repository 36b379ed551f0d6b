// Package notafiscal gera o XML simplificado da nota fiscal de uma venda.
package notafiscal

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/loja-backend/loja-api/internal/application/venda"
	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/pkg/texto"
)

// XMLBuilder monta o documento da nota fiscal a partir de uma venda com as
// associações resolvidas. Implementa venda.NotaFiscalBuilder.
type XMLBuilder struct{}

var _ venda.NotaFiscalBuilder = (*XMLBuilder)(nil)

// NewXMLBuilder constrói o builder.
func NewXMLBuilder() *XMLBuilder {
	return &XMLBuilder{}
}

// Build gera os bytes do XML da nota fiscal. Exige Cliente e Produto
// resolvidos na venda.
func (b *XMLBuilder) Build(v *entity.Venda) ([]byte, error) {
	if v == nil || v.Cliente == nil || v.Produto == nil {
		return nil, fmt.Errorf("notafiscal: venda sem cliente ou produto resolvidos")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	nf := doc.CreateElement("NotaFiscal")
	nf.CreateAttr("versao", "1.0")

	ide := nf.CreateElement("Identificacao")
	ide.CreateElement("Numero").SetText(v.NumeroNotaFiscal)
	ide.CreateElement("DataEmissao").SetText(v.DataVenda)
	ide.CreateElement("VendaID").SetText(v.ID)

	dest := nf.CreateElement("Destinatario")
	dest.CreateElement("Nome").SetText(texto.RemoverAcentos(v.Cliente.Nome))
	dest.CreateElement("CPF").SetText(v.Cliente.Cpf)
	if v.Cliente.Email != "" {
		dest.CreateElement("Email").SetText(v.Cliente.Email)
	}

	total := v.PrecoUnitario.Mul(decimal.NewFromInt(int64(v.Quantidade)))

	item := nf.CreateElement("Item")
	item.CreateElement("Descricao").SetText(texto.RemoverAcentos(v.Produto.Nome))
	item.CreateElement("Quantidade").SetText(fmt.Sprintf("%d", v.Quantidade))
	item.CreateElement("ValorUnitario").SetText(v.PrecoUnitario.StringFixed(2))
	item.CreateElement("ValorTotal").SetText(total.StringFixed(2))
	if v.Produto.Deposito != nil {
		item.CreateElement("Deposito").SetText(texto.RemoverAcentos(v.Produto.Deposito.Nome))
	}

	tot := nf.CreateElement("Totais")
	tot.CreateElement("ValorNota").SetText(total.StringFixed(2))

	doc.Indent(2)
	return doc.WriteToBytes()
}
