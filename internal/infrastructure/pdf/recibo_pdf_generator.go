// Package pdf gera o recibo em PDF de uma venda usando Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: Recibo de Venda  │  Nº Nota Fiscal + Data      │
//	│  ─────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + CPF + e-mail                           │
//	│  ─────────────────────────────────────────────────────  │
//	│  TABELA: Qtde | Produto | Preço Unit. | Total           │
//	│  ─────────────────────────────────────────────────────  │
//	│  TOTAL DA VENDA                                         │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appvenda "github.com/loja-backend/loja-api/internal/application/venda"
	"github.com/loja-backend/loja-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReciboPDFGenerator implementa venda.ReciboPDFGenerator usando Maroto v2.
type ReciboPDFGenerator struct{}

var _ appvenda.ReciboPDFGenerator = (*ReciboPDFGenerator)(nil)

// NewReciboPDFGenerator constrói o gerador.
func NewReciboPDFGenerator() *ReciboPDFGenerator { return &ReciboPDFGenerator{} }

// GenerateReciboPDF gera o PDF do recibo e devolve seus bytes. Exige Cliente
// e Produto resolvidos na venda.
func (g *ReciboPDFGenerator) GenerateReciboPDF(_ context.Context, v *entity.Venda) ([]byte, error) {
	if v == nil || v.Cliente == nil || v.Produto == nil {
		return nil, fmt.Errorf("pdf: venda sem cliente ou produto resolvidos")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Venda", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(v.Cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(itemRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(v))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título à esquerda, número da nota e data à direita.
func headerRow(v *entity.Venda) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("RECIBO DE VENDA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Nota Fiscal: "+v.NumeroNotaFiscal, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Data: "+v.DataVenda, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// clienteRow: dados do comprador.
func clienteRow(c *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CPF: %s   |   Email: %s",
				nonEmpty(c.Cpf, "—"),
				nonEmpty(c.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtde.", 2, align.Center),
		h("Produto", 5, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func itemRow(v *entity.Venda) core.Row {
	total := v.PrecoUnitario.Mul(decimal.NewFromInt(int64(v.Quantidade)))
	return row.New(7).Add(
		col.New(2).Add(text.New(
			fmt.Sprintf("%d", v.Quantidade),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			v.Produto.Nome,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			"R$ "+v.PrecoUnitario.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			"R$ "+total.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

func totalRow(v *entity.Venda) core.Row {
	total := v.PrecoUnitario.Mul(decimal.NewFromInt(int64(v.Quantidade)))
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DA VENDA:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("R$ "+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
