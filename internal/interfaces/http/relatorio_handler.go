package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loja-backend/loja-api/internal/application/relatorio"
)

// RelatorioHandler trata as consultas de relatório (protegido).
type RelatorioHandler struct {
	uc *relatorio.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// VendasPorProduto godoc
// @Summary      Vendas de um produto
// @Description  Com sumario=true devolve o agregado (quantidade e total cobrado); sem o parâmetro, as linhas detalhadas.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        produtoId  path   string  true   "ID do produto"
// @Param        sumario    query  bool    false  "Agregar resultados"
// @Success      200  {array}   dto.VendaDetalheResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/relatorios/vendas/produto/{produtoId} [get]
func (h *RelatorioHandler) VendasPorProduto(c *fiber.Ctx) error {
	produtoID := c.Params("produtoId")
	if c.QueryBool("sumario", false) {
		out, err := h.uc.VendasPorProdutoSumarizadas(c.UserContext(), produtoID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.VendasPorProdutoDetalhadas(c.UserContext(), produtoID)
	if err != nil {
		return respondError(c, err)
	}
	if len(out) == 0 {
		return respondNotFound(c, "nenhuma venda encontrada para o produto")
	}
	return c.JSON(out)
}

// VendasPorCliente godoc
// @Summary      Vendas de um cliente
// @Description  Com sumario=true devolve os agregados por produto comprado; sem o parâmetro, as linhas detalhadas.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        clienteId  path   string  true   "ID do cliente"
// @Param        sumario    query  bool    false  "Agregar resultados"
// @Success      200  {array}   dto.VendaDetalheResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/relatorios/vendas/cliente/{clienteId} [get]
func (h *RelatorioHandler) VendasPorCliente(c *fiber.Ctx) error {
	clienteID := c.Params("clienteId")
	if c.QueryBool("sumario", false) {
		out, err := h.uc.VendasPorClienteSumarizadas(c.UserContext(), clienteID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.VendasPorClienteDetalhadas(c.UserContext(), clienteID)
	if err != nil {
		return respondError(c, err)
	}
	if len(out) == 0 {
		return respondNotFound(c, "nenhuma venda encontrada para o cliente")
	}
	return c.JSON(out)
}

// EstoquePorDeposito godoc
// @Summary      Estoque de um depósito
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        depositoId  path  string  true  "ID do depósito"
// @Success      200  {array}  dto.EstoqueDepositoResponse
// @Router       /api/relatorios/estoque/deposito/{depositoId} [get]
func (h *RelatorioHandler) EstoquePorDeposito(c *fiber.Ctx) error {
	out, err := h.uc.EstoquePorDeposito(c.UserContext(), c.Params("depositoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
