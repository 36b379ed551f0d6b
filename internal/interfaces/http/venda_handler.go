package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/application/venda"
	"github.com/loja-backend/loja-api/pkg/validator"
)

// VendaHandler trata as requisições HTTP de Venda (protegido), incluindo a
// emissão dos documentos da venda.
type VendaHandler struct {
	uc    *venda.VendaUseCase
	docUC *venda.DocumentoUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *venda.VendaUseCase, docUC *venda.DocumentoUseCase) *VendaHandler {
	return &VendaHandler{uc: uc, docUC: docUC}
}

// Create godoc
// @Summary      Registrar venda
// @Description  Valida cliente, produto e saldo; dá baixa no estoque e grava a venda na mesma transação.
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendaRequest  true  "Dados da venda"
// @Success      201   {object}  dto.VendaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *VendaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if fields := validator.ValidateStruct(in); len(fields) > 0 {
		return respondValidation(c, fields)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter venda por ID
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.VendaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *VendaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "venda não encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vendas
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.VendaListResponse
// @Router       /api/vendas [get]
func (h *VendaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar venda
// @Description  Edição administrativa: sobrescreve os campos da venda sem ajustar o estoque.
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID da venda"
// @Param        body  body  dto.UpdateVendaRequest  true  "Dados da venda"
// @Success      200   {object}  dto.VendaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [put]
func (h *VendaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if fields := validator.ValidateStruct(in); len(fields) > 0 {
		return respondValidation(c, fields)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover venda
// @Description  Estorna a quantidade vendida ao estoque e remove a venda. Venda inexistente é no-op.
// @Tags         vendas
// @Security     Bearer
// @Param        id  path  string  true  "ID da venda"
// @Success      204
// @Router       /api/vendas/{id} [delete]
func (h *VendaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NotaFiscal godoc
// @Summary      Nota fiscal da venda (XML)
// @Tags         vendas
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  string  true  "ID da venda"
// @Success      200  {string}  string  "XML da nota fiscal"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/nota-fiscal [get]
func (h *VendaHandler) NotaFiscal(c *fiber.Ctx) error {
	xmlBytes, err := h.docUC.GerarNotaFiscalXML(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(xmlBytes)
}

// Recibo godoc
// @Summary      Recibo da venda (PDF)
// @Tags         vendas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da venda"
// @Success      200  {string}  string  "PDF do recibo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/recibo [get]
func (h *VendaHandler) Recibo(c *fiber.Ctx) error {
	pdfBytes, err := h.docUC.GerarReciboPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
