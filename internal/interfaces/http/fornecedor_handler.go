package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/application/usecase"
	"github.com/loja-backend/loja-api/pkg/validator"
)

// FornecedorHandler trata as requisições HTTP de Fornecedor (protegido).
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create godoc
// @Summary      Criar fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFornecedorRequest  true  "Dados do fornecedor"
// @Success      201   {object}  dto.FornecedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fornecedores [post]
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if fields := validator.ValidateStruct(in); len(fields) > 0 {
		return respondValidation(c, fields)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter fornecedor por ID
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do fornecedor"
// @Success      200  {object}  dto.FornecedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [get]
func (h *FornecedorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "fornecedor não encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fornecedores
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.FornecedorListResponse
// @Router       /api/fornecedores [get]
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID do fornecedor"
// @Param        body  body  dto.UpdateFornecedorRequest  true  "Dados do fornecedor"
// @Success      200   {object}  dto.FornecedorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [put]
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if fields := validator.ValidateStruct(in); len(fields) > 0 {
		return respondValidation(c, fields)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "fornecedor não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Param        id  path  string  true  "ID do fornecedor"
// @Success      204
// @Router       /api/fornecedores/{id} [delete]
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
