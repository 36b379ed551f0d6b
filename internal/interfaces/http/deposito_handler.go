package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/application/usecase"
	"github.com/loja-backend/loja-api/pkg/validator"
)

// DepositoHandler trata as requisições HTTP de Depósito (protegido).
type DepositoHandler struct {
	uc *usecase.DepositoUseCase
}

// NewDepositoHandler constrói o handler.
func NewDepositoHandler(uc *usecase.DepositoUseCase) *DepositoHandler {
	return &DepositoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar depósito
// @Tags         depositos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepositoRequest  true  "Dados do depósito"
// @Success      201   {object}  dto.DepositoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/depositos [post]
func (h *DepositoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepositoRequest
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
// @Summary      Obter depósito por ID
// @Tags         depositos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do depósito"
// @Success      200  {object}  dto.DepositoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/depositos/{id} [get]
func (h *DepositoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "depósito não encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar depósitos
// @Tags         depositos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.DepositoListResponse
// @Router       /api/depositos [get]
func (h *DepositoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar depósito
// @Tags         depositos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID do depósito"
// @Param        body  body  dto.UpdateDepositoRequest  true  "Dados do depósito"
// @Success      200   {object}  dto.DepositoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/depositos/{id} [put]
func (h *DepositoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDepositoRequest
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
		return respondNotFound(c, "depósito não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover depósito
// @Tags         depositos
// @Security     Bearer
// @Param        id  path  string  true  "ID do depósito"
// @Success      204
// @Router       /api/depositos/{id} [delete]
func (h *DepositoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
