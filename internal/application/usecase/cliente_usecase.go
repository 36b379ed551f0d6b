package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cria um novo cliente.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Cpf:       in.Cpf,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtém um cliente por ID; nil quando não existe.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// Update sobrescreve os campos mutáveis após checar existência;
// nil quando o cliente não existe.
func (uc *ClienteUseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	cliente.Nome = in.Nome
	cliente.Cpf = in.Cpf
	cliente.Email = in.Email
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes com paginação.
func (uc *ClienteUseCase) List(limit, offset int) (*dto.ClienteListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um cliente por ID.
func (uc *ClienteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Cpf:       c.Cpf,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
