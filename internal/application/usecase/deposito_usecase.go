package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// DepositoUseCase casos de uso CRUD para depósitos.
type DepositoUseCase struct {
	repo repository.DepositoRepository
}

// NewDepositoUseCase constrói o caso de uso.
func NewDepositoUseCase(repo repository.DepositoRepository) *DepositoUseCase {
	return &DepositoUseCase{repo: repo}
}

// Create cria um novo depósito.
func (uc *DepositoUseCase) Create(in dto.CreateDepositoRequest) (*dto.DepositoResponse, error) {
	now := time.Now()
	deposito := &entity.Deposito{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(deposito); err != nil {
		return nil, err
	}
	return toDepositoResponse(deposito), nil
}

// GetByID obtém um depósito por ID; nil quando não existe.
func (uc *DepositoUseCase) GetByID(id string) (*dto.DepositoResponse, error) {
	deposito, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deposito == nil {
		return nil, nil
	}
	return toDepositoResponse(deposito), nil
}

// Update sobrescreve o nome após checar existência.
func (uc *DepositoUseCase) Update(id string, in dto.UpdateDepositoRequest) (*dto.DepositoResponse, error) {
	deposito, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deposito == nil {
		return nil, nil
	}
	deposito.Nome = in.Nome
	deposito.UpdatedAt = time.Now()
	if err := uc.repo.Update(deposito); err != nil {
		return nil, err
	}
	return toDepositoResponse(deposito), nil
}

// List lista depósitos com paginação.
func (uc *DepositoUseCase) List(limit, offset int) (*dto.DepositoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepositoResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDepositoResponse(d))
	}
	return &dto.DepositoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um depósito por ID.
func (uc *DepositoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDepositoResponse(d *entity.Deposito) *dto.DepositoResponse {
	if d == nil {
		return nil
	}
	return &dto.DepositoResponse{
		ID:        d.ID,
		Nome:      d.Nome,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
