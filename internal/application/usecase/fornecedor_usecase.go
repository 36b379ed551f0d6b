package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/loja-backend/loja-api/internal/application/dto"
	"github.com/loja-backend/loja-api/internal/domain/entity"
	"github.com/loja-backend/loja-api/internal/domain/repository"
)

// FornecedorUseCase casos de uso CRUD para fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Create cria um novo fornecedor.
func (uc *FornecedorUseCase) Create(in dto.CreateFornecedorRequest) (*dto.FornecedorResponse, error) {
	now := time.Now()
	fornecedor := &entity.Fornecedor{
		ID:        uuid.New().String(),
		Cnpj:      in.Cnpj,
		Nome:      in.Nome,
		Endereco:  in.Endereco,
		Email:     in.Email,
		Telefone:  in.Telefone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor), nil
}

// GetByID obtém um fornecedor por ID; nil quando não existe.
func (uc *FornecedorUseCase) GetByID(id string) (*dto.FornecedorResponse, error) {
	fornecedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, nil
	}
	return toFornecedorResponse(fornecedor), nil
}

// Update sobrescreve os campos mutáveis após checar existência.
func (uc *FornecedorUseCase) Update(id string, in dto.UpdateFornecedorRequest) (*dto.FornecedorResponse, error) {
	fornecedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, nil
	}
	fornecedor.Cnpj = in.Cnpj
	fornecedor.Nome = in.Nome
	fornecedor.Endereco = in.Endereco
	fornecedor.Email = in.Email
	fornecedor.Telefone = in.Telefone
	fornecedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor), nil
}

// List lista fornecedores com paginação.
func (uc *FornecedorUseCase) List(limit, offset int) (*dto.FornecedorListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FornecedorResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFornecedorResponse(f))
	}
	return &dto.FornecedorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um fornecedor por ID.
func (uc *FornecedorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	if f == nil {
		return nil
	}
	return &dto.FornecedorResponse{
		ID:        f.ID,
		Cnpj:      f.Cnpj,
		Nome:      f.Nome,
		Endereco:  f.Endereco,
		Email:     f.Email,
		Telefone:  f.Telefone,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
