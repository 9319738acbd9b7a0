package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LocationUseCase administración de bodegas y sus banderas de política.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una bodega.
func (uc *LocationUseCase) Create(in dto.LocationRequest) (*entity.Location, error) {
	if in.Number == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	location := &entity.Location{
		ID:                    uuid.New().String(),
		Number:                in.Number,
		Name:                  in.Name,
		RequirePrice:          in.RequirePrice,
		RequireBatch:          in.RequireBatch,
		RequireProductionDate: in.RequireProductionDate,
		RequireExpirationDate: in.RequireExpirationDate,
		DraftMakesReservation: in.DraftMakesReservation,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

// Update reemplaza nombre y banderas de política de una bodega existente.
func (uc *LocationUseCase) Update(id string, in dto.LocationRequest) (*entity.Location, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		location.Name = in.Name
	}
	location.RequirePrice = in.RequirePrice
	location.RequireBatch = in.RequireBatch
	location.RequireProductionDate = in.RequireProductionDate
	location.RequireExpirationDate = in.RequireExpirationDate
	location.DraftMakesReservation = in.DraftMakesReservation
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetByID obtiene una bodega.
func (uc *LocationUseCase) GetByID(id string) (*entity.Location, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return location, nil
}

// List lista bodegas con paginación.
func (uc *LocationUseCase) List(limit, offset int) ([]*entity.Location, error) {
	return uc.repo.List(limit, offset)
}
