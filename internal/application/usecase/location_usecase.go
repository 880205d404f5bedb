package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// LocationUseCase casos de uso para ubicaciones dentro de bodegas.
type LocationUseCase struct {
	repo          repository.LocationRepository
	warehouseRepo repository.WarehouseRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, warehouseRepo repository.WarehouseRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create crea una ubicación en una bodega existente. El short_code es único
// por bodega; devuelve ErrDuplicate si ya está en uso.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	shortCode := in.ShortCode
	if shortCode == "" {
		shortCode = NormalizeShortCode(in.Name)
	} else {
		shortCode = NormalizeShortCode(shortCode)
	}
	if shortCode == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByWarehouseAndShortCode(warehouse.ID, shortCode)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	location := &entity.Location{
		ID:          uuid.New().String(),
		WarehouseID: warehouse.ID,
		Name:        in.Name,
		ShortCode:   shortCode,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista las ubicaciones de una bodega.
func (uc *LocationUseCase) List(warehouseID string) ([]dto.LocationResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.List(warehouseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Delete elimina una ubicación por ID.
func (uc *LocationUseCase) Delete(id string) error {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:          l.ID,
		WarehouseID: l.WarehouseID,
		Name:        l.Name,
		ShortCode:   l.ShortCode,
		CreatedAt:   l.CreatedAt,
	}
}
