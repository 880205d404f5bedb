package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock nunca se escribe
// aquí: cada respuesta lo deriva del libro de movimientos vía StockUseCase.
type ProductUseCase struct {
	repo    repository.ProductRepository
	stockUC *inventory.StockUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockUC *inventory.StockUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockUC: stockUC}
}

// Create crea un producto. Nace con stock cero en todas las medidas.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PerUnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		PerUnitCost: in.PerUnitCost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, movement.ZeroSnapshot()), nil
}

// GetByID obtiene un producto con su stock derivado.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	snap, err := uc.stockUC.ComputeStock(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, movement.Snapshot{
		OnHand:    snap.OnHand,
		Reserved:  snap.Reserved,
		FreeToUse: snap.FreeToUse,
	}), nil
}

// Update actualiza nombre, descripción y costo unitario.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.PerUnitCost != nil {
		if in.PerUnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PerUnitCost = *in.PerUnitCost
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List lista productos con paginación, cada uno con su stock derivado.
// El libro se lee una sola vez para todo el listado.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	snapshots, err := uc.stockUC.SnapshotMap(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, movement.SnapshotFor(snapshots, p.ID)))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(items)},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product, s movement.Snapshot) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PerUnitCost: p.PerUnitCost,
		OnHand:      s.OnHand,
		Reserved:    s.Reserved,
		FreeToUse:   s.FreeToUse,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
