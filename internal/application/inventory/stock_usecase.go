package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// StockUseCase consultas read-only de stock derivado del libro de movimientos.
// Nunca lee stock materializado: pliega las líneas en cada lectura.
type StockUseCase struct {
	ledgerRepo  repository.LedgerRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(ledgerRepo repository.LedgerRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{ledgerRepo: ledgerRepo, productRepo: productRepo}
}

// ComputeStock calcula {a mano, reservado, disponible} para un producto.
// Un producto sin líneas devuelve ceros.
func (uc *StockUseCase) ComputeStock(ctx context.Context, productID string) (*dto.StockSnapshotResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByProducts([]string{productID})
	if err != nil {
		return nil, err
	}
	s := movement.SnapshotFor(movement.Fold(entries), productID)
	return toSnapshotResponse(productID, s), nil
}

// ComputeAllStock calcula el snapshot de todos los productos con un solo fetch
// del libro y una sola pasada agrupada por producto (nunca una consulta por
// producto). Los productos sin líneas aparecen con ceros.
func (uc *StockUseCase) ComputeAllStock(ctx context.Context, limit, offset int) ([]dto.StockSnapshotResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	stocks, err := uc.SnapshotMap(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockSnapshotResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toSnapshotResponse(p.ID, movement.SnapshotFor(stocks, p.ID)))
	}
	return out, nil
}

// SnapshotMap pliega el libro completo en un mapa producto → snapshot.
// Lo usan los listados de productos para enriquecer con stock en un solo batch.
func (uc *StockUseCase) SnapshotMap(ctx context.Context) (map[string]movement.Snapshot, error) {
	entries, err := uc.ledgerRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return movement.Fold(entries), nil
}

func toSnapshotResponse(productID string, s movement.Snapshot) *dto.StockSnapshotResponse {
	return &dto.StockSnapshotResponse{
		ProductID: productID,
		OnHand:    s.OnHand,
		Reserved:  s.Reserved,
		FreeToUse: s.FreeToUse,
	}
}
