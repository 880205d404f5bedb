package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// WarehouseRepository puerto de persistencia para bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByShortCode(shortCode string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id string) error
}

// LocationRepository puerto de persistencia para ubicaciones dentro de bodegas.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetByWarehouseAndShortCode(warehouseID, shortCode string) (*entity.Location, error)
	List(warehouseID string) ([]*entity.Location, error)
	Delete(id string) error
}
