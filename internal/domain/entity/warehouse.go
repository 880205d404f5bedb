package entity

import "time"

// Warehouse representa una bodega. ShortCode es único en todo el sistema y
// forma el prefijo de las referencias de documentos (ej. WH/IN/00001).
type Warehouse struct {
	ID        string
	Name      string
	ShortCode string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location ubicación física dentro de una bodega. ShortCode es único por bodega.
type Location struct {
	ID          string
	WarehouseID string
	Name        string
	ShortCode   string
	CreatedAt   time.Time
}
