package dto

import "time"

// CreateWarehouseRequest body para crear bodega.
type CreateWarehouseRequest struct {
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	Address   string `json:"address,omitempty"`
}

// UpdateWarehouseRequest body para actualizar bodega (campos opcionales).
type UpdateWarehouseRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// WarehouseResponse bodega en respuestas.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ShortCode string    `json:"short_code"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse listado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CreateLocationRequest body para crear ubicación.
type CreateLocationRequest struct {
	Name        string `json:"name"`
	ShortCode   string `json:"short_code"`
	WarehouseID string `json:"warehouse_id"`
}

// LocationResponse ubicación en respuestas.
type LocationResponse struct {
	ID          string    `json:"id"`
	WarehouseID string    `json:"warehouse_id"`
	Name        string    `json:"name"`
	ShortCode   string    `json:"short_code"`
	CreatedAt   time.Time `json:"created_at"`
}
