package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para crear producto.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	PerUnitCost decimal.Decimal `json:"per_unit_cost"`
}

// UpdateProductRequest body para actualizar producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	PerUnitCost *decimal.Decimal `json:"per_unit_cost,omitempty"`
}

// ProductResponse producto en respuestas, con su stock derivado del libro.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	PerUnitCost decimal.Decimal `json:"per_unit_cost"`
	OnHand      decimal.Decimal `json:"on_hand"`
	Reserved    decimal.Decimal `json:"reserved"`
	FreeToUse   decimal.Decimal `json:"free_to_use"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado de productos con stock.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
