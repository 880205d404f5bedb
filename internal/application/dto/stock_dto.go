package dto

import "github.com/shopspring/decimal"

// StockSnapshotResponse niveles derivados de stock de un producto.
type StockSnapshotResponse struct {
	ProductID string          `json:"product_id"`
	OnHand    decimal.Decimal `json:"on_hand"`
	Reserved  decimal.Decimal `json:"reserved"`
	FreeToUse decimal.Decimal `json:"free_to_use"`
}
