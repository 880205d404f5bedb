package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// El stock (a mano, reservado, disponible) nunca se almacena: se deriva del
// libro de movimientos en cada lectura.
type Product struct {
	ID          string
	Name        string
	Description string
	PerUnitCost decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
