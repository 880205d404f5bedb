package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
)

// HistoryLine línea del historial de movimientos para listados, con los datos
// del documento padre y nombres legibles ya resueltos.
type HistoryLine struct {
	LineID            string
	MoveID            string
	Reference         string
	MoveType          string
	Status            string
	Contact           string
	CreatedAt         time.Time
	ProductID         string
	ProductName       string
	Quantity          decimal.Decimal
	FromLocationName  *string
	ToLocationName    *string
}

// HistoryFilter filtros del historial.
type HistoryFilter struct {
	Search string
	From   *time.Time
	To     *time.Time
}

// LedgerRepository puerto read-only sobre el libro de movimientos (líneas junto
// con tipo y estado del documento padre). El agregador de stock pliega estas
// entradas; nunca se almacena stock materializado.
type LedgerRepository interface {
	// ListAll todas las entradas del libro en un solo fetch (para ComputeAllStock).
	ListAll() ([]movement.LedgerEntry, error)
	// ListByProducts entradas de los productos indicados, un solo fetch.
	ListByProducts(productIDs []string) ([]movement.LedgerEntry, error)
	ListHistory(filter HistoryFilter) ([]HistoryLine, error)
}
