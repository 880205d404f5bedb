package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento de movimiento.
const (
	MoveTypeRECEIPT    = "RECEIPT"    // recepción (entrada)
	MoveTypeDELIVERY   = "DELIVERY"   // entrega (salida)
	MoveTypeADJUSTMENT = "ADJUSTMENT" // ajuste de inventario
)

// Estados del ciclo de vida de un documento. DONE es terminal.
const (
	MoveStatusDRAFT   = "DRAFT"
	MoveStatusWAITING = "WAITING"
	MoveStatusREADY   = "READY"
	MoveStatusDONE    = "DONE"
)

// ValidMoveType indica si el tipo de documento es uno de los soportados.
func ValidMoveType(t string) bool {
	return t == MoveTypeRECEIPT || t == MoveTypeDELIVERY || t == MoveTypeADJUSTMENT
}

// ValidMoveStatus indica si el estado pertenece al conjunto cerrado.
func ValidMoveStatus(s string) bool {
	return s == MoveStatusDRAFT || s == MoveStatusWAITING || s == MoveStatusREADY || s == MoveStatusDONE
}

// InventoryMove representa un documento de movimiento (recepción, entrega o ajuste).
// Las líneas se congelan cuando el documento llega a DONE.
type InventoryMove struct {
	ID            string
	Reference     string // única en todo el sistema, generada por el contador
	MoveType      string
	Status        string
	Contact       string
	ScheduleDate  *time.Time
	ResponsibleID string
	CreatedAt     time.Time
}

// InventoryMoveLine línea de producto-cantidad-ubicación de un documento.
// RECEIPT/ADJUSTMENT usan ToLocationID; DELIVERY usa FromLocationID.
type InventoryMoveLine struct {
	ID             string
	MoveID         string
	ProductID      string
	Quantity       decimal.Decimal
	FromLocationID *string
	ToLocationID   *string
}
