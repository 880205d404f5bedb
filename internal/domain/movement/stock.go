package movement

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// Snapshot niveles derivados de stock de un producto.
// FreeToUse nunca se reporta negativo aunque lo reservado exceda lo físico.
type Snapshot struct {
	OnHand    decimal.Decimal
	Reserved  decimal.Decimal
	FreeToUse decimal.Decimal
}

// ZeroSnapshot snapshot en ceros para productos sin líneas.
func ZeroSnapshot() Snapshot {
	return Snapshot{OnHand: decimal.Zero, Reserved: decimal.Zero, FreeToUse: decimal.Zero}
}

// LedgerEntry una línea del libro de movimientos junto con el tipo y estado de
// su documento padre: todo lo que necesita el plegado de stock.
type LedgerEntry struct {
	MoveID         string
	ProductID      string
	MoveType       string
	Status         string
	Quantity       decimal.Decimal
	FromLocationID *string
	ToLocationID   *string
}

// Fold pliega el libro completo en un snapshot por producto, en una sola pasada:
//   - RECEIPT/ADJUSTMENT en DONE con ubicación destino suman a OnHand.
//   - DELIVERY en DONE con ubicación origen resta de OnHand.
//   - DELIVERY en WAITING/READY con ubicación origen suma a Reserved.
//   - FreeToUse = max(0, OnHand − Reserved).
func Fold(entries []LedgerEntry) map[string]Snapshot {
	return FoldExcluding(entries, "")
}

// FoldExcluding pliega el libro ignorando las líneas del documento indicado.
// Se usa al evaluar la promoción de una entrega concreta: su propia reserva no
// debe contarse en su contra, o nunca podría satisfacer su requerimiento.
func FoldExcluding(entries []LedgerEntry, excludeMoveID string) map[string]Snapshot {
	type acc struct {
		onHand   decimal.Decimal
		reserved decimal.Decimal
	}
	byProduct := make(map[string]acc)

	for _, e := range entries {
		if excludeMoveID != "" && e.MoveID == excludeMoveID {
			continue
		}
		a := byProduct[e.ProductID]
		switch e.MoveType {
		case entity.MoveTypeRECEIPT, entity.MoveTypeADJUSTMENT:
			if e.Status == entity.MoveStatusDONE && e.ToLocationID != nil {
				a.onHand = a.onHand.Add(e.Quantity)
			}
		case entity.MoveTypeDELIVERY:
			if e.FromLocationID == nil {
				break
			}
			switch e.Status {
			case entity.MoveStatusDONE:
				a.onHand = a.onHand.Sub(e.Quantity)
			case entity.MoveStatusWAITING, entity.MoveStatusREADY:
				a.reserved = a.reserved.Add(e.Quantity)
			}
		}
		byProduct[e.ProductID] = a
	}

	out := make(map[string]Snapshot, len(byProduct))
	for id, a := range byProduct {
		free := a.onHand.Sub(a.reserved)
		if free.IsNegative() {
			free = decimal.Zero
		}
		out[id] = Snapshot{OnHand: a.onHand, Reserved: a.reserved, FreeToUse: free}
	}
	return out
}

// SnapshotFor devuelve el snapshot de un producto del mapa plegado, o ceros si
// el producto no tiene líneas.
func SnapshotFor(stocks map[string]Snapshot, productID string) Snapshot {
	if s, ok := stocks[productID]; ok {
		return s
	}
	return ZeroSnapshot()
}
