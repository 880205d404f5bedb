package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el chequeo de stock, el cambio
// de estado y la emisión de referencias sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMoveRepository,
		ledgerRepo repository.LedgerRepository,
		counterRepo repository.ReferenceCounterRepository,
	) error) error
}
