package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// ReconcileUseCase barrido de conciliación: promueve a READY las entregas en
// WAITING cuyas líneas ya se satisfacen con el stock actual. Se invoca después
// de cada evento que muta el libro (ajuste registrado, recepción completada,
// entrega completada).
type ReconcileUseCase struct {
	txRunner TxRunner
	movRepo  repository.InventoryMoveRepository
	log      *logger.Logger
}

// NewReconcileUseCase construye el caso de uso. movRepo va atado al pool para
// el listado inicial; cada promoción corre en su propia transacción.
func NewReconcileUseCase(txRunner TxRunner, movRepo repository.InventoryMoveRepository, log *logger.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner, movRepo: movRepo, log: log}
}

// ReconcileWaitingDeliveries recorre todas las entregas en WAITING y promueve
// las que ahora pasan el chequeo de stock, cada una en su propia transacción
// con la fila bloqueada. Un faltante de stock es una omisión, no un fallo; un
// error de infraestructura en un documento se registra y el barrido continúa
// con el resto.
func (uc *ReconcileUseCase) ReconcileWaitingDeliveries(ctx context.Context) (*dto.ReconciliationReport, error) {
	ids, err := uc.movRepo.ListWaitingDeliveryIDs()
	if err != nil {
		return nil, err
	}

	report := &dto.ReconciliationReport{
		Checked:     len(ids),
		PromotedIDs: []string{},
	}
	for _, id := range ids {
		promoted, err := uc.tryPromote(ctx, id)
		if err != nil {
			uc.log.Warn().Err(err).Str("move_id", id).Msg("conciliación: fallo promoviendo entrega, se continúa con el resto")
			report.FailedIDs = append(report.FailedIDs, id)
			continue
		}
		if promoted {
			report.PromotedIDs = append(report.PromotedIDs, id)
		}
	}
	return report, nil
}

// tryPromote re-evalúa una entrega en su propia transacción y la promueve si
// todas sus líneas se satisfacen. Devuelve false sin error si la entrega ya no
// está en WAITING (borrada o avanzada por otro actor) o si el stock aún no
// alcanza.
func (uc *ReconcileUseCase) tryPromote(ctx context.Context, moveID string) (bool, error) {
	var promoted bool
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMoveRepository,
		ledgerRepo repository.LedgerRepository,
		counterRepo repository.ReferenceCounterRepository,
	) error {
		move, err := movRepo.GetForUpdate(moveID)
		if err != nil {
			return err
		}
		if move == nil || move.MoveType != entity.MoveTypeDELIVERY || move.Status != entity.MoveStatusWAITING {
			return nil
		}
		lines, err := movRepo.ListLines(move.ID)
		if err != nil {
			return err
		}
		entries, err := ledgerRepo.ListByProducts(productIDs(lines))
		if err != nil {
			return err
		}
		stocks := movement.FoldExcluding(entries, move.ID)
		if _, ok := movement.CheckLines(lines, stocks); !ok {
			return nil
		}
		if err := movRepo.UpdateStatus(move.ID, entity.MoveStatusREADY); err != nil {
			return err
		}
		promoted = true
		return nil
	})
	return promoted, err
}
