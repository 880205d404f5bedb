package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TransitionUseCase aplica transiciones de estado sobre un documento.
//
// Toda la evaluación ocurre dentro de una transacción con la fila del
// documento bloqueada (SELECT FOR UPDATE): dos intentos concurrentes sobre el
// mismo documento se serializan, el perdedor relee el estado ya avanzado y
// falla con TransitionError. El chequeo de stock se recalcula en ese mismo
// punto, nunca se reutiliza un valor leído antes.
type TransitionUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewTransitionUseCase construye el caso de uso.
func NewTransitionUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *TransitionUseCase {
	return &TransitionUseCase{txRunner: txRunner, productRepo: productRepo}
}

// TransitionStatus intenta avanzar el documento al estado destino.
// Rechazos esperados devuelven *movement.TransitionError con el estado actual,
// los destinos legales y, si la causa es stock, el detalle por línea.
func (uc *TransitionUseCase) TransitionStatus(ctx context.Context, moveID, target string) (*dto.MoveResponse, error) {
	if !entity.ValidMoveStatus(target) {
		return nil, domain.ErrInvalidInput
	}

	var (
		move  *entity.InventoryMove
		lines []entity.InventoryMoveLine
	)
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMoveRepository,
		ledgerRepo repository.LedgerRepository,
		counterRepo repository.ReferenceCounterRepository,
	) error {
		var err error
		move, err = movRepo.GetForUpdate(moveID)
		if err != nil {
			return err
		}
		if move == nil {
			return domain.ErrNotFound
		}
		if !movement.CanTransition(move.MoveType, move.Status, target) {
			return &movement.TransitionError{
				MoveID:         move.ID,
				MoveType:       move.MoveType,
				CurrentStatus:  move.Status,
				TargetStatus:   target,
				AllowedTargets: movement.AllowedTargets(move.MoveType, move.Status),
			}
		}
		lines, err = movRepo.ListLines(move.ID)
		if err != nil {
			return err
		}
		if movement.RequiresStockGate(move.MoveType, target) {
			entries, err := ledgerRepo.ListByProducts(productIDs(lines))
			if err != nil {
				return err
			}
			// La reserva del propio documento se excluye del plegado.
			stocks := movement.FoldExcluding(entries, move.ID)
			checks, ok := movement.CheckLines(lines, stocks)
			if !ok {
				return &movement.TransitionError{
					MoveID:         move.ID,
					MoveType:       move.MoveType,
					CurrentStatus:  move.Status,
					TargetStatus:   target,
					AllowedTargets: movement.AllowedTargets(move.MoveType, move.Status),
					StockChecks:    checks,
				}
			}
		}
		if err := movRepo.UpdateStatus(move.ID, target); err != nil {
			return err
		}
		move.Status = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toMoveResponseWithNames(uc.productRepo, move, lines), nil
}

func toMoveResponseWithNames(productRepo repository.ProductRepository, move *entity.InventoryMove, lines []entity.InventoryMoveLine) *dto.MoveResponse {
	lineResponses := make([]dto.MoveLineResponse, 0, len(lines))
	for _, l := range lines {
		lr := dto.MoveLineResponse{
			ID:             l.ID,
			ProductID:      l.ProductID,
			Quantity:       l.Quantity,
			FromLocationID: l.FromLocationID,
			ToLocationID:   l.ToLocationID,
		}
		if p, err := productRepo.GetByID(l.ProductID); err == nil && p != nil {
			lr.ProductName = p.Name
		}
		lineResponses = append(lineResponses, lr)
	}
	return &dto.MoveResponse{
		ID:            move.ID,
		Reference:     move.Reference,
		MoveType:      move.MoveType,
		Status:        move.Status,
		Contact:       move.Contact,
		ScheduleDate:  move.ScheduleDate,
		ResponsibleID: move.ResponsibleID,
		CreatedAt:     move.CreatedAt,
		MoveLines:     lineResponses,
	}
}
