package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// MoveUseCase creación, lectura y edición de documentos de movimiento.
// La creación asigna la referencia y decide el estado inicial dentro de una
// transacción; para entregas el chequeo de stock se evalúa en esa misma
// transacción, nunca con un valor leído antes.
type MoveUseCase struct {
	txRunner      TxRunner
	movRepo       repository.InventoryMoveRepository
	ledgerRepo    repository.LedgerRepository
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
	productRepo   repository.ProductRepository
}

// NewMoveUseCase construye el caso de uso. movRepo y ledgerRepo van atados al
// pool para las lecturas fuera de transacción.
func NewMoveUseCase(
	txRunner TxRunner,
	movRepo repository.InventoryMoveRepository,
	ledgerRepo repository.LedgerRepository,
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
) *MoveUseCase {
	return &MoveUseCase{
		txRunner:      txRunner,
		movRepo:       movRepo,
		ledgerRepo:    ledgerRepo,
		warehouseRepo: warehouseRepo,
		locationRepo:  locationRepo,
		productRepo:   productRepo,
	}
}

// CreateMove crea un documento del tipo indicado: asigna referencia atómica,
// decide el estado inicial (RECEIPT→DRAFT, ADJUSTMENT→DONE, DELIVERY→READY o
// WAITING según stock) e inserta cabecera y líneas en una sola transacción.
func (uc *MoveUseCase) CreateMove(ctx context.Context, moveType, responsibleID string, in dto.CreateMoveRequest) (*dto.MoveResponse, error) {
	if !entity.ValidMoveType(moveType) || len(in.MoveLines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByShortCode(in.WarehouseShortCode)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.buildLines(moveType, warehouse, in.MoveLines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	move := &entity.InventoryMove{
		ID:            uuid.New().String(),
		MoveType:      moveType,
		Contact:       in.Contact,
		ScheduleDate:  in.ScheduleDate,
		ResponsibleID: responsibleID,
		CreatedAt:     now,
	}
	for i := range lines {
		lines[i].MoveID = move.ID
	}

	var checks []movement.StockCheck
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMoveRepository,
		ledgerRepo repository.LedgerRepository,
		counterRepo repository.ReferenceCounterRepository,
	) error {
		number, err := counterRepo.NextNumber(warehouse.ID, moveType)
		if err != nil {
			return err
		}
		move.Reference = entity.FormatReference(warehouse.ShortCode, moveType, number)

		switch moveType {
		case entity.MoveTypeRECEIPT:
			move.Status = entity.MoveStatusDRAFT
		case entity.MoveTypeADJUSTMENT:
			// Los ajustes mutan el libro en un solo paso: nacen en DONE.
			move.Status = entity.MoveStatusDONE
		case entity.MoveTypeDELIVERY:
			entries, err := ledgerRepo.ListByProducts(productIDs(lines))
			if err != nil {
				return err
			}
			var all bool
			checks, all = movement.CheckLines(lines, movement.Fold(entries))
			if all {
				move.Status = entity.MoveStatusREADY
			} else {
				move.Status = entity.MoveStatusWAITING
			}
		}
		return movRepo.Create(move, lines)
	})
	if err != nil {
		return nil, err
	}

	resp := uc.toMoveResponse(move, lines)
	resp.StockChecks = checks
	return resp, nil
}

// GetByID obtiene un documento del tipo indicado con sus líneas.
func (uc *MoveUseCase) GetByID(ctx context.Context, moveType, id string) (*dto.MoveResponse, error) {
	move, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if move == nil || move.MoveType != moveType {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.movRepo.ListLines(id)
	if err != nil {
		return nil, err
	}
	return uc.toMoveResponse(move, lines), nil
}

// List lista documentos de un tipo con filtro por estado y búsqueda en
// referencia/contacto, incluyendo sus líneas.
func (uc *MoveUseCase) List(ctx context.Context, moveType string, filter repository.MoveFilter) (*dto.MoveListResponse, error) {
	moves, err := uc.movRepo.ListByType(moveType, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MoveResponse, 0, len(moves))
	for _, m := range moves {
		lines, err := uc.movRepo.ListLines(m.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *uc.toMoveResponse(m, lines))
	}
	return &dto.MoveListResponse{Items: items, Total: len(items)}, nil
}

// ReplaceLines edita un documento en DRAFT: reemplazo completo de líneas
// (borrar e insertar; las identidades de línea se regeneran). Cualquier otro
// estado devuelve ErrImmutableState.
func (uc *MoveUseCase) ReplaceLines(ctx context.Context, moveType, id string, in dto.EditMoveRequest) (*dto.MoveResponse, error) {
	if len(in.MoveLines) == 0 {
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
		move, err = movRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if move == nil || move.MoveType != moveType {
			return domain.ErrNotFound
		}
		if move.Status != entity.MoveStatusDRAFT {
			return domain.ErrImmutableState
		}
		lines, err = uc.buildLines(moveType, nil, in.MoveLines)
		if err != nil {
			return err
		}
		for i := range lines {
			lines[i].MoveID = move.ID
		}
		move.Contact = in.Contact
		move.ScheduleDate = in.ScheduleDate
		if err := movRepo.UpdateHeader(move); err != nil {
			return err
		}
		return movRepo.ReplaceLines(move.ID, lines)
	})
	if err != nil {
		return nil, err
	}
	return uc.toMoveResponse(move, lines), nil
}

// ListHistory historial de líneas de movimiento con búsqueda y rango de fechas.
func (uc *MoveUseCase) ListHistory(ctx context.Context, filter repository.HistoryFilter) ([]dto.HistoryLineResponse, error) {
	history, err := uc.ledgerRepo.ListHistory(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryLineResponse, 0, len(history))
	for _, h := range history {
		out = append(out, dto.HistoryLineResponse{
			LineID:       h.LineID,
			MoveID:       h.MoveID,
			Reference:    h.Reference,
			MoveType:     h.MoveType,
			Status:       h.Status,
			Contact:      h.Contact,
			CreatedAt:    h.CreatedAt,
			ProductID:    h.ProductID,
			ProductName:  h.ProductName,
			Quantity:     h.Quantity,
			FromLocation: h.FromLocationName,
			ToLocation:   h.ToLocationName,
		})
	}
	return out, nil
}

// buildLines valida y materializa las líneas según el tipo de documento:
// RECEIPT y ADJUSTMENT fijan solo ubicación destino, DELIVERY solo origen;
// cantidad no negativa y distinta de cero. warehouse no nil exige además que
// las ubicaciones de un ajuste pertenezcan a esa bodega.
func (uc *MoveUseCase) buildLines(moveType string, warehouse *entity.Warehouse, in []dto.MoveLineRequest) ([]entity.InventoryMoveLine, error) {
	lines := make([]entity.InventoryMoveLine, 0, len(in))
	for _, l := range in {
		if l.ProductID == "" || l.Quantity.IsNegative() || l.Quantity.Equal(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}

		line := entity.InventoryMoveLine{
			ID:        uuid.New().String(),
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
		}
		switch moveType {
		case entity.MoveTypeDELIVERY:
			if l.FromLocationID == "" || l.ToLocationID != "" {
				return nil, domain.ErrInvalidInput
			}
			if err := uc.checkLocation(l.FromLocationID, nil); err != nil {
				return nil, err
			}
			from := l.FromLocationID
			line.FromLocationID = &from
		case entity.MoveTypeRECEIPT:
			if l.ToLocationID == "" || l.FromLocationID != "" {
				return nil, domain.ErrInvalidInput
			}
			if err := uc.checkLocation(l.ToLocationID, nil); err != nil {
				return nil, err
			}
			to := l.ToLocationID
			line.ToLocationID = &to
		case entity.MoveTypeADJUSTMENT:
			if l.ToLocationID == "" || l.FromLocationID != "" {
				return nil, domain.ErrInvalidInput
			}
			if err := uc.checkLocation(l.ToLocationID, warehouse); err != nil {
				return nil, err
			}
			to := l.ToLocationID
			line.ToLocationID = &to
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// checkLocation verifica que la ubicación exista y, si se indica bodega, que
// pertenezca a ella.
func (uc *MoveUseCase) checkLocation(locationID string, warehouse *entity.Warehouse) error {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	if warehouse != nil && location.WarehouseID != warehouse.ID {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *MoveUseCase) toMoveResponse(move *entity.InventoryMove, lines []entity.InventoryMoveLine) *dto.MoveResponse {
	return toMoveResponseWithNames(uc.productRepo, move, lines)
}

func productIDs(lines []entity.InventoryMoveLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}
