package inventory_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// fakeStore estado en memoria compartido por todos los repos fake. Sin
// transacciones reales: el runner ejecuta el callback sobre el mismo estado.
type fakeStore struct {
	moves      map[string]*entity.InventoryMove
	moveOrder  []string
	lines      map[string][]entity.InventoryMoveLine
	counters   map[string]int64
	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
	locations  map[string]*entity.Location
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		moves:      make(map[string]*entity.InventoryMove),
		lines:      make(map[string][]entity.InventoryMoveLine),
		counters:   make(map[string]int64),
		products:   make(map[string]*entity.Product),
		warehouses: make(map[string]*entity.Warehouse),
		locations:  make(map[string]*entity.Location),
	}
}

// ── InventoryMoveRepository ──────────────────────────────────────────────────

type fakeMoveRepo struct{ s *fakeStore }

func (r *fakeMoveRepo) Create(move *entity.InventoryMove, lines []entity.InventoryMoveLine) error {
	cp := *move
	r.s.moves[move.ID] = &cp
	r.s.moveOrder = append(r.s.moveOrder, move.ID)
	r.s.lines[move.ID] = append([]entity.InventoryMoveLine(nil), lines...)
	return nil
}

func (r *fakeMoveRepo) GetByID(id string) (*entity.InventoryMove, error) {
	m, ok := r.s.moves[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMoveRepo) GetForUpdate(id string) (*entity.InventoryMove, error) {
	return r.GetByID(id)
}

func (r *fakeMoveRepo) ListByType(moveType string, filter repository.MoveFilter) ([]*entity.InventoryMove, error) {
	var out []*entity.InventoryMove
	for _, id := range r.s.moveOrder {
		m := r.s.moves[id]
		if m.MoveType != moveType {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && m.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(m.Reference), needle) &&
				!strings.Contains(strings.ToLower(m.Contact), needle) {
				continue
			}
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMoveRepo) ListOpenByType(moveType string) ([]*entity.InventoryMove, error) {
	var out []*entity.InventoryMove
	for _, id := range r.s.moveOrder {
		m := r.s.moves[id]
		if m.MoveType == moveType && m.Status != entity.MoveStatusDONE {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMoveRepo) ListWaitingDeliveryIDs() ([]string, error) {
	var ids []string
	for _, id := range r.s.moveOrder {
		m := r.s.moves[id]
		if m.MoveType == entity.MoveTypeDELIVERY && m.Status == entity.MoveStatusWAITING {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeMoveRepo) UpdateStatus(id, status string) error {
	m, ok := r.s.moves[id]
	if !ok {
		return nil
	}
	m.Status = status
	return nil
}

func (r *fakeMoveRepo) UpdateHeader(move *entity.InventoryMove) error {
	m, ok := r.s.moves[move.ID]
	if !ok {
		return nil
	}
	m.Contact = move.Contact
	m.ScheduleDate = move.ScheduleDate
	return nil
}

func (r *fakeMoveRepo) ListLines(moveID string) ([]entity.InventoryMoveLine, error) {
	return append([]entity.InventoryMoveLine(nil), r.s.lines[moveID]...), nil
}

func (r *fakeMoveRepo) ReplaceLines(moveID string, lines []entity.InventoryMoveLine) error {
	r.s.lines[moveID] = append([]entity.InventoryMoveLine(nil), lines...)
	return nil
}

// ── LedgerRepository ─────────────────────────────────────────────────────────

type fakeLedgerRepo struct{ s *fakeStore }

func (r *fakeLedgerRepo) entries(filter func(productID string) bool) []movement.LedgerEntry {
	var out []movement.LedgerEntry
	for _, moveID := range r.s.moveOrder {
		m := r.s.moves[moveID]
		for _, l := range r.s.lines[moveID] {
			if filter != nil && !filter(l.ProductID) {
				continue
			}
			out = append(out, movement.LedgerEntry{
				MoveID:         moveID,
				ProductID:      l.ProductID,
				MoveType:       m.MoveType,
				Status:         m.Status,
				Quantity:       l.Quantity,
				FromLocationID: l.FromLocationID,
				ToLocationID:   l.ToLocationID,
			})
		}
	}
	return out
}

func (r *fakeLedgerRepo) ListAll() ([]movement.LedgerEntry, error) {
	return r.entries(nil), nil
}

func (r *fakeLedgerRepo) ListByProducts(productIDs []string) ([]movement.LedgerEntry, error) {
	wanted := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}
	return r.entries(func(productID string) bool { return wanted[productID] }), nil
}

func (r *fakeLedgerRepo) ListHistory(filter repository.HistoryFilter) ([]repository.HistoryLine, error) {
	var out []repository.HistoryLine
	for _, moveID := range r.s.moveOrder {
		m := r.s.moves[moveID]
		for _, l := range r.s.lines[moveID] {
			name := ""
			if p, ok := r.s.products[l.ProductID]; ok {
				name = p.Name
			}
			out = append(out, repository.HistoryLine{
				LineID:      l.ID,
				MoveID:      moveID,
				Reference:   m.Reference,
				MoveType:    m.MoveType,
				Status:      m.Status,
				Contact:     m.Contact,
				CreatedAt:   m.CreatedAt,
				ProductID:   l.ProductID,
				ProductName: name,
				Quantity:    l.Quantity,
			})
		}
	}
	return out, nil
}

// ── ReferenceCounterRepository ───────────────────────────────────────────────

type fakeCounterRepo struct{ s *fakeStore }

func (r *fakeCounterRepo) NextNumber(warehouseID, moveType string) (int64, error) {
	key := warehouseID + "|" + moveType
	r.s.counters[key]++
	return r.s.counters[key], nil
}

// ── ProductRepository / WarehouseRepository / LocationRepository ─────────────

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeWarehouseRepo struct{ s *fakeStore }

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.s.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) GetByShortCode(shortCode string) (*entity.Warehouse, error) {
	for _, w := range r.s.warehouses {
		if w.ShortCode == shortCode {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	r.s.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	delete(r.s.warehouses, id)
	return nil
}

type fakeLocationRepo struct{ s *fakeStore }

func (r *fakeLocationRepo) Create(l *entity.Location) error {
	cp := *l
	r.s.locations[l.ID] = &cp
	return nil
}

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLocationRepo) GetByWarehouseAndShortCode(warehouseID, shortCode string) (*entity.Location, error) {
	for _, l := range r.s.locations {
		if l.WarehouseID == warehouseID && l.ShortCode == shortCode {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) List(warehouseID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.locations {
		if l.WarehouseID == warehouseID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) Delete(id string) error {
	delete(r.s.locations, id)
	return nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.InventoryMoveRepository,
	ledgerRepo repository.LedgerRepository,
	counterRepo repository.ReferenceCounterRepository,
) error) error {
	return fn(&fakeMoveRepo{s: r.s}, &fakeLedgerRepo{s: r.s}, &fakeCounterRepo{s: r.s})
}

// ── Fixture ──────────────────────────────────────────────────────────────────

// fixture arma los casos de uso sobre un store en memoria, con una bodega
// "WH", dos ubicaciones y dos productos ya sembrados.
type fixture struct {
	store        *fakeStore
	moveUC       *inventory.MoveUseCase
	transitionUC *inventory.TransitionUseCase
	stockUC      *inventory.StockUseCase
	reconcileUC  *inventory.ReconcileUseCase

	warehouse *entity.Warehouse
	loc1      *entity.Location
	loc2      *entity.Location
	prodA     *entity.Product
	prodB     *entity.Product
}

func newFixture() *fixture {
	s := newFakeStore()
	now := time.Now()

	warehouse := &entity.Warehouse{ID: uuid.New().String(), Name: "Bodega Principal", ShortCode: "WH", CreatedAt: now, UpdatedAt: now}
	s.warehouses[warehouse.ID] = warehouse
	loc1 := &entity.Location{ID: uuid.New().String(), WarehouseID: warehouse.ID, Name: "Estantería 1", ShortCode: "LOC1", CreatedAt: now}
	loc2 := &entity.Location{ID: uuid.New().String(), WarehouseID: warehouse.ID, Name: "Estantería 2", ShortCode: "LOC2", CreatedAt: now}
	s.locations[loc1.ID] = loc1
	s.locations[loc2.ID] = loc2
	prodA := &entity.Product{ID: uuid.New().String(), Name: "Tornillos", PerUnitCost: decimal.NewFromFloat(3.5), CreatedAt: now, UpdatedAt: now}
	prodB := &entity.Product{ID: uuid.New().String(), Name: "Cinta", PerUnitCost: decimal.NewFromFloat(1.2), CreatedAt: now, UpdatedAt: now}
	s.products[prodA.ID] = prodA
	s.products[prodB.ID] = prodB

	txRunner := &fakeTxRunner{s: s}
	movRepo := &fakeMoveRepo{s: s}
	ledgerRepo := &fakeLedgerRepo{s: s}
	warehouseRepo := &fakeWarehouseRepo{s: s}
	locationRepo := &fakeLocationRepo{s: s}
	productRepo := &fakeProductRepo{s: s}

	return &fixture{
		store:        s,
		moveUC:       inventory.NewMoveUseCase(txRunner, movRepo, ledgerRepo, warehouseRepo, locationRepo, productRepo),
		transitionUC: inventory.NewTransitionUseCase(txRunner, productRepo),
		stockUC:      inventory.NewStockUseCase(ledgerRepo, productRepo),
		reconcileUC:  inventory.NewReconcileUseCase(txRunner, movRepo, logger.Nop()),
		warehouse:    warehouse,
		loc1:         loc1,
		loc2:         loc2,
		prodA:        prodA,
		prodB:        prodB,
	}
}
