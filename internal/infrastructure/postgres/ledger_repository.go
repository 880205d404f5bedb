package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo vista read-only del libro de movimientos: líneas unidas al tipo y
// estado de su documento padre. El stock se pliega siempre desde aquí.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerQuery = `
	SELECT l.move_id, l.product_id, m.move_type, m.status, l.quantity, l.from_location_id, l.to_location_id
	FROM inventory_move_lines l
	JOIN inventory_moves m ON m.id = l.move_id`

// ListAll todas las entradas del libro en un solo fetch.
func (r *LedgerRepo) ListAll() ([]movement.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), ledgerQuery)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListByProducts entradas de los productos indicados, un solo fetch.
func (r *LedgerRepo) ListByProducts(productIDs []string) ([]movement.LedgerEntry, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(context.Background(), ledgerQuery+" WHERE l.product_id = ANY($1)", productIDs)
	if err != nil {
		return nil, fmt.Errorf("list ledger by products: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListHistory historial de líneas con referencia, contacto y nombres resueltos.
func (r *LedgerRepo) ListHistory(filter repository.HistoryFilter) ([]repository.HistoryLine, error) {
	query := `
		SELECT l.id, m.id, m.reference, m.move_type, m.status, m.contact, m.created_at,
		       l.product_id, p.name, l.quantity, lf.name, lt.name
		FROM inventory_move_lines l
		JOIN inventory_moves m ON m.id = l.move_id
		JOIN products p ON p.id = l.product_id
		LEFT JOIN locations lf ON lf.id = l.from_location_id
		LEFT JOIN locations lt ON lt.id = l.to_location_id
		WHERE 1=1`
	var args []any
	pos := 1
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (m.reference ILIKE $%d OR m.contact ILIKE $%d OR p.name ILIKE $%d)", pos, pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND m.created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND m.created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += " ORDER BY m.created_at DESC, l.id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var list []repository.HistoryLine
	for rows.Next() {
		var h repository.HistoryLine
		if err := rows.Scan(&h.LineID, &h.MoveID, &h.Reference, &h.MoveType, &h.Status,
			&h.Contact, &h.CreatedAt, &h.ProductID, &h.ProductName, &h.Quantity,
			&h.FromLocationName, &h.ToLocationName); err != nil {
			return nil, fmt.Errorf("scan history line: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

func scanEntries(rows pgx.Rows) ([]movement.LedgerEntry, error) {
	var entries []movement.LedgerEntry
	for rows.Next() {
		var e movement.LedgerEntry
		if err := rows.Scan(&e.MoveID, &e.ProductID, &e.MoveType, &e.Status,
			&e.Quantity, &e.FromLocationID, &e.ToLocationID); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
