package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.InventoryMoveRepository = (*InventoryMoveRepo)(nil)

const moveColumns = "id, reference, move_type, status, contact, schedule_date, responsible_id, created_at"

// InventoryMoveRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMoveRepo struct {
	q Querier
}

// NewInventoryMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMoveRepository(q Querier) *InventoryMoveRepo {
	return &InventoryMoveRepo{q: q}
}

// Create persiste el documento y sus líneas. La referencia tiene constraint
// único; una colisión se reporta como ErrReferenceConflict.
func (r *InventoryMoveRepo) Create(move *entity.InventoryMove, lines []entity.InventoryMoveLine) error {
	query := `
		INSERT INTO inventory_moves (id, reference, move_type, status, contact, schedule_date, responsible_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		move.ID, move.Reference, move.MoveType, move.Status,
		move.Contact, move.ScheduleDate, move.ResponsibleID, move.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrReferenceConflict
		}
		return fmt.Errorf("create move: %w", err)
	}
	return r.insertLines(move.ID, lines)
}

// GetByID obtiene un documento por ID (nil si no existe).
func (r *InventoryMoveRepo) GetByID(id string) (*entity.InventoryMove, error) {
	query := "SELECT " + moveColumns + " FROM inventory_moves WHERE id = $1"
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene un documento bloqueando su fila. Solo tiene sentido
// dentro de una transacción.
func (r *InventoryMoveRepo) GetForUpdate(id string) (*entity.InventoryMove, error) {
	query := "SELECT " + moveColumns + " FROM inventory_moves WHERE id = $1 FOR UPDATE"
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ListByType lista documentos de un tipo, con filtro opcional de estado y
// búsqueda en referencia/contacto.
func (r *InventoryMoveRepo) ListByType(moveType string, filter repository.MoveFilter) ([]*entity.InventoryMove, error) {
	query := "SELECT " + moveColumns + " FROM inventory_moves WHERE move_type = $1"
	args := []any{moveType}
	pos := 2
	if filter.Status != "" && filter.Status != "all" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (reference ILIKE $%d OR contact ILIKE $%d)", pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()
	return scanMoves(rows)
}

// ListOpenByType documentos todavía no completados de un tipo.
func (r *InventoryMoveRepo) ListOpenByType(moveType string) ([]*entity.InventoryMove, error) {
	query := "SELECT " + moveColumns + ` FROM inventory_moves
		WHERE move_type = $1 AND status <> $2 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, moveType, entity.MoveStatusDONE)
	if err != nil {
		return nil, fmt.Errorf("list open moves: %w", err)
	}
	defer rows.Close()
	return scanMoves(rows)
}

// ListWaitingDeliveryIDs IDs de entregas en WAITING, más antiguas primero para
// que el barrido promueva en orden de llegada.
func (r *InventoryMoveRepo) ListWaitingDeliveryIDs() ([]string, error) {
	query := `
		SELECT id FROM inventory_moves
		WHERE move_type = $1 AND status = $2 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, entity.MoveTypeDELIVERY, entity.MoveStatusWAITING)
	if err != nil {
		return nil, fmt.Errorf("list waiting deliveries: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan waiting id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpdateStatus cambia el estado del documento.
func (r *InventoryMoveRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		"UPDATE inventory_moves SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateHeader actualiza contact y schedule_date.
func (r *InventoryMoveRepo) UpdateHeader(move *entity.InventoryMove) error {
	tag, err := r.q.Exec(context.Background(),
		"UPDATE inventory_moves SET contact = $1, schedule_date = $2 WHERE id = $3",
		move.Contact, move.ScheduleDate, move.ID)
	if err != nil {
		return fmt.Errorf("update header: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListLines devuelve las líneas de un documento.
func (r *InventoryMoveRepo) ListLines(moveID string) ([]entity.InventoryMoveLine, error) {
	query := `
		SELECT id, move_id, product_id, quantity, from_location_id, to_location_id
		FROM inventory_move_lines WHERE move_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, moveID)
	if err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.InventoryMoveLine
	for rows.Next() {
		var l entity.InventoryMoveLine
		if err := rows.Scan(&l.ID, &l.MoveID, &l.ProductID, &l.Quantity, &l.FromLocationID, &l.ToLocationID); err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// ReplaceLines borra todas las líneas del documento e inserta el juego nuevo.
func (r *InventoryMoveRepo) ReplaceLines(moveID string, lines []entity.InventoryMoveLine) error {
	_, err := r.q.Exec(context.Background(),
		"DELETE FROM inventory_move_lines WHERE move_id = $1", moveID)
	if err != nil {
		return fmt.Errorf("delete lines: %w", err)
	}
	return r.insertLines(moveID, lines)
}

func (r *InventoryMoveRepo) insertLines(moveID string, lines []entity.InventoryMoveLine) error {
	query := `
		INSERT INTO inventory_move_lines (id, move_id, product_id, quantity, from_location_id, to_location_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, l := range lines {
		_, err := r.q.Exec(context.Background(), query,
			l.ID, moveID, l.ProductID, l.Quantity, l.FromLocationID, l.ToLocationID)
		if err != nil {
			return fmt.Errorf("insert line: %w", err)
		}
	}
	return nil
}

func (r *InventoryMoveRepo) scanOne(row pgx.Row) (*entity.InventoryMove, error) {
	var m entity.InventoryMove
	err := row.Scan(&m.ID, &m.Reference, &m.MoveType, &m.Status,
		&m.Contact, &m.ScheduleDate, &m.ResponsibleID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get move: %w", err)
	}
	return &m, nil
}

func scanMoves(rows pgx.Rows) ([]*entity.InventoryMove, error) {
	var list []*entity.InventoryMove
	for rows.Next() {
		var m entity.InventoryMove
		if err := rows.Scan(&m.ID, &m.Reference, &m.MoveType, &m.Status,
			&m.Contact, &m.ScheduleDate, &m.ResponsibleID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
