package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ReferenceCounterRepository = (*ReferenceCounterRepo)(nil)

// ReferenceCounterRepo contador de referencias por (bodega, tipo de documento).
type ReferenceCounterRepo struct {
	q Querier
}

// NewReferenceCounterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReferenceCounterRepository(q Querier) *ReferenceCounterRepo {
	return &ReferenceCounterRepo{q: q}
}

// NextNumber crea el contador si no existe e incrementa en una sola sentencia.
// El upsert atómico evita huecos read-then-write: dos creaciones concurrentes
// del mismo (bodega, tipo) nunca reciben el mismo número.
func (r *ReferenceCounterRepo) NextNumber(warehouseID, moveType string) (int64, error) {
	query := `
		INSERT INTO reference_counters (warehouse_id, move_type, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (warehouse_id, move_type)
		DO UPDATE SET last_number = reference_counters.last_number + 1
		RETURNING last_number`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, warehouseID, moveType).Scan(&n); err != nil {
		return 0, fmt.Errorf("next reference number: %w", err)
	}
	return n, nil
}
