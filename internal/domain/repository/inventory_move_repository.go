package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// MoveFilter filtros de listado de documentos.
type MoveFilter struct {
	Status string // vacío o "all" = todos
	Search string // busca en reference y contact (case-insensitive)
}

// InventoryMoveRepository puerto de persistencia para documentos de movimiento
// y sus líneas. Las mutaciones de estado se usan dentro de transacciones.
type InventoryMoveRepository interface {
	Create(move *entity.InventoryMove, lines []entity.InventoryMoveLine) error
	GetByID(id string) (*entity.InventoryMove, error)
	// GetForUpdate bloquea la fila del documento (SELECT FOR UPDATE) para
	// serializar transiciones concurrentes sobre el mismo documento.
	GetForUpdate(id string) (*entity.InventoryMove, error)
	ListByType(moveType string, filter MoveFilter) ([]*entity.InventoryMove, error)
	// ListOpenByType documentos todavía no completados (DRAFT/WAITING/READY) de un tipo.
	ListOpenByType(moveType string) ([]*entity.InventoryMove, error)
	// ListWaitingDeliveryIDs IDs de entregas actualmente en WAITING (para el barrido).
	ListWaitingDeliveryIDs() ([]string, error)
	UpdateStatus(id, status string) error
	// UpdateHeader actualiza contact y scheduleDate del documento.
	UpdateHeader(move *entity.InventoryMove) error
	ListLines(moveID string) ([]entity.InventoryMoveLine, error)
	// ReplaceLines borra todas las líneas del documento e inserta el juego
	// nuevo. Las identidades de línea no sobreviven a una edición.
	ReplaceLines(moveID string, lines []entity.InventoryMoveLine) error
}
