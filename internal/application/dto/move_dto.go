package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
)

// MoveLineRequest línea de un documento en creación o edición.
// RECEIPT/ADJUSTMENT usan to_location_id; DELIVERY usa from_location_id.
type MoveLineRequest struct {
	ProductID      string          `json:"product_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
}

// CreateMoveRequest body para crear un documento de movimiento.
type CreateMoveRequest struct {
	Contact            string            `json:"contact,omitempty"`
	ScheduleDate       *time.Time        `json:"schedule_date,omitempty"`
	WarehouseShortCode string            `json:"warehouse_short_code"`
	MoveLines          []MoveLineRequest `json:"move_lines"`
}

// EditMoveRequest body para editar un documento en DRAFT: reemplazo completo de líneas.
type EditMoveRequest struct {
	Contact      string            `json:"contact,omitempty"`
	ScheduleDate *time.Time        `json:"schedule_date,omitempty"`
	MoveLines    []MoveLineRequest `json:"move_lines"`
}

// TransitionRequest body para cambiar el estado de un documento.
type TransitionRequest struct {
	Status string `json:"status"`
}

// AdjustStockRequest body para POST /api/stock/adjust: crea un ADJUSTMENT
// directamente en DONE con una sola línea.
type AdjustStockRequest struct {
	ProductID          string          `json:"product_id"`
	LocationID         string          `json:"location_id"`
	Quantity           decimal.Decimal `json:"quantity"`
	WarehouseShortCode string          `json:"warehouse_short_code"`
}

// MoveLineResponse línea de documento en respuestas.
type MoveLineResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	FromLocationID *string         `json:"from_location_id,omitempty"`
	ToLocationID   *string         `json:"to_location_id,omitempty"`
}

// MoveResponse documento de movimiento en respuestas.
type MoveResponse struct {
	ID            string             `json:"id"`
	Reference     string             `json:"reference"`
	MoveType      string             `json:"move_type"`
	Status        string             `json:"status"`
	Contact       string             `json:"contact,omitempty"`
	ScheduleDate  *time.Time         `json:"schedule_date,omitempty"`
	ResponsibleID string             `json:"responsible_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	MoveLines     []MoveLineResponse `json:"move_lines"`
	// StockChecks presente al crear entregas: detalle por línea del chequeo de stock.
	StockChecks []movement.StockCheck `json:"stock_checks,omitempty"`
}

// MoveListResponse listado de documentos.
type MoveListResponse struct {
	Items []MoveResponse `json:"items"`
	Total int            `json:"total"`
}

// TransitionErrorResponse rechazo de transición: estado actual, destinos
// legales y, si aplica, el detalle de faltantes de stock por línea.
type TransitionErrorResponse struct {
	Code           string                `json:"code"`
	Message        string                `json:"message"`
	CurrentStatus  string                `json:"current_status"`
	AllowedTargets []string              `json:"allowed_targets"`
	StockChecks    []movement.StockCheck `json:"stock_checks,omitempty"`
}

// ReconciliationReport resultado del barrido de entregas en espera.
type ReconciliationReport struct {
	Checked     int      `json:"checked"`
	PromotedIDs []string `json:"promoted_ids"`
	FailedIDs   []string `json:"failed_ids,omitempty"`
}

// HistoryLineResponse línea del historial de movimientos.
type HistoryLineResponse struct {
	LineID       string          `json:"line_id"`
	MoveID       string          `json:"move_id"`
	Reference    string          `json:"reference"`
	MoveType     string          `json:"move_type"`
	Status       string          `json:"status"`
	Contact      string          `json:"contact,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	FromLocation *string         `json:"from_location,omitempty"`
	ToLocation   *string         `json:"to_location,omitempty"`
}
