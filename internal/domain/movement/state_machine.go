// Package movement contiene los servicios de dominio puros del motor de
// inventario: la máquina de estados de documentos y el plegado del libro de
// movimientos en niveles de stock. Sin I/O; todo testeable sin base de datos.
package movement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// transitions tabla cerrada de transiciones legales por tipo de documento.
// DONE es terminal para todos los tipos; ADJUSTMENT nace en DONE y no tiene
// superficie de transición.
var transitions = map[string]map[string][]string{
	entity.MoveTypeRECEIPT: {
		entity.MoveStatusDRAFT: {entity.MoveStatusREADY},
		entity.MoveStatusREADY: {entity.MoveStatusDONE},
		entity.MoveStatusDONE:  {},
	},
	entity.MoveTypeDELIVERY: {
		entity.MoveStatusDRAFT:   {entity.MoveStatusREADY, entity.MoveStatusWAITING},
		entity.MoveStatusWAITING: {entity.MoveStatusREADY},
		entity.MoveStatusREADY:   {entity.MoveStatusDONE},
		entity.MoveStatusDONE:    {},
	},
	entity.MoveTypeADJUSTMENT: {
		entity.MoveStatusDONE: {},
	},
}

// AllowedTargets devuelve los estados destino legales desde el estado actual.
// Slice vacío para estados terminales o combinaciones desconocidas.
func AllowedTargets(moveType, status string) []string {
	byStatus, ok := transitions[moveType]
	if !ok {
		return nil
	}
	targets := byStatus[status]
	out := make([]string, len(targets))
	copy(out, targets)
	return out
}

// CanTransition indica si (tipo, estado actual) admite el estado destino.
func CanTransition(moveType, from, to string) bool {
	for _, t := range AllowedTargets(moveType, from) {
		if t == to {
			return true
		}
	}
	return false
}

// RequiresStockGate indica si la transición exige re-evaluar el stock línea a
// línea: toda promoción de una entrega hacia READY. DRAFT→WAITING es manual y
// no consulta stock.
func RequiresStockGate(moveType, to string) bool {
	return moveType == entity.MoveTypeDELIVERY && to == entity.MoveStatusREADY
}

// StockCheck resultado de evaluar una línea de entrega contra el stock disponible.
type StockCheck struct {
	ProductID string          `json:"product_id"`
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
	Satisfied bool            `json:"satisfied"`
}

// TransitionError transición rechazada: informa el estado actual, los destinos
// legales y, si la causa es falta de stock, el detalle completo por línea.
type TransitionError struct {
	MoveID         string
	MoveType       string
	CurrentStatus  string
	TargetStatus   string
	AllowedTargets []string
	StockChecks    []StockCheck
}

func (e *TransitionError) Error() string {
	if len(e.StockChecks) > 0 {
		return fmt.Sprintf("transición %s→%s rechazada para %s: stock insuficiente", e.CurrentStatus, e.TargetStatus, e.MoveID)
	}
	if len(e.AllowedTargets) == 0 {
		return fmt.Sprintf("transición %s→%s rechazada para %s: %s es un estado terminal", e.CurrentStatus, e.TargetStatus, e.MoveID, e.CurrentStatus)
	}
	return fmt.Sprintf("transición %s→%s rechazada para %s: desde %s solo se permite %s",
		e.CurrentStatus, e.TargetStatus, e.MoveID, e.CurrentStatus, strings.Join(e.AllowedTargets, ", "))
}

// HasShortfall indica si el rechazo fue por falta de stock.
func (e *TransitionError) HasShortfall() bool {
	return len(e.StockChecks) > 0
}

// CheckLines evalúa cada línea de una entrega contra los snapshots de stock:
// una línea se satisface si FreeToUse(producto) >= cantidad. La evaluación es
// por línea, como en el resto del sistema; devuelve el reporte completo y si
// todas las líneas pasaron.
func CheckLines(lines []entity.InventoryMoveLine, stocks map[string]Snapshot) ([]StockCheck, bool) {
	checks := make([]StockCheck, 0, len(lines))
	all := true
	for _, line := range lines {
		available := stocks[line.ProductID].FreeToUse
		ok := available.GreaterThanOrEqual(line.Quantity)
		if !ok {
			all = false
		}
		checks = append(checks, StockCheck{
			ProductID: line.ProductID,
			Required:  line.Quantity,
			Available: available,
			Satisfied: ok,
		})
	}
	return checks, all
}
