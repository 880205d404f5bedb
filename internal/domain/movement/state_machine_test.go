package movement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

func TestCanTransition_Recepcion(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"DRAFT a READY permitido", entity.MoveStatusDRAFT, entity.MoveStatusREADY, true},
		{"READY a DONE permitido", entity.MoveStatusREADY, entity.MoveStatusDONE, true},
		{"DRAFT a DONE rechazado", entity.MoveStatusDRAFT, entity.MoveStatusDONE, false},
		{"DRAFT a WAITING rechazado", entity.MoveStatusDRAFT, entity.MoveStatusWAITING, false},
		{"DONE a READY rechazado (terminal)", entity.MoveStatusDONE, entity.MoveStatusREADY, false},
		{"DONE a DONE rechazado (terminal)", entity.MoveStatusDONE, entity.MoveStatusDONE, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(entity.MoveTypeRECEIPT, tc.from, tc.to))
		})
	}
}

func TestCanTransition_Entrega(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"DRAFT a READY permitido", entity.MoveStatusDRAFT, entity.MoveStatusREADY, true},
		{"DRAFT a WAITING permitido (manual)", entity.MoveStatusDRAFT, entity.MoveStatusWAITING, true},
		{"WAITING a READY permitido", entity.MoveStatusWAITING, entity.MoveStatusREADY, true},
		{"WAITING a DONE rechazado", entity.MoveStatusWAITING, entity.MoveStatusDONE, false},
		{"READY a DONE permitido", entity.MoveStatusREADY, entity.MoveStatusDONE, true},
		{"READY a WAITING rechazado", entity.MoveStatusREADY, entity.MoveStatusWAITING, false},
		{"DONE terminal", entity.MoveStatusDONE, entity.MoveStatusREADY, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(entity.MoveTypeDELIVERY, tc.from, tc.to))
		})
	}
}

// Los ajustes nacen en DONE: ninguna transición es legal.
func TestCanTransition_AjusteSinSuperficie(t *testing.T) {
	for _, target := range []string{
		entity.MoveStatusDRAFT, entity.MoveStatusWAITING, entity.MoveStatusREADY, entity.MoveStatusDONE,
	} {
		assert.False(t, CanTransition(entity.MoveTypeADJUSTMENT, entity.MoveStatusDONE, target),
			"ADJUSTMENT no debe admitir transición a %s", target)
	}
	assert.Empty(t, AllowedTargets(entity.MoveTypeADJUSTMENT, entity.MoveStatusDONE))
}

func TestRequiresStockGate(t *testing.T) {
	assert.True(t, RequiresStockGate(entity.MoveTypeDELIVERY, entity.MoveStatusREADY),
		"promover una entrega a READY siempre consulta stock")
	assert.False(t, RequiresStockGate(entity.MoveTypeDELIVERY, entity.MoveStatusWAITING),
		"DRAFT a WAITING es manual, sin chequeo de stock")
	assert.False(t, RequiresStockGate(entity.MoveTypeRECEIPT, entity.MoveStatusREADY))
}

func TestTransitionError_Mensajes(t *testing.T) {
	terminal := &TransitionError{
		MoveID:        "m1",
		MoveType:      entity.MoveTypeDELIVERY,
		CurrentStatus: entity.MoveStatusDONE,
		TargetStatus:  entity.MoveStatusREADY,
	}
	assert.Contains(t, terminal.Error(), "terminal", "el rechazo desde DONE debe citar el estado terminal")
	assert.False(t, terminal.HasShortfall())

	invalid := &TransitionError{
		MoveID:         "m2",
		MoveType:       entity.MoveTypeRECEIPT,
		CurrentStatus:  entity.MoveStatusDRAFT,
		TargetStatus:   entity.MoveStatusDONE,
		AllowedTargets: []string{entity.MoveStatusREADY},
	}
	assert.Contains(t, invalid.Error(), "READY", "el rechazo debe citar los destinos legales")

	shortfall := &TransitionError{
		MoveID:        "m3",
		MoveType:      entity.MoveTypeDELIVERY,
		CurrentStatus: entity.MoveStatusWAITING,
		TargetStatus:  entity.MoveStatusREADY,
		StockChecks: []StockCheck{
			{ProductID: "p1", Required: decimal.NewFromInt(20), Available: decimal.NewFromInt(6)},
		},
	}
	assert.True(t, shortfall.HasShortfall())
	assert.Contains(t, shortfall.Error(), "stock insuficiente")
}

func TestCheckLines_ReportePorLinea(t *testing.T) {
	from := "loc-1"
	lines := []entity.InventoryMoveLine{
		{ProductID: "p1", Quantity: decimal.NewFromInt(4), FromLocationID: &from},
		{ProductID: "p2", Quantity: decimal.NewFromInt(20), FromLocationID: &from},
	}
	stocks := map[string]Snapshot{
		"p1": {OnHand: decimal.NewFromInt(10), Reserved: decimal.Zero, FreeToUse: decimal.NewFromInt(10)},
		"p2": {OnHand: decimal.NewFromInt(6), Reserved: decimal.Zero, FreeToUse: decimal.NewFromInt(6)},
	}

	checks, all := CheckLines(lines, stocks)
	require.Len(t, checks, 2, "el reporte debe cubrir todas las líneas, no solo las fallidas")
	assert.False(t, all)

	assert.True(t, checks[0].Satisfied)
	assert.False(t, checks[1].Satisfied)
	assert.True(t, checks[1].Required.Equal(decimal.NewFromInt(20)))
	assert.True(t, checks[1].Available.Equal(decimal.NewFromInt(6)))
}

// Producto sin snapshot en el mapa: disponible cero.
func TestCheckLines_ProductoSinLedger(t *testing.T) {
	from := "loc-1"
	lines := []entity.InventoryMoveLine{
		{ProductID: "desconocido", Quantity: decimal.NewFromInt(1), FromLocationID: &from},
	}
	checks, all := CheckLines(lines, map[string]Snapshot{})
	require.Len(t, checks, 1)
	assert.False(t, all)
	assert.True(t, checks[0].Available.IsZero())
}
