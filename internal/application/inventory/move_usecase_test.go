package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

const testResponsible = "00000000-0000-0000-0000-000000000099"

func receiptRequest(f *fixture, qty int64) dto.CreateMoveRequest {
	return dto.CreateMoveRequest{
		Contact:            "Proveedor Norte",
		WarehouseShortCode: "WH",
		MoveLines: []dto.MoveLineRequest{
			{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(qty), ToLocationID: f.loc1.ID},
		},
	}
}

func deliveryRequest(f *fixture, qty int64) dto.CreateMoveRequest {
	return dto.CreateMoveRequest{
		Contact:            "Cliente Sur",
		WarehouseShortCode: "WH",
		MoveLines: []dto.MoveLineRequest{
			{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(qty), FromLocationID: f.loc1.ID},
		},
	}
}

// completa una recepción: DRAFT → READY → DONE.
func completeReceipt(t *testing.T, f *fixture, qty int64) string {
	t.Helper()
	ctx := context.Background()
	rec, err := f.moveUC.CreateMove(ctx, entity.MoveTypeRECEIPT, testResponsible, receiptRequest(f, qty))
	require.NoError(t, err)
	_, err = f.transitionUC.TransitionStatus(ctx, rec.ID, entity.MoveStatusREADY)
	require.NoError(t, err)
	_, err = f.transitionUC.TransitionStatus(ctx, rec.ID, entity.MoveStatusDONE)
	require.NoError(t, err)
	return rec.ID
}

func TestCreateMove_RecepcionNaceEnDraft(t *testing.T) {
	f := newFixture()

	out, err := f.moveUC.CreateMove(context.Background(), entity.MoveTypeRECEIPT, testResponsible, receiptRequest(f, 10))
	require.NoError(t, err)

	assert.Equal(t, entity.MoveStatusDRAFT, out.Status)
	assert.Equal(t, "WH/IN/00001", out.Reference)
	assert.Len(t, out.MoveLines, 1)
	assert.Equal(t, "Tornillos", out.MoveLines[0].ProductName)
}

func TestCreateMove_SecuenciasIndependientesPorTipo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.moveUC.CreateMove(ctx, entity.MoveTypeRECEIPT, testResponsible, receiptRequest(f, 10))
	require.NoError(t, err)
	second, err := f.moveUC.CreateMove(ctx, entity.MoveTypeRECEIPT, testResponsible, receiptRequest(f, 5))
	require.NoError(t, err)
	delivery, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 1))
	require.NoError(t, err)

	assert.Equal(t, "WH/IN/00001", first.Reference)
	assert.Equal(t, "WH/IN/00002", second.Reference, "la secuencia de recepciones avanza de a uno")
	assert.Equal(t, "WH/OUT/00001", delivery.Reference, "las entregas llevan su propia secuencia")
}

func TestCreateMove_EntregaSinStockNaceEnWaiting(t *testing.T) {
	f := newFixture()

	out, err := f.moveUC.CreateMove(context.Background(), entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 4))
	require.NoError(t, err)

	assert.Equal(t, entity.MoveStatusWAITING, out.Status)
	require.Len(t, out.StockChecks, 1)
	assert.False(t, out.StockChecks[0].Satisfied)
	assert.True(t, out.StockChecks[0].Available.IsZero())
	assert.True(t, out.StockChecks[0].Required.Equal(decimal.NewFromInt(4)))
}

func TestCreateMove_EntregaConStockNaceEnReady(t *testing.T) {
	f := newFixture()
	completeReceipt(t, f, 10)

	out, err := f.moveUC.CreateMove(context.Background(), entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 4))
	require.NoError(t, err)

	assert.Equal(t, entity.MoveStatusREADY, out.Status)
	require.Len(t, out.StockChecks, 1)
	assert.True(t, out.StockChecks[0].Satisfied)
	assert.True(t, out.StockChecks[0].Available.Equal(decimal.NewFromInt(10)))
}

func TestCreateMove_AjusteNaceEnDone(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.moveUC.CreateMove(ctx, entity.MoveTypeADJUSTMENT, testResponsible, dto.CreateMoveRequest{
		WarehouseShortCode: "WH",
		MoveLines: []dto.MoveLineRequest{
			{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(7), ToLocationID: f.loc2.ID},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MoveStatusDONE, out.Status)
	assert.Equal(t, "WH/ADJ/00001", out.Reference)

	// El ajuste muta el libro de inmediato
	snap, err := f.stockUC.ComputeStock(ctx, f.prodA.ID)
	require.NoError(t, err)
	assert.True(t, snap.OnHand.Equal(decimal.NewFromInt(7)))
	assert.True(t, snap.FreeToUse.Equal(decimal.NewFromInt(7)))
}

func TestCreateMove_ValidacionDeLineas(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cases := []struct {
		name string
		tipo string
		line dto.MoveLineRequest
	}{
		{"entrega con ubicación destino", entity.MoveTypeDELIVERY,
			dto.MoveLineRequest{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(1), FromLocationID: f.loc1.ID, ToLocationID: f.loc2.ID}},
		{"entrega sin ubicación origen", entity.MoveTypeDELIVERY,
			dto.MoveLineRequest{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(1)}},
		{"recepción con ubicación origen", entity.MoveTypeRECEIPT,
			dto.MoveLineRequest{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(1), FromLocationID: f.loc1.ID}},
		{"cantidad cero", entity.MoveTypeRECEIPT,
			dto.MoveLineRequest{ProductID: f.prodA.ID, Quantity: decimal.Zero, ToLocationID: f.loc1.ID}},
		{"cantidad negativa", entity.MoveTypeRECEIPT,
			dto.MoveLineRequest{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(-3), ToLocationID: f.loc1.ID}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.moveUC.CreateMove(ctx, tc.tipo, testResponsible, dto.CreateMoveRequest{
				WarehouseShortCode: "WH",
				MoveLines:          []dto.MoveLineRequest{tc.line},
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateMove_BodegaInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.moveUC.CreateMove(context.Background(), entity.MoveTypeRECEIPT, testResponsible, dto.CreateMoveRequest{
		WarehouseShortCode: "NOEXISTE",
		MoveLines: []dto.MoveLineRequest{
			{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(1), ToLocationID: f.loc1.ID},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateMove_AjusteExigeUbicacionDeLaBodega(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Segunda bodega sin relación con loc1
	otra := entity.Warehouse{ID: "w2", Name: "Anexa", ShortCode: "WH2"}
	f.store.warehouses[otra.ID] = &otra

	_, err := f.moveUC.CreateMove(ctx, entity.MoveTypeADJUSTMENT, testResponsible, dto.CreateMoveRequest{
		WarehouseShortCode: "WH2",
		MoveLines: []dto.MoveLineRequest{
			{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(1), ToLocationID: f.loc1.ID},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la ubicación del ajuste debe pertenecer a la bodega indicada")
}

func TestReplaceLines_SoloEnDraft(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec, err := f.moveUC.CreateMove(ctx, entity.MoveTypeRECEIPT, testResponsible, receiptRequest(f, 10))
	require.NoError(t, err)
	originalLineID := rec.MoveLines[0].ID

	edited, err := f.moveUC.ReplaceLines(ctx, entity.MoveTypeRECEIPT, rec.ID, dto.EditMoveRequest{
		Contact: "Proveedor Sur",
		MoveLines: []dto.MoveLineRequest{
			{ProductID: f.prodB.ID, Quantity: decimal.NewFromInt(3), ToLocationID: f.loc2.ID},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Proveedor Sur", edited.Contact)
	require.Len(t, edited.MoveLines, 1)
	assert.Equal(t, f.prodB.ID, edited.MoveLines[0].ProductID)
	assert.NotEqual(t, originalLineID, edited.MoveLines[0].ID,
		"la edición reemplaza el juego completo: las identidades de línea no sobreviven")

	// Fuera de DRAFT la edición se rechaza
	_, err = f.transitionUC.TransitionStatus(ctx, rec.ID, entity.MoveStatusREADY)
	require.NoError(t, err)
	_, err = f.moveUC.ReplaceLines(ctx, entity.MoveTypeRECEIPT, rec.ID, dto.EditMoveRequest{
		MoveLines: []dto.MoveLineRequest{
			{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(1), ToLocationID: f.loc1.ID},
		},
	})
	assert.ErrorIs(t, err, domain.ErrImmutableState)
}

func TestReplaceLines_TipoEquivocado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec, err := f.moveUC.CreateMove(ctx, entity.MoveTypeRECEIPT, testResponsible, receiptRequest(f, 10))
	require.NoError(t, err)

	_, err = f.moveUC.ReplaceLines(ctx, entity.MoveTypeDELIVERY, rec.ID, dto.EditMoveRequest{
		MoveLines: []dto.MoveLineRequest{
			{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(1), FromLocationID: f.loc1.ID},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "un documento no es visible bajo otro tipo")
}

func TestListHistory_DevuelveLineasConReferencia(t *testing.T) {
	f := newFixture()
	completeReceipt(t, f, 10)

	out, err := f.moveUC.ListHistory(context.Background(), repository.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "WH/IN/00001", out[0].Reference)
	assert.Equal(t, "Tornillos", out[0].ProductName)
	assert.Equal(t, entity.MoveStatusDONE, out[0].Status)
}
