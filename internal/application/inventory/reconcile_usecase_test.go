package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

func TestReconcile_PromueveEntregaTrasRecepcion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	del, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 4))
	require.NoError(t, err)
	require.Equal(t, entity.MoveStatusWAITING, del.Status)

	completeReceipt(t, f, 10)

	report, err := f.reconcileUC.ReconcileWaitingDeliveries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, []string{del.ID}, report.PromotedIDs)
	assert.Empty(t, report.FailedIDs)

	promoted, err := f.moveUC.GetByID(ctx, entity.MoveTypeDELIVERY, del.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusREADY, promoted.Status)
}

func TestReconcile_StockInsuficienteEsOmision(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	del, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 20))
	require.NoError(t, err)
	require.Equal(t, entity.MoveStatusWAITING, del.Status)

	completeReceipt(t, f, 10)

	report, err := f.reconcileUC.ReconcileWaitingDeliveries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Empty(t, report.PromotedIDs, "un faltante no promueve")
	assert.Empty(t, report.FailedIDs, "un faltante tampoco es un fallo")

	still, err := f.moveUC.GetByID(ctx, entity.MoveTypeDELIVERY, del.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusWAITING, still.Status)
}

func TestReconcile_BarreEnOrdenDeLlegada(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 6))
	require.NoError(t, err)
	second, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 6))
	require.NoError(t, err)

	completeReceipt(t, f, 12)

	report, err := f.reconcileUC.ReconcileWaitingDeliveries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, []string{first.ID, second.ID}, report.PromotedIDs,
		"el barrido visita las entregas en orden de llegada")
}

func TestReconcile_ReservasEnEsperaSeBloqueanEntreSi(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Dos entregas de 6 en espera y solo 8 unidades: la reserva de cada una
	// cuenta contra la otra, ninguna se promueve
	_, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 6))
	require.NoError(t, err)
	_, err = f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 6))
	require.NoError(t, err)

	completeReceipt(t, f, 8)

	report, err := f.reconcileUC.ReconcileWaitingDeliveries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.Empty(t, report.PromotedIDs)
	assert.Empty(t, report.FailedIDs)
}

func TestReconcile_SinEntregasEnEspera(t *testing.T) {
	f := newFixture()

	report, err := f.reconcileUC.ReconcileWaitingDeliveries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.ReconciliationReport{Checked: 0, PromotedIDs: []string{}}, report)
}

func TestReconcile_AjustePositivoDesbloquea(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	del, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 3))
	require.NoError(t, err)
	require.Equal(t, entity.MoveStatusWAITING, del.Status)

	_, err = f.moveUC.CreateMove(ctx, entity.MoveTypeADJUSTMENT, testResponsible, dto.CreateMoveRequest{
		WarehouseShortCode: "WH",
		MoveLines: []dto.MoveLineRequest{
			{ProductID: f.prodA.ID, Quantity: decimal.NewFromInt(3), ToLocationID: f.loc1.ID},
		},
	})
	require.NoError(t, err)

	report, err := f.reconcileUC.ReconcileWaitingDeliveries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{del.ID}, report.PromotedIDs)
}
