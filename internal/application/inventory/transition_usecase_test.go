package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
)

func TestTransitionStatus_RecepcionDraftReadyDone(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec, err := f.moveUC.CreateMove(ctx, entity.MoveTypeRECEIPT, testResponsible, receiptRequest(f, 10))
	require.NoError(t, err)

	out, err := f.transitionUC.TransitionStatus(ctx, rec.ID, entity.MoveStatusREADY)
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusREADY, out.Status)

	out, err = f.transitionUC.TransitionStatus(ctx, rec.ID, entity.MoveStatusDONE)
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusDONE, out.Status)

	// Solo al completar la recepción el stock entra al libro
	snap, err := f.stockUC.ComputeStock(ctx, f.prodA.ID)
	require.NoError(t, err)
	assert.True(t, snap.OnHand.Equal(decimal.NewFromInt(10)))
	assert.True(t, snap.FreeToUse.Equal(decimal.NewFromInt(10)))
}

func TestTransitionStatus_DoneEsTerminal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	recID := completeReceipt(t, f, 10)

	_, err := f.transitionUC.TransitionStatus(ctx, recID, entity.MoveStatusREADY)
	require.Error(t, err)

	var transErr *movement.TransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, entity.MoveStatusDONE, transErr.CurrentStatus)
	assert.Empty(t, transErr.AllowedTargets)
	assert.False(t, transErr.HasShortfall())
}

func TestTransitionStatus_SaltoIlegal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec, err := f.moveUC.CreateMove(ctx, entity.MoveTypeRECEIPT, testResponsible, receiptRequest(f, 10))
	require.NoError(t, err)

	// DRAFT → DONE no existe para recepciones
	_, err = f.transitionUC.TransitionStatus(ctx, rec.ID, entity.MoveStatusDONE)
	var transErr *movement.TransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, entity.MoveStatusDRAFT, transErr.CurrentStatus)
	assert.Equal(t, []string{entity.MoveStatusREADY}, transErr.AllowedTargets)
}

func TestTransitionStatus_PromocionSinStockRechazadaConDetalle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	del, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 5))
	require.NoError(t, err)
	require.Equal(t, entity.MoveStatusWAITING, del.Status)

	_, err = f.transitionUC.TransitionStatus(ctx, del.ID, entity.MoveStatusREADY)
	var transErr *movement.TransitionError
	require.ErrorAs(t, err, &transErr)
	assert.True(t, transErr.HasShortfall())
	require.Len(t, transErr.StockChecks, 1)
	assert.Equal(t, f.prodA.ID, transErr.StockChecks[0].ProductID)
	assert.True(t, transErr.StockChecks[0].Required.Equal(decimal.NewFromInt(5)))
	assert.True(t, transErr.StockChecks[0].Available.IsZero())
}

func TestTransitionStatus_PromocionTrasRecepcion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	del, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 5))
	require.NoError(t, err)
	require.Equal(t, entity.MoveStatusWAITING, del.Status)

	completeReceipt(t, f, 10)

	out, err := f.transitionUC.TransitionStatus(ctx, del.ID, entity.MoveStatusREADY)
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusREADY, out.Status)
}

func TestTransitionStatus_ReservaPropiaNoSeCuentaEnSuPuerta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Entrega de 5 en espera: su propia línea ya figura como reserva en el libro
	del, err := f.moveUC.CreateMove(ctx, entity.MoveTypeDELIVERY, testResponsible, deliveryRequest(f, 5))
	require.NoError(t, err)
	require.Equal(t, entity.MoveStatusWAITING, del.Status)

	// Llegan exactamente 5: si la reserva propia contara, 5−5=0 y la entrega
	// jamás podría promoverse
	completeReceipt(t, f, 5)

	snap, err := f.stockUC.ComputeStock(ctx, f.prodA.ID)
	require.NoError(t, err)
	assert.True(t, snap.FreeToUse.IsZero(), "para terceros el disponible es cero")
	assert.True(t, snap.Reserved.Equal(decimal.NewFromInt(5)))

	out, err := f.transitionUC.TransitionStatus(ctx, del.ID, entity.MoveStatusREADY)
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusREADY, out.Status)

	out, err = f.transitionUC.TransitionStatus(ctx, del.ID, entity.MoveStatusDONE)
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusDONE, out.Status)

	snap, err = f.stockUC.ComputeStock(ctx, f.prodA.ID)
	require.NoError(t, err)
	assert.True(t, snap.OnHand.IsZero())
	assert.True(t, snap.Reserved.IsZero())
}

func TestTransitionStatus_DocumentoInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.transitionUC.TransitionStatus(context.Background(), "no-existe", entity.MoveStatusREADY)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTransitionStatus_EstadoDestinoInvalido(t *testing.T) {
	f := newFixture()

	_, err := f.transitionUC.TransitionStatus(context.Background(), "cualquiera", "ARCHIVED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
