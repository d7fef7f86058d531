package service

import (
	"context"
	"testing"

	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSessionSnapshotsPositiveStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Primus 72cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	rice := env.createProduct(t, "Riz parfume", enum.ProductTypeFood, enum.SaleUnitPlate)
	env.receive(t, beer, enum.LocationFrigo, 10)
	env.receive(t, rice, enum.LocationCuisine, 4)

	session, err := env.invent.OpenSession(ctx, env.userID)
	require.NoError(t, err)
	assert.Equal(t, enum.InventoryOpen, session.Status)
	require.Len(t, session.Items, 2)
	for _, item := range session.Items {
		assert.Greater(t, item.ExpectedQuantity, 0.0)
	}

	// Only one session at a time.
	_, err = env.invent.OpenSession(ctx, env.userID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestRecordCountsRejectsUnknownLine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Skol 65cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.receive(t, beer, enum.LocationFrigo, 10)

	session, err := env.invent.OpenSession(ctx, env.userID)
	require.NoError(t, err)

	// DEPOT was never stocked, so there is no snapshot line for it.
	_, err = env.invent.RecordCounts(ctx, session.ID, []CountInput{
		{ProductID: beer.ID, Location: enum.LocationDepot, Actual: 3},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))

	_, err = env.invent.RecordCounts(ctx, session.ID, []CountInput{
		{ProductID: beer.ID, Location: enum.LocationFrigo, Actual: -1},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
}

func TestCloseSessionAppliesVariances(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Tembo 72cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	water := env.createProduct(t, "Eau vive 1.5L", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	rice := env.createProduct(t, "Riz au gras", enum.ProductTypeFood, enum.SaleUnitPlate)
	env.receive(t, beer, enum.LocationFrigo, 10)
	env.receive(t, water, enum.LocationDepot, 5)
	env.receive(t, rice, enum.LocationCuisine, 4)

	session, err := env.invent.OpenSession(ctx, env.userID)
	require.NoError(t, err)

	// Count beer short, water over; rice stays uncounted.
	_, err = env.invent.RecordCounts(ctx, session.ID, []CountInput{
		{ProductID: beer.ID, Location: enum.LocationFrigo, Actual: 7},
		{ProductID: water.ID, Location: enum.LocationDepot, Actual: 8},
	})
	require.NoError(t, err)

	closed, err := env.invent.CloseSession(ctx, session.ID, env.userID)
	require.NoError(t, err)
	assert.Equal(t, enum.InventoryClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)

	// -3 (beer) + 3 (water) - 4 (uncounted rice counts as zero).
	assert.Equal(t, -4.0, closed.TotalVariance)

	assert.Equal(t, 7.0, env.stockAt(t, beer, enum.LocationFrigo))
	assert.Equal(t, 8.0, env.stockAt(t, water, enum.LocationDepot))
	assert.Equal(t, 0.0, env.stockAt(t, rice, enum.LocationCuisine))

	// Shortfalls became LOSS movements, surpluses ADJUSTMENT.
	lossType := enum.MovementLoss
	losses, err := env.stock.ListMovements(ctx, &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{},
		Type:       &lossType,
	})
	require.NoError(t, err)
	assert.Len(t, losses.Items, 2)

	adjType := enum.MovementAdjustment
	adjustments, err := env.stock.ListMovements(ctx, &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{},
		Type:       &adjType,
	})
	require.NoError(t, err)
	require.Len(t, adjustments.Items, 1)
	assert.Equal(t, 3.0, adjustments.Items[0].Quantity)

	// Closing twice is rejected.
	_, err = env.invent.CloseSession(ctx, session.ID, env.userID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestCloseSessionWithNoVarianceWritesNoMovements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Mutzig 65cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.receive(t, beer, enum.LocationFrigo, 10)

	session, err := env.invent.OpenSession(ctx, env.userID)
	require.NoError(t, err)

	_, err = env.invent.RecordCounts(ctx, session.ID, []CountInput{
		{ProductID: beer.ID, Location: enum.LocationFrigo, Actual: 10},
	})
	require.NoError(t, err)

	closed, err := env.invent.CloseSession(ctx, session.ID, env.userID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, closed.TotalVariance)
	assert.Equal(t, 10.0, env.stockAt(t, beer, enum.LocationFrigo))

	lossType := enum.MovementLoss
	losses, err := env.stock.ListMovements(ctx, &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{},
		Type:       &lossType,
	})
	require.NoError(t, err)
	assert.Empty(t, losses.Items)
}
