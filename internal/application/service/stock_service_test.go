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

func TestReceiveCreatesStockAndMovement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Primus 72cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)

	movement, err := env.stock.Receive(ctx, &ReceiveInput{
		ProductID: beer.ID,
		Location:  enum.LocationDepot,
		Quantity:  24,
		Reason:    "delivery",
		UserID:    env.userID,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.MovementIn, movement.Type)
	require.NotNil(t, movement.ToLocation)
	assert.Equal(t, enum.LocationDepot, *movement.ToLocation)

	assert.Equal(t, 24.0, env.stockAt(t, beer, enum.LocationDepot))

	// Receiving again accumulates instead of overwriting.
	_, err = env.stock.Receive(ctx, &ReceiveInput{
		ProductID: beer.ID,
		Location:  enum.LocationDepot,
		Quantity:  12,
		UserID:    env.userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 36.0, env.stockAt(t, beer, enum.LocationDepot))
}

func TestTransferMovesQuantityBetweenLocations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Skol 65cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.receive(t, beer, enum.LocationDepot, 10)

	movement, err := env.stock.Transfer(ctx, &TransferInput{
		ProductID: beer.ID,
		From:      enum.LocationDepot,
		To:        enum.LocationFrigo,
		Quantity:  4,
		UserID:    env.userID,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.MovementTransfer, movement.Type)

	assert.Equal(t, 6.0, env.stockAt(t, beer, enum.LocationDepot))
	assert.Equal(t, 4.0, env.stockAt(t, beer, enum.LocationFrigo))

	_, err = env.stock.Transfer(ctx, &TransferInput{
		ProductID: beer.ID,
		From:      enum.LocationDepot,
		To:        enum.LocationFrigo,
		Quantity:  20,
		UserID:    env.userID,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))

	// A failed transfer leaves both sides untouched.
	assert.Equal(t, 6.0, env.stockAt(t, beer, enum.LocationDepot))
	assert.Equal(t, 4.0, env.stockAt(t, beer, enum.LocationFrigo))
}

func TestDeductWalksPriorityLocations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Tembo 72cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.receive(t, beer, enum.LocationFrigo, 5)
	env.receive(t, beer, enum.LocationCasier, 3)
	env.receive(t, beer, enum.LocationDepot, 4)

	movements, err := env.stock.Deduct(ctx, beer.ID, 10, "banquet", env.userID)
	require.NoError(t, err)
	require.Len(t, movements, 3)

	// Beverage priority is FRIGO, CASIER, DEPOT.
	assert.Equal(t, enum.LocationFrigo, *movements[0].FromLocation)
	assert.Equal(t, 5.0, movements[0].Quantity)
	assert.Equal(t, enum.LocationCasier, *movements[1].FromLocation)
	assert.Equal(t, 3.0, movements[1].Quantity)
	assert.Equal(t, enum.LocationDepot, *movements[2].FromLocation)
	assert.Equal(t, 2.0, movements[2].Quantity)

	assert.Equal(t, 0.0, env.stockAt(t, beer, enum.LocationFrigo))
	assert.Equal(t, 0.0, env.stockAt(t, beer, enum.LocationCasier))
	assert.Equal(t, 2.0, env.stockAt(t, beer, enum.LocationDepot))
}

func TestDeductFailsWhenTotalShort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Mutzig 65cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.receive(t, beer, enum.LocationFrigo, 3)
	env.receive(t, beer, enum.LocationDepot, 2)

	_, err := env.stock.Deduct(ctx, beer.ID, 6, "banquet", env.userID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))

	// Nothing moved: total was checked before any location was touched.
	assert.Equal(t, 3.0, env.stockAt(t, beer, enum.LocationFrigo))
	assert.Equal(t, 2.0, env.stockAt(t, beer, enum.LocationDepot))

	result, err := env.stock.ListMovements(ctx, &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{},
		ProductID:  &beer.ID,
	})
	require.NoError(t, err)
	for _, m := range result.Items {
		assert.NotEqual(t, enum.MovementOut, m.Type)
	}
}

func TestReverseMovementRestoresStockAndDeletesEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rice := env.createProduct(t, "Riz parfume", enum.ProductTypeFood, enum.SaleUnitPlate)

	movement, err := env.stock.Receive(ctx, &ReceiveInput{
		ProductID: rice.ID,
		Location:  enum.LocationEconomat,
		Quantity:  10,
		UserID:    env.userID,
	})
	require.NoError(t, err)

	require.NoError(t, env.stock.ReverseMovement(ctx, movement.ID))
	assert.Equal(t, 0.0, env.stockAt(t, rice, enum.LocationEconomat))

	// The entry is gone from the ledger.
	err = env.stock.ReverseMovement(ctx, movement.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestReverseMovementFailsWhenStockConsumed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rice := env.createProduct(t, "Riz au gras", enum.ProductTypeFood, enum.SaleUnitPlate)

	receipt, err := env.stock.Receive(ctx, &ReceiveInput{
		ProductID: rice.ID,
		Location:  enum.LocationCuisine,
		Quantity:  10,
		UserID:    env.userID,
	})
	require.NoError(t, err)

	_, err = env.stock.Loss(ctx, &LossInput{
		ProductID: rice.ID,
		Location:  enum.LocationCuisine,
		Quantity:  8,
		Reason:    "spoiled",
		UserID:    env.userID,
	})
	require.NoError(t, err)

	// Reversing the receipt would need 10 back out, only 2 remain.
	err = env.stock.ReverseMovement(ctx, receipt.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))
	assert.Equal(t, 2.0, env.stockAt(t, rice, enum.LocationCuisine))
}

func TestAuditDetectsDriftAfterReset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Turbo King", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.receive(t, beer, enum.LocationFrigo, 10)

	lines, err := env.stock.Audit(ctx, beer.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 0.0, lines[0].Delta)

	require.NoError(t, env.stock.ResetAll(ctx))

	lines, err = env.stock.Audit(ctx, beer.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 0.0, lines[0].Quantity)
	assert.Equal(t, 10.0, lines[0].LedgerSum)
	assert.Equal(t, -10.0, lines[0].Delta)
}

func TestAdjustAcceptsSignedDelta(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Heineken 33cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.receive(t, beer, enum.LocationBar, 10)

	_, err := env.stock.Adjust(ctx, &AdjustInput{
		ProductID: beer.ID,
		Location:  enum.LocationBar,
		Delta:     -2,
		Reason:    "recount",
		UserID:    env.userID,
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, env.stockAt(t, beer, enum.LocationBar))

	_, err = env.stock.Adjust(ctx, &AdjustInput{
		ProductID: beer.ID,
		Location:  enum.LocationBar,
		Delta:     0,
		Reason:    "noop",
		UserID:    env.userID,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
}
