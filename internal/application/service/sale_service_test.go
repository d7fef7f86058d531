package service

import (
	"context"
	"testing"
	"time"

	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleSaleDeductsDefaultLocationOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Primus 72cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 250) // $2.50
	env.receive(t, beer, enum.LocationFrigo, 10)
	env.receive(t, beer, enum.LocationDepot, 50)

	sale, err := env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentCash,
		OrderType:     enum.OrderDineIn,
		Items:         []SaleLineInput{{ProductID: beer.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.SaleStatusCompleted, sale.Status)
	assert.Equal(t, int64(1000), sale.TotalNetUSD)
	assert.Equal(t, int64(28500), sale.TotalCDF) // 10.00 USD at 2850
	assert.Equal(t, testFallbackRate, sale.ExchangeRate)
	assert.NotEmpty(t, sale.TicketNo)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, int64(250), sale.Items[0].UnitPriceUSD)

	// Every settlement opens a kitchen order in PENDING.
	require.NotNil(t, sale.KitchenOrder)
	assert.Equal(t, enum.KitchenPending, sale.KitchenOrder.Status)

	// Only the beverage default location was decremented.
	assert.Equal(t, 6.0, env.stockAt(t, beer, enum.LocationFrigo))
	assert.Equal(t, 50.0, env.stockAt(t, beer, enum.LocationDepot))

	// The OUT movement carries the ticket number as its reason.
	movements, err := env.stock.ListMovements(ctx, &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{},
		ProductID:  &beer.ID,
	})
	require.NoError(t, err)
	var foundOut bool
	for _, m := range movements.Items {
		if m.Type == enum.MovementOut {
			foundOut = true
			assert.Equal(t, sale.TicketNo, m.Reason)
			assert.Equal(t, 4.0, m.Quantity)
		}
	}
	assert.True(t, foundOut)
}

func TestSettleSaleFailsWhenDefaultLocationShort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Skol 65cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 200)
	env.receive(t, beer, enum.LocationFrigo, 6)
	env.receive(t, beer, enum.LocationDepot, 50)

	// 7 bottles exceed the FRIGO quantity; DEPOT stock never covers a
	// short line at settlement.
	_, err := env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentCash,
		OrderType:     enum.OrderDineIn,
		Items:         []SaleLineInput{{ProductID: beer.ID, Quantity: 7}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))

	assert.Equal(t, 6.0, env.stockAt(t, beer, enum.LocationFrigo))
	assert.Equal(t, 50.0, env.stockAt(t, beer, enum.LocationDepot))

	// Nothing was persisted.
	sales, err := env.sale.ListSales(ctx, &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{},
	})
	require.NoError(t, err)
	assert.Empty(t, sales.Items)
}

func TestSettleSaleRollsBackWhenLinesJointlyExceedStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Castel 65cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 200)
	env.receive(t, beer, enum.LocationFrigo, 10)

	// Each line passes the per-line check against 10, but together they
	// need 14: the second decrement fails inside the transaction, after
	// the sale row and the first decrement were written.
	_, err := env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentCash,
		OrderType:     enum.OrderDineIn,
		Items: []SaleLineInput{
			{ProductID: beer.ID, Quantity: 7},
			{ProductID: beer.ID, Quantity: 7},
		},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))

	// Everything rolled back: stock, sale, movements.
	assert.Equal(t, 10.0, env.stockAt(t, beer, enum.LocationFrigo))

	sales, err := env.sale.ListSales(ctx, &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{},
	})
	require.NoError(t, err)
	assert.Empty(t, sales.Items)

	movements, err := env.stock.ListMovements(ctx, &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{},
		ProductID:  &beer.ID,
	})
	require.NoError(t, err)
	for _, m := range movements.Items {
		assert.NotEqual(t, enum.MovementOut, m.Type)
	}
}

func TestSettleSaleAnonymousRecordsEarnedPointsUncredited(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Nkoyi 72cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 500) // $5.00
	env.receive(t, beer, enum.LocationFrigo, 10)

	sale, err := env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentCash,
		OrderType:     enum.OrderTakeaway,
		Items:         []SaleLineInput{{ProductID: beer.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// The earned figure lands on the ticket for report parity, but with
	// no client attached nothing is credited.
	assert.Equal(t, int64(28), sale.PointsEarned) // 28500 CDF / 1000
	assert.Nil(t, sale.ClientID)

	var loyaltyRows int64
	require.NoError(t, env.db.Model(&entity.LoyaltyTransaction{}).Count(&loyaltyRows).Error)
	assert.Zero(t, loyaltyRows)
}

func TestSettleSaleEarnsPointsForClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Tembo 72cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 500) // $5.00
	env.receive(t, beer, enum.LocationFrigo, 10)

	client, err := env.client.CreateClient(ctx, &CreateClientInput{Name: "Mamadou"})
	require.NoError(t, err)

	sale, err := env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		ClientID:      &client.ID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentCash,
		OrderType:     enum.OrderTakeaway,
		Items:         []SaleLineInput{{ProductID: beer.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// 10.00 USD -> 28500 CDF -> 28 points at 1000 CDF per point.
	assert.Equal(t, int64(28), sale.PointsEarned)
	assert.Equal(t, int64(0), sale.PointsUsed)

	updated, err := env.client.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(28), updated.Points)

	history, err := env.client.ListTransactions(ctx, client.ID, &pagination.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, history.Items, 1)
	assert.Equal(t, int64(28), history.Items[0].Delta)
}

func TestSettleSaleWithPointsPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Mutzig 65cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 500)
	env.receive(t, beer, enum.LocationFrigo, 10)

	client, err := env.client.CreateClient(ctx, &CreateClientInput{Name: "Fatou"})
	require.NoError(t, err)
	require.NoError(t, env.db.Model(client).Update("points", 100).Error)

	sale, err := env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		ClientID:      &client.ID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentPoints,
		OrderType:     enum.OrderDineIn,
		Items:         []SaleLineInput{{ProductID: beer.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// 10.00 USD rounds down to the nearest 10 points.
	assert.Equal(t, int64(10), sale.PointsUsed)
	assert.Equal(t, int64(28), sale.PointsEarned)

	updated, err := env.client.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(118), updated.Points) // 100 - 10 + 28
}

func TestSettleSalePointsPaymentInsufficientBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Turbo King", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 500)
	env.receive(t, beer, enum.LocationFrigo, 10)

	client, err := env.client.CreateClient(ctx, &CreateClientInput{Name: "Blaise"})
	require.NoError(t, err)
	require.NoError(t, env.db.Model(client).Update("points", 5).Error)

	_, err = env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		ClientID:      &client.ID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentPoints,
		OrderType:     enum.OrderDineIn,
		Items:         []SaleLineInput{{ProductID: beer.ID, Quantity: 2}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	// Stock and balance untouched.
	assert.Equal(t, 10.0, env.stockAt(t, beer, enum.LocationFrigo))
	updated, err := env.client.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.Points)
}

func TestSettleSalePointsPaymentRequiresClient(t *testing.T) {
	env := newTestEnv(t)
	beer := env.createProduct(t, "Heineken 33cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 300)
	env.receive(t, beer, enum.LocationFrigo, 5)

	_, err := env.sale.SettleSale(context.Background(), &SettleSaleInput{
		UserID:        env.userID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentPoints,
		OrderType:     enum.OrderDineIn,
		Items:         []SaleLineInput{{ProductID: beer.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
}

func TestSettleSaleDeliveryRequiresDetails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plate := env.createProduct(t, "Poulet braise", enum.ProductTypeFood, enum.SaleUnitPlate)
	env.setPrice(t, plate, 800)
	env.receive(t, plate, enum.LocationCuisine, 5)

	_, err := env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentMobileMoney,
		OrderType:     enum.OrderDelivery,
		Items:         []SaleLineInput{{ProductID: plate.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))

	sale, err := env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentMobileMoney,
		OrderType:     enum.OrderDelivery,
		Delivery: &DeliveryInput{
			Address: "12 avenue Kasa-Vubu",
			Phone:   "+243810000000",
			FeeUSD:  200,
		},
		Items: []SaleLineInput{{ProductID: plate.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, sale.DeliveryInfo)
	assert.Equal(t, "12 avenue Kasa-Vubu", sale.DeliveryInfo.Address)

	// Food is checked and decremented at CUISINE.
	assert.Equal(t, 4.0, env.stockAt(t, plate, enum.LocationCuisine))
}

func TestSettleSaleRequiresConfiguredPrice(t *testing.T) {
	env := newTestEnv(t)
	beer := env.createProduct(t, "Doppel Munich", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.receive(t, beer, enum.LocationFrigo, 5)

	_, err := env.sale.SettleSale(context.Background(), &SettleSaleInput{
		UserID:        env.userID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentCash,
		OrderType:     enum.OrderDineIn,
		Items:         []SaleLineInput{{ProductID: beer.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
}

func TestSettleSaleUsesCurrentRateVersion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	beer := env.createProduct(t, "Primus 33cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 100) // $1.00
	env.receive(t, beer, enum.LocationFrigo, 5)

	_, err := env.rate.SetRate(ctx, 3000, timeAgo(time.Hour), env.userID)
	require.NoError(t, err)

	sale, err := env.sale.SettleSale(ctx, &SettleSaleInput{
		UserID:        env.userID,
		SaleSpaceID:   &env.space.ID,
		PaymentMethod: enum.PaymentCash,
		OrderType:     enum.OrderDineIn,
		Items:         []SaleLineInput{{ProductID: beer.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3000.0, sale.ExchangeRate)
	assert.Equal(t, int64(3000), sale.TotalCDF)
}
