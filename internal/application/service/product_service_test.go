package service

import (
	"context"
	"testing"

	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductGeneratesSlugAndCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product, err := env.product.CreateProduct(ctx, &CreateProductInput{
		Name:     "Poulet Mayo Frites",
		Type:     enum.ProductTypeFood,
		SaleUnit: enum.SaleUnitPlate,
	})
	require.NoError(t, err)
	assert.Equal(t, "poulet-mayo-frites", product.Slug)
	assert.NotEmpty(t, product.Code)
	assert.True(t, product.Active)
	assert.True(t, product.Vendable)

	// Same name resolves to the same slug and is rejected.
	_, err = env.product.CreateProduct(ctx, &CreateProductInput{
		Name:     "Poulet  Mayo  Frites",
		Type:     enum.ProductTypeFood,
		SaleUnit: enum.SaleUnitPlate,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestCreateProductNonVendableTypeDefaultsOff(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product, err := env.product.CreateProduct(ctx, &CreateProductInput{
		Name:     "Charbon de bois",
		Type:     enum.ProductTypeNonVendable,
		SaleUnit: enum.SaleUnitPiece,
	})
	require.NoError(t, err)
	assert.False(t, product.Vendable)

	// The false must survive the INSERT, not just the returned struct:
	// a column default would silently flip it back to true.
	stored, err := env.product.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, stored.Vendable)

	vendable, err := env.product.ListVendable(ctx)
	require.NoError(t, err)
	for _, p := range vendable {
		assert.NotEqual(t, product.ID, p.ID)
	}
}

func TestListVendableReflectsCatalogWrites(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	beer := env.createProduct(t, "Primus 72cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.createProduct(t, "Skol 65cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)

	products, err := env.product.ListVendable(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	// The list is cached; hiding a product must invalidate it.
	hidden := false
	_, err = env.product.UpdateProduct(ctx, beer.ID, &UpdateProductInput{Vendable: &hidden})
	require.NoError(t, err)

	products, err = env.product.ListVendable(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.NotEqual(t, beer.ID, products[0].ID)
}

func TestSetPriceReplacesExistingLine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	beer := env.createProduct(t, "Tembo 72cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 250)
	env.setPrice(t, beer, 300)

	product, err := env.product.GetProduct(ctx, beer.ID)
	require.NoError(t, err)
	require.Len(t, product.Prices, 1)
	assert.Equal(t, int64(300), product.Prices[0].AmountUSD)
}

func TestDeletePriceRemovesLine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	beer := env.createProduct(t, "Mutzig 65cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	env.setPrice(t, beer, 250)

	product, err := env.product.GetProduct(ctx, beer.ID)
	require.NoError(t, err)
	require.Len(t, product.Prices, 1)

	require.NoError(t, env.product.DeletePrice(ctx, beer.ID, product.Prices[0].ID))

	product, err = env.product.GetProduct(ctx, beer.ID)
	require.NoError(t, err)
	assert.Empty(t, product.Prices)
}

func TestSetPriceRejectsNegativeAmounts(t *testing.T) {
	env := newTestEnv(t)

	beer := env.createProduct(t, "Heineken 33cl", enum.ProductTypeBeverage, enum.SaleUnitBottle)
	_, err := env.product.SetPrice(context.Background(), beer.ID, &PriceInput{
		SaleSpaceID: env.space.ID,
		SaleUnit:    beer.SaleUnit,
		AmountUSD:   -100,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
}
