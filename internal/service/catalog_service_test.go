package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/columnamoda/store_bot/internal/model"
)

type fakeProductStore struct {
	products map[int64]*model.Product

	updatedID    int64
	updatedStock int
}

func (f *fakeProductStore) Create(_ context.Context, product *model.Product) error {
	product.ID = 1
	return nil
}

func (f *fakeProductStore) List(_ context.Context, _ *string) ([]*model.Product, error) {
	return nil, nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id int64) (*model.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductStore) UpdateStock(_ context.Context, id int64, stock int) error {
	f.updatedID = id
	f.updatedStock = stock
	return nil
}

func TestUpdateStock(t *testing.T) {
	store := &fakeProductStore{products: map[int64]*model.Product{
		3: {ID: 3, Name: "Camisa", Stock: 5},
	}}
	svc := NewCatalogService(store, zap.NewNop())

	product, err := svc.UpdateStock(context.Background(), 3, 12)
	require.NoError(t, err)

	assert.Equal(t, 12, product.Stock)
	assert.Equal(t, int64(3), store.updatedID)
	assert.Equal(t, 12, store.updatedStock)
}

func TestUpdateStockUnknownProduct(t *testing.T) {
	store := &fakeProductStore{products: map[int64]*model.Product{}}
	svc := NewCatalogService(store, zap.NewNop())

	_, err := svc.UpdateStock(context.Background(), 42, 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Zero(t, store.updatedID)
}

func TestUpdateStockRejectsNegative(t *testing.T) {
	store := &fakeProductStore{products: map[int64]*model.Product{
		3: {ID: 3, Name: "Camisa", Stock: 5},
	}}
	svc := NewCatalogService(store, zap.NewNop())

	_, err := svc.UpdateStock(context.Background(), 3, -1)
	assert.Error(t, err)
	assert.Zero(t, store.updatedID)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewCatalogService(&fakeProductStore{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, "Camisa", "", -1, 5)
	assert.Error(t, err)

	_, err = svc.CreateProduct(ctx, "Camisa", "", 49.90, -5)
	assert.Error(t, err)

	product, err := svc.CreateProduct(ctx, "Camisa", "De lino", 49.90, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
}
