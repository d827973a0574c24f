package services

import (
	"errors"
	"testing"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProductService(t *testing.T) *ProductService {
	t.Helper()
	return NewProductService(newTestDB(t), &stubNotifier{})
}

func TestCreateAndListProducts(t *testing.T) {
	svc := newTestProductService(t)

	created, err := svc.CreateProduct(models.Product{
		OwnerID:     "user-1",
		ImageURL:    "data:image/png;base64,iVBORw0KGgo=",
		Title:       "Clay Pot",
		Description: "Hand-thrown terracotta",
		Price:       349,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	products, err := svc.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Clay Pot", products[0].Title)
	assert.Equal(t, 349.0, products[0].Price)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", products[0].ImageURL)
}

func TestCreateProductValidation(t *testing.T) {
	svc := newTestProductService(t)

	_, err := svc.CreateProduct(models.Product{Title: "  ", Price: 100})
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	_, err = svc.CreateProduct(models.Product{Title: "Clay Pot", Price: 0})
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestProductService(t)

	keep, err := svc.CreateProduct(models.Product{Title: "Keep", Price: 100})
	require.NoError(t, err)
	remove, err := svc.CreateProduct(models.Product{Title: "Remove", Price: 200})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(remove.ID, "user-1"))
	// Unknown id is a no-op.
	require.NoError(t, svc.DeleteProduct("missing-id", "user-1"))

	products, err := svc.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, keep.ID, products[0].ID)
}

func TestDeleteProductNotifiesActingUser(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewProductService(newTestDB(t), notifier)

	created, err := svc.CreateProduct(models.Product{OwnerID: "user-1", Title: "Clay Pot", Price: 100})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(created.ID, "user-1"))

	require.Len(t, notifier.targets, 2)
	assert.Equal(t, "user-1", notifier.targets[1])
}
