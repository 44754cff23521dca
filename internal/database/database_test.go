package database

import (
	"path/filepath"
	"testing"

	"dukkan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *JSONDatabase {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return db
}

func TestProductCRUD(t *testing.T) {
	db := newTestDB(t)

	product := &models.Product{
		Title:       "Test Product",
		Price:       99.99,
		Description: "A test product",
		ImageURL:    "http://example.com/image.jpg",
		UserID:      "user123",
	}
	require.NoError(t, db.CreateProduct(product))
	require.NotEmpty(t, product.ID)

	t.Run("get by id returns the stored record", func(t *testing.T) {
		got, err := db.GetProductByID(product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.Title, got.Title)
		assert.Equal(t, product.Price, got.Price)
		assert.Equal(t, "user123", got.UserID)
	})

	t.Run("get all returns every record", func(t *testing.T) {
		products, err := db.GetAllProducts()
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("update overwrites fields in place", func(t *testing.T) {
		product.Title = "Updated Product"
		product.Price = 149.99
		require.NoError(t, db.UpdateProduct(product))

		got, err := db.GetProductByID(product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated Product", got.Title)
		assert.Equal(t, 149.99, got.Price)
	})

	t.Run("update of unknown id returns ErrNotFound", func(t *testing.T) {
		err := db.UpdateProduct(&models.Product{ID: "missing"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		require.NoError(t, db.DeleteProduct(product.ID))

		_, err := db.GetProductByID(product.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete of unknown id is not an error", func(t *testing.T) {
		assert.NoError(t, db.DeleteProduct("missing"))
	})
}

func TestProductPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	db, err := NewDatabase(path)
	require.NoError(t, err)

	product := &models.Product{Title: "Durable", Price: 10}
	require.NoError(t, db.CreateProduct(product))

	// Aynı dosyayı yeniden açınca veri yerinde olmalı
	reopened, err := NewDatabase(path)
	require.NoError(t, err)

	got, err := reopened.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Durable", got.Title)
}

func TestUserStore(t *testing.T) {
	db := newTestDB(t)

	user := &models.User{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, db.CreateUser(user))
	require.NotEmpty(t, user.ID)

	t.Run("cart is initialized empty", func(t *testing.T) {
		got, err := db.GetUserByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.CartItem{}, got.Cart.Items)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := db.CreateUser(&models.User{Name: "Other", Email: "test@example.com"})
		assert.Error(t, err)
	})

	t.Run("get by email finds the user", func(t *testing.T) {
		got, err := db.GetUserByEmail("test@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("update persists cart mutations", func(t *testing.T) {
		got, err := db.GetUserByID(user.ID)
		require.NoError(t, err)

		got.Cart.Items = append(got.Cart.Items, models.CartItem{ProductID: "prod1", Quantity: 2})
		require.NoError(t, db.UpdateUser(got))

		again, err := db.GetUserByID(user.ID)
		require.NoError(t, err)
		require.Len(t, again.Cart.Items, 1)
		assert.Equal(t, 2, again.Cart.Items[0].Quantity)
	})

	t.Run("readers cannot mutate store memory", func(t *testing.T) {
		got, err := db.GetUserByID(user.ID)
		require.NoError(t, err)
		got.Cart.Items[0].Quantity = 99

		again, err := db.GetUserByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, again.Cart.Items[0].Quantity)
	})

	t.Run("unknown user returns ErrNotFound", func(t *testing.T) {
		_, err := db.GetUserByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOrderStore(t *testing.T) {
	db := newTestDB(t)

	snapshot := models.Product{ID: "prod1", Title: "Product 1", Price: 99.99}
	order := &models.Order{
		User: models.OrderUser{Name: "Test User", UserID: "user123"},
		Products: []models.OrderProduct{
			{Quantity: 2, Product: snapshot},
		},
	}
	require.NoError(t, db.CreateOrder(order))
	require.NotEmpty(t, order.ID)

	other := &models.Order{
		User:     models.OrderUser{Name: "Someone Else", UserID: "user456"},
		Products: []models.OrderProduct{},
	}
	require.NoError(t, db.CreateOrder(other))

	t.Run("filters orders by embedded user id", func(t *testing.T) {
		orders, err := db.GetOrdersByUserID("user123")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)
		assert.Equal(t, snapshot, orders[0].Products[0].Product)
	})

	t.Run("no match returns an empty slice", func(t *testing.T) {
		orders, err := db.GetOrdersByUserID("nobody")
		require.NoError(t, err)
		assert.Equal(t, []models.Order{}, orders)
	})

	t.Run("order keeps its snapshot after the product is edited", func(t *testing.T) {
		product := &models.Product{Title: "Live Product", Price: 10}
		require.NoError(t, db.CreateProduct(product))

		placed := &models.Order{
			User: models.OrderUser{Name: "Test User", UserID: "user789"},
			Products: []models.OrderProduct{
				{Quantity: 1, Product: *product},
			},
		}
		require.NoError(t, db.CreateOrder(placed))

		product.Title = "Edited Product"
		product.Price = 999
		require.NoError(t, db.UpdateProduct(product))

		orders, err := db.GetOrdersByUserID("user789")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "Live Product", orders[0].Products[0].Product.Title)
		assert.Equal(t, 10.0, orders[0].Products[0].Product.Price)
	})
}
