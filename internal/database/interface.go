package database

import (
	"errors"

	"dukkan/internal/models"
)

// ErrNotFound, aranan kaydın bulunamadığını belirtir. Her iki store
// gerçeklemesi de yokluk durumunda bu hatayı döndürür.
var ErrNotFound = errors.New("record not found")

// DBInterface, veritabanı işlemlerini tanımlar. Handler ve servis katmanı
// bu arayüz üzerinden çalışır; JSON dosya tabanlı ve Postgres tabanlı
// gerçeklemeler birbirinin yerine geçebilir.
type DBInterface interface {
	// Product methods
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id string) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(product *models.Product) error
	DeleteProduct(id string) error
	// User methods
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	// Order methods
	CreateOrder(order *models.Order) error
	GetOrdersByUserID(userID string) ([]models.Order, error)
}
