package database

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"dukkan/internal/models"

	"github.com/google/uuid"
)

// dbData, JSON dosyasındaki tüm verileri temsil eder.
type dbData struct {
	Products []models.Product `json:"products"`
	Users    []models.User    `json:"users"`
	Orders   []models.Order   `json:"orders"`
}

// JSONDatabase, veritabanı işlemlerini tek bir JSON dosyası üzerinde
// yönetir. Her yazma işlemi dosyanın tamamını kaydeder.
type JSONDatabase struct {
	mu       sync.RWMutex
	data     dbData
	filePath string
}

// NewDatabase, yeni bir JSONDatabase örneği oluşturur ve verileri yükler.
func NewDatabase(filePath string) (*JSONDatabase, error) {
	db := &JSONDatabase{
		filePath: filePath,
	}
	if err := db.loadData(); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *JSONDatabase) loadData() error {
	if _, err := os.Stat(db.filePath); os.IsNotExist(err) {
		db.data = dbData{
			Products: []models.Product{},
			Users:    []models.User{},
			Orders:   []models.Order{},
		}
		return db.saveData()
	}

	fileData, err := os.ReadFile(db.filePath)
	if err != nil {
		return err
	}
	// Dosya boşsa hata vermemesi için kontrol
	if len(fileData) == 0 {
		db.data = dbData{
			Products: []models.Product{},
			Users:    []models.User{},
			Orders:   []models.Order{},
		}
		return nil
	}

	return json.Unmarshal(fileData, &db.data)
}

func (db *JSONDatabase) saveData() error {
	data, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(db.filePath, data, 0644)
}

// --- Product Functions ---

// GetAllProducts, tüm ürünleri döndürür.
func (db *JSONDatabase) GetAllProducts() ([]models.Product, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	products := make([]models.Product, len(db.data.Products))
	copy(products, db.data.Products)
	return products, nil
}

// GetProductByID, belirli bir ID'ye sahip ürünü döndürür.
func (db *JSONDatabase) GetProductByID(id string) (*models.Product, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, p := range db.data.Products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// CreateProduct, yeni bir ürün oluşturur ve ID atar.
func (db *JSONDatabase) CreateProduct(product *models.Product) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	product.ID = uuid.New().String()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	db.data.Products = append(db.data.Products, *product)
	return db.saveData()
}

// UpdateProduct, mevcut bir ürünü günceller.
func (db *JSONDatabase) UpdateProduct(product *models.Product) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, p := range db.data.Products {
		if p.ID == product.ID {
			product.UpdatedAt = time.Now()
			db.data.Products[i] = *product
			return db.saveData()
		}
	}
	return ErrNotFound
}

// DeleteProduct, belirli bir ID'ye sahip ürünü siler. Kayıt yoksa hata
// döndürmez; silme işlemi idempotenttir.
func (db *JSONDatabase) DeleteProduct(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, p := range db.data.Products {
		if p.ID == id {
			db.data.Products = append(db.data.Products[:i], db.data.Products[i+1:]...)
			return db.saveData()
		}
	}
	return nil
}

// --- User Functions ---

// CreateUser, yeni bir kullanıcı oluşturur.
func (db *JSONDatabase) CreateUser(user *models.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	// E-postanın zaten var olup olmadığını kontrol et
	for _, u := range db.data.Users {
		if u.Email == user.Email {
			return errors.New("email already exists")
		}
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	if user.Cart.Items == nil {
		user.Cart.Items = []models.CartItem{}
	}

	db.data.Users = append(db.data.Users, *user)
	return db.saveData()
}

// GetUserByID, belirli bir ID'ye sahip kullanıcıyı döndürür.
func (db *JSONDatabase) GetUserByID(id string) (*models.User, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, u := range db.data.Users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

// GetUserByEmail, e-posta adresine göre bir kullanıcıyı döndürür.
func (db *JSONDatabase) GetUserByEmail(email string) (*models.User, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, u := range db.data.Users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

// UpdateUser, kullanıcı bilgilerini ve sepetini günceller.
func (db *JSONDatabase) UpdateUser(user *models.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, u := range db.data.Users {
		if u.ID == user.ID {
			db.data.Users[i] = *copyUser(*user)
			return db.saveData()
		}
	}
	return ErrNotFound
}

// copyUser, sepet dilimini de kopyalayarak döndürür; çağıran taraf store
// belleğini değiştiremez.
func copyUser(u models.User) *models.User {
	items := make([]models.CartItem, len(u.Cart.Items))
	copy(items, u.Cart.Items)
	u.Cart.Items = items
	return &u
}

// --- Order Functions ---

// CreateOrder, yeni bir sipariş oluşturur. Sipariş içeriği çağıran
// tarafından doldurulmuş ürün kopyalarıdır, burada tekrar çözülmez.
func (db *JSONDatabase) CreateOrder(order *models.Order) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	order.ID = uuid.New().String()
	order.CreatedAt = time.Now()

	db.data.Orders = append(db.data.Orders, *order)
	return db.saveData()
}

// GetOrdersByUserID, gömülü kullanıcı kimliği eşleşen siparişleri döndürür.
func (db *JSONDatabase) GetOrdersByUserID(userID string) ([]models.Order, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	orders := []models.Order{}
	for _, o := range db.data.Orders {
		if o.User.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
