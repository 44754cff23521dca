package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dukkan/internal/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// PostgresDatabase, DBInterface'in Postgres tabanlı gerçeklemesidir.
// Sepet ve sipariş içerikleri belge olarak jsonb kolonlarında tutulur;
// sipariş satırları böylece ürün tablosuna bağlı olmayan kopyalar kalır.
type PostgresDatabase struct {
	db *sql.DB
}

// NewPostgresDatabase, verilen DSN ile bağlanır ve tabloları hazırlar.
func NewPostgresDatabase(dsn string) (*PostgresDatabase, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}

	pg := &PostgresDatabase{db: db}
	if err := pg.createTables(); err != nil {
		return nil, err
	}
	return pg, nil
}

func (pg *PostgresDatabase) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		price       NUMERIC NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT '',
		user_id     TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		cart          JSONB NOT NULL DEFAULT '{"items":[]}',
		created_at    TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS orders (
		id         TEXT PRIMARY KEY,
		user_name  TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		products   JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL
	);`
	_, err := pg.db.Exec(schema)
	return err
}

// --- Product Functions ---

func (pg *PostgresDatabase) GetAllProducts() ([]models.Product, error) {
	query := `
		SELECT id, title, price, description, image_url, user_id, created_at, updated_at
		FROM products
		ORDER BY created_at
	`
	rows, err := pg.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.ImageURL, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (pg *PostgresDatabase) GetProductByID(id string) (*models.Product, error) {
	query := `
		SELECT id, title, price, description, image_url, user_id, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	var p models.Product
	err := pg.db.QueryRow(query, id).Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.ImageURL, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (pg *PostgresDatabase) CreateProduct(product *models.Product) error {
	product.ID = uuid.New().String()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	query := `
		INSERT INTO products (id, title, price, description, image_url, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := pg.db.Exec(query, product.ID, product.Title, product.Price, product.Description, product.ImageURL, product.UserID, product.CreatedAt, product.UpdatedAt)
	return err
}

func (pg *PostgresDatabase) UpdateProduct(product *models.Product) error {
	product.UpdatedAt = time.Now()

	query := `
		UPDATE products
		SET title = $2, price = $3, description = $4, image_url = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := pg.db.Exec(query, product.ID, product.Title, product.Price, product.Description, product.ImageURL, product.UpdatedAt)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct, kayıt yoksa da hata döndürmez; silme idempotenttir.
func (pg *PostgresDatabase) DeleteProduct(id string) error {
	_, err := pg.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	return err
}

// --- User Functions ---

func (pg *PostgresDatabase) CreateUser(user *models.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	if user.Cart.Items == nil {
		user.Cart.Items = []models.CartItem{}
	}

	cartJSON, err := json.Marshal(user.Cart)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, cart, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = pg.db.Exec(query, user.ID, user.Name, user.Email, user.PasswordHash, cartJSON, user.CreatedAt)
	return err
}

func (pg *PostgresDatabase) GetUserByID(id string) (*models.User, error) {
	return pg.getUser(`WHERE id = $1`, id)
}

func (pg *PostgresDatabase) GetUserByEmail(email string) (*models.User, error) {
	return pg.getUser(`WHERE email = $1`, email)
}

func (pg *PostgresDatabase) getUser(where string, arg any) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, cart, created_at
		FROM users ` + where

	var u models.User
	var cartJSON []byte
	err := pg.db.QueryRow(query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &cartJSON, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(cartJSON, &u.Cart); err != nil {
		return nil, err
	}
	if u.Cart.Items == nil {
		u.Cart.Items = []models.CartItem{}
	}
	return &u, nil
}

func (pg *PostgresDatabase) UpdateUser(user *models.User) error {
	cartJSON, err := json.Marshal(user.Cart)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, cart = $5
		WHERE id = $1
	`
	res, err := pg.db.Exec(query, user.ID, user.Name, user.Email, user.PasswordHash, cartJSON)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Order Functions ---

func (pg *PostgresDatabase) CreateOrder(order *models.Order) error {
	order.ID = uuid.New().String()
	order.CreatedAt = time.Now()

	productsJSON, err := json.Marshal(order.Products)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (id, user_name, user_id, products, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = pg.db.Exec(query, order.ID, order.User.Name, order.User.UserID, productsJSON, order.CreatedAt)
	return err
}

func (pg *PostgresDatabase) GetOrdersByUserID(userID string) ([]models.Order, error) {
	query := `
		SELECT id, user_name, user_id, products, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := pg.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var productsJSON []byte
		if err := rows.Scan(&o.ID, &o.User.Name, &o.User.UserID, &productsJSON, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(productsJSON, &o.Products); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
