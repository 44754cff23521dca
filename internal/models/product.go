package models

import (
	"time"
)

// Product, ürün modelini temsil eder.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	UserID      string    `json:"user_id" db:"user_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
