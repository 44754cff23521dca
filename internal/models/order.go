package models

import "time"

// Order, sipariş anında alınan değişmez bir kopyadır. Ürün alanları
// referans değil kopya olarak saklanır; ürün sonradan silinse veya
// değiştirilse bile sipariş içeriği aynı kalır.
type Order struct {
	ID        string         `json:"id"`
	User      OrderUser      `json:"user"`
	Products  []OrderProduct `json:"products"`
	CreatedAt time.Time      `json:"created_at"`
}

// OrderUser, siparişi veren kullanıcının kimlik kopyasıdır.
type OrderUser struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

// OrderProduct, sipariş satırını temsil eder: ürün kopyası + adet.
type OrderProduct struct {
	Quantity int     `json:"quantity"`
	Product  Product `json:"product"`
}
