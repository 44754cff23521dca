package models

// Cart, bir kullanıcıya ait sepeti temsil eder.
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem, sepet satırını temsil eder: ürün referansı + adet.
// Aynı ürün ikinci kez eklendiğinde yeni satır açılmaz, Quantity artar.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ResolvedCartItem, sepet satırının ürün kaydıyla birleştirilmiş halidir.
type ResolvedCartItem struct {
	Quantity int     `json:"quantity"`
	Product  Product `json:"product"`
}
