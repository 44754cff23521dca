package services

import (
	"errors"

	"dukkan/internal/database"
	"dukkan/internal/models"

	"go.uber.org/zap"
)

// CartService, kullanıcı sepeti üzerindeki işlemleri yönetir. Sepet
// kullanıcı kaydının içinde yaşar; her değişiklik UpdateUser ile kalıcı
// hale getirilir.
type CartService struct {
	db     database.DBInterface
	logger *zap.Logger
}

// NewCartService, yeni bir CartService örneği oluşturur.
func NewCartService(db database.DBInterface, logger *zap.Logger) *CartService {
	return &CartService{
		db:     db,
		logger: logger,
	}
}

// AddToCart, sepete ürün ekler. Ürün zaten sepetteyse yeni satır açmaz,
// mevcut satırın adedini bir artırır.
func (cs *CartService) AddToCart(user *models.User, product models.Product) error {
	for i, item := range user.Cart.Items {
		if item.ProductID == product.ID {
			user.Cart.Items[i].Quantity++
			return cs.db.UpdateUser(user)
		}
	}

	user.Cart.Items = append(user.Cart.Items, models.CartItem{
		ProductID: product.ID,
		Quantity:  1,
	})
	return cs.db.UpdateUser(user)
}

// RemoveFromCart, eşleşen satırı sepetten çıkarır. Satır yoksa işlem
// hatasız biter; çıkarma idempotenttir.
func (cs *CartService) RemoveFromCart(user *models.User, productID string) error {
	for i, item := range user.Cart.Items {
		if item.ProductID == productID {
			user.Cart.Items = append(user.Cart.Items[:i], user.Cart.Items[i+1:]...)
			return cs.db.UpdateUser(user)
		}
	}
	return nil
}

// ClearCart, sepeti tamamen boşaltır.
func (cs *CartService) ClearCart(user *models.User) error {
	user.Cart.Items = []models.CartItem{}
	return cs.db.UpdateUser(user)
}

// ResolveCartItems, sepet satırlarındaki ürün referanslarını ürün
// kayıtlarıyla birleştirir. Sepete eklendikten sonra silinmiş ürünlerin
// satırları sonuçta yer almaz.
func (cs *CartService) ResolveCartItems(user *models.User) ([]models.ResolvedCartItem, error) {
	resolved := []models.ResolvedCartItem{}
	for _, item := range user.Cart.Items {
		product, err := cs.db.GetProductByID(item.ProductID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				cs.logger.Warn("cart item references missing product",
					zap.String("productId", item.ProductID))
				continue
			}
			return nil, err
		}
		resolved = append(resolved, models.ResolvedCartItem{
			Quantity: item.Quantity,
			Product:  *product,
		})
	}
	return resolved, nil
}
