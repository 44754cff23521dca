package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dukkan/internal/database"
	"dukkan/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminGetProducts, mağaza sahibinin ürün listesini oluşturur. Boş liste
// geçerli bir durumdur, hata değildir.
func (h *Handler) AdminGetProducts(c *gin.Context) {
	products, err := h.db.GetAllProducts()
	if err != nil {
		h.logger.Error("admin: error getting products", zap.Error(err))
		return
	}

	c.HTML(http.StatusOK, "admin/products", gin.H{
		"prods":     products,
		"pageTitle": "Admin Products",
	})
}

// AdminGetAddProduct, boş ürün formunu oluşturur. Veri çekilmez.
func (h *Handler) AdminGetAddProduct(c *gin.Context) {
	c.HTML(http.StatusOK, "admin/edit-product", gin.H{
		"pageTitle": "Add-Product",
		"editing":   false,
	})
}

// AdminPostAddProduct, yeni bir ürün oluşturur ve ürünü oturum açmış
// kullanıcıya bağlar. Başarıda ürün listesine yönlendirir; kalıcılık
// hatasında sadece loglar, yanıt yazmaz.
func (h *Handler) AdminPostAddProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		h.logger.Error("admin: invalid price in add-product form", zap.Error(err))
		return
	}

	product := &models.Product{
		Title:       c.PostForm("title"),
		Price:       price,
		Description: c.PostForm("description"),
		ImageURL:    c.PostForm("imageURL"),
		UserID:      user.ID,
	}

	if err := h.db.CreateProduct(product); err != nil {
		h.logger.Error("admin: error creating product", zap.Error(err))
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// AdminGetEditProduct, düzenleme formunu oluşturur. edit bayrağı yoksa
// veya ürün bulunamazsa ana sayfaya yönlendirir; bu bir rota yanlış
// kullanımı sayılır, hata değildir.
func (h *Handler) AdminGetEditProduct(c *gin.Context) {
	if c.Query("edit") != "true" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	product, err := h.db.GetProductByID(c.Param("productId"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h.logger.Error("admin: error getting product for edit", zap.Error(err))
		return
	}

	c.HTML(http.StatusOK, "admin/edit-product", gin.H{
		"pageTitle": "Edit-Product",
		"editing":   true,
		"product":   product,
	})
}

// AdminPostEditProduct, ürünün dört değişken alanını yerinde günceller.
// Kimlik ve sahip değişmez.
func (h *Handler) AdminPostEditProduct(c *gin.Context) {
	product, err := h.db.GetProductByID(c.PostForm("productId"))
	if err != nil {
		h.logger.Error("admin: error getting product for update", zap.Error(err))
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		h.logger.Error("admin: invalid price in edit-product form", zap.Error(err))
		return
	}

	product.Title = c.PostForm("title")
	product.Price = price
	product.Description = c.PostForm("description")
	product.ImageURL = c.PostForm("imageURL")

	if err := h.db.UpdateProduct(product); err != nil {
		h.logger.Error("admin: error updating product", zap.Error(err))
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// AdminPostDeleteProduct, ürünü siler ve listeye yönlendirir. Silme
// idempotenttir: eşleşen kayıt olmasa da yönlendirme yapılır.
func (h *Handler) AdminPostDeleteProduct(c *gin.Context) {
	if err := h.db.DeleteProduct(c.PostForm("productId")); err != nil {
		h.logger.Error("admin: error deleting product", zap.Error(err))
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/products")
}
