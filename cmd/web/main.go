package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dukkan/internal/database"
	"dukkan/internal/handlers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newStore, ortam değişkenine göre store seçer: DATABASE_URL varsa
// Postgres, yoksa JSON dosya tabanlı store.
func newStore(logger *zap.Logger) (database.DBInterface, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		logger.Info("using postgres store")
		return database.NewPostgresDatabase(dsn)
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "./data.json"
	}
	logger.Info("using json file store", zap.String("file", dataFile))
	return database.NewDatabase(dataFile)
}

func main() {
	gin.SetMode(gin.ReleaseMode)

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := newStore(logger)
	if err != nil {
		logger.Fatal("store init failed", zap.Error(err))
	}

	h := handlers.NewHandler(db, logger)

	r := gin.New()
	r.Use(gin.Recovery())

	// Her görünüm için ayrı template seti oluştur
	templates := map[string]*template.Template{}

	templateFiles := map[string][]string{
		"admin/products":       {"templates/admin/products.html", "templates/base.html"},
		"admin/edit-product":   {"templates/admin/edit-product.html", "templates/base.html"},
		"shop/index":           {"templates/shop/index.html", "templates/base.html"},
		"shop/product-list":    {"templates/shop/product-list.html", "templates/base.html"},
		"shop/product-details": {"templates/shop/product-details.html", "templates/base.html"},
		"shop/cart":            {"templates/shop/cart.html", "templates/base.html"},
		"shop/orders":          {"templates/shop/orders.html", "templates/base.html"},
		"auth/login":           {"templates/auth/login.html", "templates/base.html"},
		"auth/signup":          {"templates/auth/signup.html", "templates/base.html"},
	}

	for name, files := range templateFiles {
		tmpl, err := template.ParseFiles(files...)
		if err != nil {
			logger.Fatal("template load failed", zap.String("name", name), zap.Error(err))
		}
		templates[name] = tmpl
	}

	r.HTMLRender = &handlers.HTMLRenderer{
		Templates: templates,
	}

	// Auth rotaları (korumasız)
	r.GET("/login", h.GetLogin)
	r.POST("/login", h.PostLogin)
	r.GET("/signup", h.GetSignup)
	r.POST("/signup", h.PostSignup)
	r.POST("/logout", h.PostLogout)

	// Vitrin rotaları
	shop := r.Group("/")
	shop.Use(h.AuthUserMiddleware())
	{
		shop.GET("", h.GetIndex)
		shop.GET("/products", h.GetProducts)
		shop.GET("/products/:productId", h.GetProduct)
		shop.GET("/cart", h.GetCart)
		shop.POST("/cart", h.PostCart)
		shop.POST("/cart-delete-item", h.PostCartDelete)
		shop.POST("/create-order", h.PostOrder)
		shop.GET("/orders", h.GetOrders)
	}

	// Admin rotaları (korumalı)
	admin := r.Group("/admin")
	admin.Use(h.AuthUserMiddleware())
	{
		admin.GET("/products", h.AdminGetProducts)
		admin.GET("/add-product", h.AdminGetAddProduct)
		admin.POST("/add-product", h.AdminPostAddProduct)
		admin.GET("/edit-product/:productId", h.AdminGetEditProduct)
		admin.POST("/edit-product", h.AdminPostEditProduct)
		admin.POST("/delete-product", h.AdminPostDeleteProduct)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Info("http server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// Sinyal gelince sunucuyu düzgün kapat
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
