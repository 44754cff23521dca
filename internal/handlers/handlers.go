package handlers

import (
	"dukkan/internal/database"
	"dukkan/internal/models"
	"dukkan/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler, HTTP isteklerini yönetir. Veritabanı erişimi DBInterface
// üzerinden yapılır; logger istek başına yeniden oluşturulmaz, enjekte
// edilir.
type Handler struct {
	db          database.DBInterface
	logger      *zap.Logger
	cartService *services.CartService
}

// NewHandler, yeni bir Handler örneği oluşturur.
func NewHandler(db database.DBInterface, logger *zap.Logger) *Handler {
	return &Handler{
		db:          db,
		logger:      logger,
		cartService: services.NewCartService(db, logger),
	}
}

// currentUser, auth middleware'in context'e koyduğu kullanıcıyı döndürür.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
