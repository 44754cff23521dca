package handlers

import (
	"net/http"

	"dukkan/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthUserMiddleware, oturum çerezinden kullanıcıyı yükler ve context'e
// koyar. Handler'lar kullanıcıya currentUser ile erişir.
func (h *Handler) AuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := c.Cookie("user_session")
		if err != nil || session == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		email, err := c.Cookie("user_email")
		if err != nil || email == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		user, err := h.db.GetUserByEmail(email)
		if err != nil {
			h.logger.Warn("auth: session user not found", zap.String("email", email))
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// GetLogin, giriş sayfasını oluşturur.
func (h *Handler) GetLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "auth/login", gin.H{
		"pageTitle": "Login",
	})
}

// PostLogin, kullanıcı girişini yönetir.
func (h *Handler) PostLogin(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.db.GetUserByEmail(email)
	if err != nil {
		h.logger.Warn("auth: login failed, user not found", zap.String("email", email))
		c.HTML(http.StatusUnauthorized, "auth/login", gin.H{
			"pageTitle": "Login",
			"error":     "Invalid email or password",
		})
		return
	}

	if !CheckPasswordHash(password, user.PasswordHash) {
		h.logger.Warn("auth: login failed, wrong password", zap.String("email", email))
		c.HTML(http.StatusUnauthorized, "auth/login", gin.H{
			"pageTitle": "Login",
			"error":     "Invalid email or password",
		})
		return
	}

	sessionID := uuid.New().String()
	c.SetCookie("user_session", sessionID, 3600, "/", "", false, true)
	c.SetCookie("user_email", user.Email, 3600, "/", "", false, true)

	c.Redirect(http.StatusSeeOther, "/")
}

// GetSignup, kayıt sayfasını oluşturur.
func (h *Handler) GetSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "auth/signup", gin.H{
		"pageTitle": "Signup",
	})
}

// PostSignup, kullanıcı kayıt işlemini yönetir.
func (h *Handler) PostSignup(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirmPassword")

	if name == "" || email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "auth/signup", gin.H{
			"pageTitle": "Signup",
			"error":     "All fields are required",
		})
		return
	}

	if password != confirmPassword {
		c.HTML(http.StatusBadRequest, "auth/signup", gin.H{
			"pageTitle": "Signup",
			"error":     "Passwords do not match",
		})
		return
	}

	hash, err := HashPassword(password)
	if err != nil {
		h.logger.Error("auth: error hashing password", zap.Error(err))
		return
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Cart:         models.Cart{Items: []models.CartItem{}},
	}

	if err := h.db.CreateUser(user); err != nil {
		h.logger.Warn("auth: signup failed", zap.String("email", email), zap.Error(err))
		c.HTML(http.StatusBadRequest, "auth/signup", gin.H{
			"pageTitle": "Signup",
			"error":     "Email is already registered",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

// PostLogout, oturum çerezlerini temizler.
func (h *Handler) PostLogout(c *gin.Context) {
	c.SetCookie("user_session", "", -1, "/", "", false, true)
	c.SetCookie("user_email", "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// HashPassword, parolayı bcrypt ile hashler.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash, verilen parola ile hash'i karşılaştırır.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
