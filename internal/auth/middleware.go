package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserResolver resolves a user id to a stored user. The middleware re-checks
// storage on every request so tokens of deleted accounts stop working.
type UserResolver interface {
	GetByID(id uuid.UUID) (*models.User, error)
}

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
	users   UserResolver
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service, users UserResolver) *Middleware {
	return &Middleware{service: service, users: users}
}

// RequireAuth validates the bearer token, re-resolves the user and sets the
// request context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		user, err := m.users.GetByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			}
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("user", user)

		c.Next()
	}
}

// GetUserID is a helper function to extract the acting user's id from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetUser is a helper function to extract the resolved user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}
