package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos-gateway/internal/pkg/jwt"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxCashierIDKey = "cashier_id"
	ctxRoleKey      = "cashier_role"
	ctxTokenKey     = "bearer_token"
)

var allowedRoles = map[string]struct{}{
	"cashier": {},
	"manager": {},
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// RequireAuth verifies the bearer token and keeps the raw token in context so
// outbound store API calls can forward it unchanged.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if _, ok := allowedRoles[claims.Role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxCashierIDKey, claims.CashierID)
		c.Set(ctxRoleKey, claims.Role)
		c.Set(ctxTokenKey, token)
		c.Set("jwt_claims", map[string]any{
			"cashier_id": claims.CashierID.String(),
			"role":       claims.Role,
		})
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetCashierID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxCashierIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetToken returns the raw bearer token for forwarding upstream.
func GetToken(c *gin.Context) string {
	v, exists := c.Get(ctxTokenKey)
	if !exists {
		return ""
	}
	token, _ := v.(string)
	return token
}
