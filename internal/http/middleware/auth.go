package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userRoleKey  = "userRole"
	userPhoneKey = "userPhone"
	userIDKey    = "userID"
)

// RequireAuth validates the Bearer token and stores the claims on the
// context for role checks downstream.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied: no token provided"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied: invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if role, ok := claims["role"].(string); ok {
				c.Set(userRoleKey, role)
			}
			if phone, ok := claims["phone"].(string); ok {
				c.Set(userPhoneKey, phone)
			}
			if id, ok := claims["id"].(float64); ok {
				c.Set(userIDKey, int64(id))
			}
		}
		c.Next()
	}
}

// RequireAdmin gates admin-only routes; assumes RequireAuth ran first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.EqualFold(c.GetString(userRoleKey), "admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied: admins only"})
			return
		}
		c.Next()
	}
}

// GetUserRole returns the role claim stored by RequireAuth.
func GetUserRole(c *gin.Context) string { return c.GetString(userRoleKey) }

// GetUserPhone returns the phone claim stored by RequireAuth.
func GetUserPhone(c *gin.Context) string { return c.GetString(userPhoneKey) }
