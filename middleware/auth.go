package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/auth"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// CustomerAuth accepts only customer tokens ({id, type}).
func CustomerAuth(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid or expired token"})
		c.Abort()
		return
	}

	customerType, ok := claims["type"].(string)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "Customer account required"})
		c.Abort()
		return
	}

	c.Set("customer_id", uint(claims["id"].(float64)))
	c.Set("customer_type", customerType)
	c.Next()
}

// UserAuth accepts only staff tokens ({id, username, role}).
func UserAuth(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid or expired token"})
		c.Abort()
		return
	}

	if role, _ := claims["role"].(string); role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"message": "Staff account required"})
		c.Abort()
		return
	}

	c.Set("user_id", uint(claims["id"].(float64)))
	c.Next()
}

// AnyAuth accepts either principal type.
func AnyAuth(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid or expired token"})
		c.Abort()
		return
	}

	if role, _ := claims["role"].(string); role == "admin" {
		c.Set("user_id", uint(claims["id"].(float64)))
	} else {
		c.Set("customer_id", uint(claims["id"].(float64)))
		if customerType, ok := claims["type"].(string); ok {
			c.Set("customer_type", customerType)
		}
	}
	c.Next()
}
