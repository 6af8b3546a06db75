package userControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/auth"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

type UserInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	PhoneNo  string `json:"phoneNo"`
	Email    string `json:"email"`
}

// POST /api/users
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if len(input.Name) < 3 || len(input.Name) > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name must be between 3 and 100 characters"})
			return
		}
		if len(input.Username) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username must be at least 3 characters"})
			return
		}
		if len(input.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "password must be at least 6 characters"})
			return
		}

		var existing models.User
		if err := db.Where("username = ? OR email = ?", input.Username, input.Email).
			First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Username or email already exists."})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
			return
		}

		user := models.User{
			Name:     input.Name,
			Username: input.Username,
			Password: string(hashed),
			PhoneNo:  input.PhoneNo,
			Email:    input.Email,
		}

		if err := db.Create(&user).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") ||
				strings.Contains(strings.ToLower(err.Error()), "duplicate") {
				c.JSON(http.StatusConflict, gin.H{"message": "Duplicate field value exists."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

type UserLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/users/login
func LoginUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserLoginInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required."})
			return
		}

		var user models.User
		if err := db.Where("username = ?", input.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := auth.GenerateUserToken(user.ID, user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// GET /api/users
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /api/users/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /api/users/:id
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if input.Name != "" {
			user.Name = input.Name
		}
		if input.Username != "" {
			user.Username = input.Username
		}
		if input.PhoneNo != "" {
			user.PhoneNo = input.PhoneNo
		}
		if input.Email != "" {
			user.Email = input.Email
		}
		if input.Password != "" {
			if len(input.Password) < 6 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "password must be at least 6 characters"})
				return
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user"})
				return
			}
			user.Password = string(hashed)
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// DELETE /api/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
