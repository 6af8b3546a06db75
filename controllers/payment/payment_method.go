package paymentController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

type PaymentMethodInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func mapPaymentMethodStatus(value string) (models.PaymentMethodStatus, bool) {
	switch models.PaymentMethodStatus(value) {
	case models.PaymentMethodActive, models.PaymentMethodInactive:
		return models.PaymentMethodStatus(value), true
	default:
		return "", false
	}
}

func CreatePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
			return
		}

		method := models.PaymentMethod{Name: input.Name, Status: models.PaymentMethodActive}
		if input.Status != "" {
			status, ok := mapPaymentMethodStatus(input.Status)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
				return
			}
			method.Status = status
		}

		if err := db.Create(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.JSON(http.StatusCreated, method)
	}
}

func GetAllPaymentMethods(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var methods []models.PaymentMethod
		if err := db.Order("created_at DESC").Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

func GetPaymentMethodByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var method models.PaymentMethod
		if err := db.First(&method, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment method not found"})
			return
		}
		c.JSON(http.StatusOK, method)
	}
}

func UpdatePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var method models.PaymentMethod
		if err := db.First(&method, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment method not found"})
			return
		}

		var input PaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if input.Name != "" {
			method.Name = input.Name
		}
		if input.Status != "" {
			status, ok := mapPaymentMethodStatus(input.Status)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
				return
			}
			method.Status = status
		}

		if err := db.Save(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, method)
	}
}

func DeletePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var method models.PaymentMethod
		if err := db.First(&method, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment method not found"})
			return
		}

		if err := db.Delete(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted successfully"})
	}
}
