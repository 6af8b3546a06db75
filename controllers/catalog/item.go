package catalogController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

type ItemInput struct {
	Name          string             `json:"name"`
	Description   *string            `json:"description"`
	CategoryID    uint               `json:"categoryId"`
	SubCategoryID *uint              `json:"subCategoryId"`
	Quantity      *int               `json:"quantity"`
	MinQuantity   *int               `json:"minQuantity"`
	Featured      *bool              `json:"featured"`
	FeaturedUntil *time.Time         `json:"featuredUntil"`
	Status        *models.ItemStatus `json:"status"`
}

func mapItemStatus(status models.ItemStatus) bool {
	switch status {
	case models.ItemStatusAvailable, models.ItemStatusUnavailable:
		return true
	default:
		return false
	}
}

func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if input.Name == "" || input.CategoryID == 0 || input.Quantity == nil || input.MinQuantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, categoryId, quantity and minQuantity are required"})
			return
		}
		if *input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity cannot be negative"})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		if input.SubCategoryID != nil {
			var subCategory models.SubCategory
			if err := db.First(&subCategory, *input.SubCategoryID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "SubCategory not found"})
				return
			}
		}

		item := models.Item{
			Name:          input.Name,
			CategoryID:    input.CategoryID,
			SubCategoryID: input.SubCategoryID,
			Quantity:      *input.Quantity,
			MinQuantity:   *input.MinQuantity,
			Status:        models.ItemStatusAvailable,
		}
		if input.Description != nil {
			item.Description = *input.Description
		}
		if input.Featured != nil {
			item.Featured = *input.Featured
		}
		// The featured window only exists while the item is featured.
		if item.Featured {
			item.FeaturedUntil = input.FeaturedUntil
		}
		if input.Status != nil {
			if !mapItemStatus(*input.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
				return
			}
			item.Status = *input.Status
		}

		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating item"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Category").Preload("SubCategory")

		// Featured items expire once featuredUntil passes.
		if c.Query("featured") == "true" {
			query = query.Where("featured = ? AND featured_until > ?", true, time.Now())
		}
		if c.Query("lowStock") == "true" {
			query = query.Where("quantity <= min_quantity")
		}

		var items []models.Item
		if err := query.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func GetItemByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Item
		if err := db.Preload("Category").Preload("SubCategory").First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Item
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}

		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if input.CategoryID != 0 {
			var category models.Category
			if err := db.First(&category, input.CategoryID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
				return
			}
			item.CategoryID = input.CategoryID
		}
		if input.SubCategoryID != nil {
			var subCategory models.SubCategory
			if err := db.First(&subCategory, *input.SubCategoryID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "SubCategory not found"})
				return
			}
			item.SubCategoryID = input.SubCategoryID
		}

		if input.Name != "" {
			item.Name = input.Name
		}
		if input.Description != nil {
			item.Description = *input.Description
		}
		if input.Quantity != nil {
			if *input.Quantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity cannot be negative"})
				return
			}
			item.Quantity = *input.Quantity
		}
		if input.MinQuantity != nil {
			item.MinQuantity = *input.MinQuantity
		}
		if input.Featured != nil {
			item.Featured = *input.Featured
		}
		if input.FeaturedUntil != nil {
			item.FeaturedUntil = input.FeaturedUntil
		}
		if !item.Featured {
			item.FeaturedUntil = nil
		}
		if input.Status != nil {
			if !mapItemStatus(*input.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
				return
			}
			item.Status = *input.Status
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Item
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}
