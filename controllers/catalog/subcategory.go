package catalogController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

type SubCategoryInput struct {
	Name       string `json:"name"`
	CategoryID uint   `json:"categoryId"`
}

func CreateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.CategoryID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name and categoryId are required"})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}

		// Name is unique per parent category, not globally.
		var existing models.SubCategory
		if err := db.Where("name = ? AND category_id = ?", input.Name, input.CategoryID).
			First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "SubCategory already exists in this category"})
			return
		}

		subCategory := models.SubCategory{Name: input.Name, CategoryID: input.CategoryID}
		if err := db.Create(&subCategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating subcategory"})
			return
		}

		c.JSON(http.StatusCreated, subCategory)
	}
}

func GetSubCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subCategories []models.SubCategory
		if err := db.Preload("Category").Find(&subCategories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching subcategories"})
			return
		}
		c.JSON(http.StatusOK, subCategories)
	}
}

func GetSubCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subCategory models.SubCategory
		if err := db.Preload("Category").First(&subCategory, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "SubCategory not found"})
			return
		}
		c.JSON(http.StatusOK, subCategory)
	}
}

func UpdateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subCategory models.SubCategory
		if err := db.First(&subCategory, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "SubCategory not found"})
			return
		}

		var input SubCategoryInput
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
			subCategory.CategoryID = input.CategoryID
		}
		if input.Name != "" {
			subCategory.Name = input.Name
		}

		var existing models.SubCategory
		if err := db.Where("name = ? AND category_id = ?", subCategory.Name, subCategory.CategoryID).
			First(&existing).Error; err == nil && existing.ID != subCategory.ID {
			c.JSON(http.StatusConflict, gin.H{"message": "SubCategory already exists in this category"})
			return
		}

		if err := db.Save(&subCategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating subcategory"})
			return
		}

		c.JSON(http.StatusOK, subCategory)
	}
}

func DeleteSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subCategory models.SubCategory
		if err := db.First(&subCategory, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "SubCategory not found"})
			return
		}

		if err := db.Delete(&subCategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting subcategory"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "SubCategory deleted successfully"})
	}
}
