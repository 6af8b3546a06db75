package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogController "github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/controllers/catalog"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/middleware"
)

func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB) {
	categories := api.Group("/categories")
	{
		categories.GET("", catalogController.GetCategories(db))
		categories.GET("/:id", catalogController.GetCategoryByID(db))

		categories.POST("", middleware.UserAuth, catalogController.CreateCategory(db))
		categories.PUT("/:id", middleware.UserAuth, catalogController.UpdateCategory(db))
		categories.DELETE("/:id", middleware.UserAuth, catalogController.DeleteCategory(db))
	}

	subCategories := api.Group("/subcategories")
	{
		subCategories.GET("", catalogController.GetSubCategories(db))
		subCategories.GET("/:id", catalogController.GetSubCategoryByID(db))

		subCategories.POST("", middleware.UserAuth, catalogController.CreateSubCategory(db))
		subCategories.PUT("/:id", middleware.UserAuth, catalogController.UpdateSubCategory(db))
		subCategories.DELETE("/:id", middleware.UserAuth, catalogController.DeleteSubCategory(db))
	}

	items := api.Group("/items")
	{
		items.GET("", catalogController.GetItems(db))
		items.GET("/:id", catalogController.GetItemByID(db))
		items.GET("/export-excel", middleware.UserAuth, catalogController.ExportItemsToExcel(db))

		items.POST("", middleware.UserAuth, catalogController.CreateItem(db))
		items.PUT("/:id", middleware.UserAuth, catalogController.UpdateItem(db))
		items.DELETE("/:id", middleware.UserAuth, catalogController.DeleteItem(db))
	}
}
