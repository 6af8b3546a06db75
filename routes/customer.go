package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	customerControllers "github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/controllers/customer"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/middleware"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

func SetupCustomerRoutes(api *gin.RouterGroup, db *gorm.DB, store storage.ImageStore) {
	customers := api.Group("/customers")
	{
		customers.POST("/register", customerControllers.RegisterCustomer(db, store))
		customers.POST("/login", customerControllers.LoginCustomer(db))
		customers.POST("/logout", middleware.AnyAuth, customerControllers.LogoutCustomer())

		customers.GET("", middleware.AnyAuth, customerControllers.GetCustomers(db))
		customers.GET("/:id", middleware.AnyAuth, customerControllers.GetCustomerByID(db))
		customers.PUT("/:id", middleware.AnyAuth, customerControllers.UpdateCustomer(db, store))
		customers.PATCH("/:id/status", middleware.UserAuth, customerControllers.UpdateCustomerStatus(db))
		customers.DELETE("/:id", middleware.UserAuth, customerControllers.DeleteCustomer(db, store))
	}
}
