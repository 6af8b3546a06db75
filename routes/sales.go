package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	salesController "github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/controllers/sales"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/middleware"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

func SetupSalesRoutes(api *gin.RouterGroup, db *gorm.DB, store storage.ImageStore) {
	sales := api.Group("/sales")
	{
		sales.GET("", middleware.AnyAuth, salesController.GetAllSales(db))
		sales.GET("/filter", middleware.AnyAuth, salesController.FilterSales(db))
		sales.GET("/:id", middleware.AnyAuth, salesController.GetSaleByID(db))

		sales.POST("", middleware.UserAuth, salesController.CreateSale(db))
		sales.PUT("/:id", middleware.UserAuth, salesController.UpdateSale(db))
		sales.PATCH("/:id/status", middleware.UserAuth, salesController.UpdateSaleStatus(db))
		sales.PATCH("/:id/payment-status", middleware.UserAuth, salesController.UpdateSalePaymentStatus(db))
		sales.PATCH("/:id/delivery-status", middleware.UserAuth, salesController.UpdateSaleDeliveryStatus(db))
		sales.DELETE("/:id", middleware.UserAuth, salesController.DeleteSale(db))
	}

	requests := api.Group("/sales-requests")
	{
		requests.GET("", middleware.AnyAuth, salesController.GetSalesRequests(db))
		requests.GET("/:id", middleware.AnyAuth, salesController.GetSalesRequestByID(db))

		requests.POST("", middleware.AnyAuth, salesController.CreateSalesRequest(db, store))
		requests.PUT("/:id", middleware.AnyAuth, salesController.UpdateSalesRequest(db, store))
		requests.PATCH("/:id/status", middleware.UserAuth, salesController.UpdateSalesRequestStatus(db))
		requests.DELETE("/:id", middleware.UserAuth, salesController.DeleteSalesRequest(db, store))
	}
}
