package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/controllers/order"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/middleware"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		// Real-time feed of newly created orders.
		orders.GET("/ws", orderControllers.OrderWebSocket())

		orders.GET("", middleware.AnyAuth, orderControllers.GetAllOrders(db))
		orders.GET("/filter", middleware.AnyAuth, orderControllers.GetFilteredOrders(db))
		orders.GET("/my-orders", middleware.CustomerAuth, orderControllers.GetMyOrders(db))
		orders.GET("/:id", middleware.AnyAuth, orderControllers.GetOrderByID(db))

		orders.POST("", middleware.AnyAuth, orderControllers.CreateOrder(db))
		orders.PUT("/:id", middleware.AnyAuth, orderControllers.UpdateOrder(db))
		orders.PATCH("/:id/status", middleware.UserAuth, orderControllers.UpdateOrderStatus(db))
		orders.DELETE("/:id", middleware.UserAuth, orderControllers.DeleteOrder(db))
	}
}
