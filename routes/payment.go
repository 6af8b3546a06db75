package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentController "github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/controllers/payment"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/middleware"
)

func SetupPaymentMethodRoutes(api *gin.RouterGroup, db *gorm.DB) {
	methods := api.Group("/payment-methods")
	{
		methods.GET("", paymentController.GetAllPaymentMethods(db))
		methods.GET("/:id", paymentController.GetPaymentMethodByID(db))

		methods.POST("", middleware.UserAuth, paymentController.CreatePaymentMethod(db))
		methods.PUT("/:id", middleware.UserAuth, paymentController.UpdatePaymentMethod(db))
		methods.DELETE("/:id", middleware.UserAuth, paymentController.DeletePaymentMethod(db))
	}
}
