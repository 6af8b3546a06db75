package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dashboardController "github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/controllers/dashboard"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/middleware"
)

func SetupDashboardRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/dashboard", middleware.UserAuth, dashboardController.GetDashboard(db))
}
