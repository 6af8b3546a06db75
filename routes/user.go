package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/controllers/user"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/middleware"
)

func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	{
		users.POST("", userControllers.CreateUser(db))
		users.POST("/login", userControllers.LoginUser(db))

		users.GET("", middleware.UserAuth, userControllers.GetUsers(db))
		users.GET("/:id", middleware.UserAuth, userControllers.GetUserByID(db))
		users.PUT("/:id", middleware.UserAuth, userControllers.UpdateUser(db))
		users.DELETE("/:id", middleware.UserAuth, userControllers.DeleteUser(db))
	}
}
