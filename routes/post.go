package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	postController "github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/controllers/post"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/middleware"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

func SetupPostRoutes(api *gin.RouterGroup, db *gorm.DB, store storage.ImageStore) {
	posts := api.Group("/posts")
	{
		posts.GET("", postController.GetPosts(db, store))
		posts.GET("/filter", postController.FilterPosts(db, store))
		posts.GET("/search", postController.SearchPosts(db, store))
		posts.GET("/item/:itemId", postController.GetPostsByItem(db, store))
		posts.GET("/:id", postController.GetPostByID(db, store))

		posts.POST("", middleware.AnyAuth, postController.CreatePost(db, store))
		posts.PUT("/:id", middleware.AnyAuth, postController.UpdatePost(db, store))
		posts.DELETE("/:id", middleware.AnyAuth, postController.DeletePost(db, store))
	}
}
