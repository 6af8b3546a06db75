package postController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

// GET /api/posts
func GetPosts(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var posts []models.Post
		if err := db.
			Preload("Item.Category").
			Preload("Item.SubCategory").
			Preload("Item").
			Order("created_at DESC").
			Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching posts"})
			return
		}

		names, err := activePaymentNames(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching posts"})
			return
		}

		views := make([]PostView, 0, len(posts))
		for _, post := range posts {
			views = append(views, buildPostView(post, names, store))
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /api/posts/:id
func GetPostByID(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.Post
		if err := db.
			Preload("Item.Category").
			Preload("Item.SubCategory").
			Preload("Item").
			First(&post, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}

		names, err := activePaymentNames(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching post"})
			return
		}

		c.JSON(http.StatusOK, buildPostView(post, names, store))
	}
}

// GET /api/posts/item/:itemId
func GetPostsByItem(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("item_id = ?", c.Param("itemId"))
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var posts []models.Post
		if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching posts by item"})
			return
		}

		names, err := activePaymentNames(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching posts by item"})
			return
		}

		views := make([]PostView, 0, len(posts))
		for _, post := range posts {
			views = append(views, buildPostView(post, names, store))
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /api/posts/filter
func FilterPosts(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Post{}).
			Preload("Item.Category").
			Preload("Item.SubCategory").
			Preload("Item")

		if itemID := c.Query("itemId"); itemID != "" {
			query = query.Where("posts.item_id = ?", itemID)
		}
		if status := c.Query("status"); status != "" {
			query = query.Where("posts.status = ?", status)
		}

		// Item-level filters force an inner join so posts without a matching
		// item drop out.
		categoryID := c.Query("categoryId")
		subCategoryID := c.Query("subCategoryId")
		if categoryID != "" || subCategoryID != "" {
			query = query.Joins("JOIN items ON items.id = posts.item_id")
			if categoryID != "" {
				query = query.Where("items.category_id = ?", categoryID)
			}
			if subCategoryID != "" {
				query = query.Where("items.sub_category_id = ?", subCategoryID)
			}
		}

		var posts []models.Post
		if err := query.Order("posts.created_at DESC").Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error filtering posts"})
			return
		}

		names, err := activePaymentNames(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error filtering posts"})
			return
		}

		views := make([]PostView, 0, len(posts))
		for _, post := range posts {
			views = append(views, buildPostView(post, names, store))
		}
		c.JSON(http.StatusOK, views)
	}
}
