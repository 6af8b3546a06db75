package postController

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

// GET /api/posts/search
//
// Multi-keyword substring match against the item name, ranked by how many
// keywords matched (then recency). Price range and payment method filters
// apply to the pricing entries after the fetch; posts whose pricing list
// empties out are dropped.
func SearchPosts(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		keywords := strings.Fields(strings.ToLower(c.Query("name")))

		query := db.Model(&models.Post{}).
			Joins("JOIN items ON items.id = posts.item_id").
			Preload("Item.Category").
			Preload("Item.SubCategory").
			Preload("Item")

		if len(keywords) > 0 {
			var conditions []string
			var args []interface{}
			for _, word := range keywords {
				conditions = append(conditions, "LOWER(items.name) LIKE ?")
				args = append(args, "%"+word+"%")
			}
			query = query.Where(strings.Join(conditions, " OR "), args...)
		}
		if categoryID := c.Query("categoryId"); categoryID != "" {
			query = query.Where("items.category_id = ?", categoryID)
		}
		if subCategoryID := c.Query("subCategoryId"); subCategoryID != "" {
			query = query.Where("items.sub_category_id = ?", subCategoryID)
		}

		var posts []models.Post
		if err := query.Order("posts.created_at DESC").Find(&posts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error searching posts"})
			return
		}

		// Relevance = number of matched keywords, computed here rather than
		// in SQL so the ordering works the same on every driver.
		if len(keywords) > 0 {
			matches := func(post models.Post) int {
				if post.Item == nil {
					return 0
				}
				name := strings.ToLower(post.Item.Name)
				count := 0
				for _, word := range keywords {
					if strings.Contains(name, word) {
						count++
					}
				}
				return count
			}
			sort.SliceStable(posts, func(i, j int) bool {
				mi, mj := matches(posts[i]), matches(posts[j])
				if mi != mj {
					return mi > mj
				}
				return posts[i].CreatedAt.After(posts[j].CreatedAt)
			})
		}

		names, err := activePaymentNames(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error searching posts"})
			return
		}

		var minPrice, maxPrice *float64
		if raw := c.Query("minPrice"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				minPrice = &v
			}
		}
		if raw := c.Query("maxPrice"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				maxPrice = &v
			}
		}
		var methodID *uint64
		if raw := c.Query("paymentMethodId"); raw != "" {
			if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
				methodID = &v
			}
		}

		views := make([]PostView, 0, len(posts))
		for _, post := range posts {
			view := buildPostView(post, names, store)

			filtered := view.Pricing[:0]
			for _, entry := range view.Pricing {
				if minPrice != nil && entry.Value < *minPrice {
					continue
				}
				if maxPrice != nil && entry.Value > *maxPrice {
					continue
				}
				if methodID != nil && uint64(entry.PaymentMethodID) != *methodID {
					continue
				}
				filtered = append(filtered, entry)
			}
			view.Pricing = filtered

			if len(view.Pricing) == 0 {
				continue
			}
			views = append(views, view)
		}

		c.JSON(http.StatusOK, views)
	}
}
