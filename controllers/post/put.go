package postController

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

// PUT /api/posts/:id
//
// Partial mutation through explicit operation lists instead of a full
// replace: removeImages + uploaded files for the image set, and
// addPricing / updatePricing / removePricingIds for the pricing set.
func UpdatePost(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.Post
		if err := db.First(&post, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}

		images := post.Images
		pricing := post.Pricing

		if raw := c.PostForm("removeImages"); raw != "" {
			var toRemove []string
			if err := json.Unmarshal([]byte(raw), &toRemove); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "removeImages must be a JSON array"})
				return
			}
			removed := make(map[string]bool, len(toRemove))
			for _, ref := range toRemove {
				removed[ref] = true
			}
			kept := make(models.ImageList, 0, len(images))
			for _, img := range images {
				if removed[img] {
					store.Delete(img)
					continue
				}
				kept = append(kept, img)
			}
			images = kept
		}

		newImages, err := savePostImages(c, store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store images"})
			return
		}
		images = append(images, newImages...)

		if raw := c.PostForm("addPricing"); raw != "" {
			added, err := parsePricing(raw)
			if err != nil {
				deleteImages(store, newImages)
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			// Adds are deduplicated against existing entries and each other.
			present := make(map[uint]bool, len(pricing))
			for _, entry := range pricing {
				present[entry.PaymentMethodID] = true
			}
			for _, entry := range added {
				if present[entry.PaymentMethodID] {
					continue
				}
				present[entry.PaymentMethodID] = true
				pricing = append(pricing, entry)
			}
		}

		if raw := c.PostForm("updatePricing"); raw != "" {
			updates, err := parsePricing(raw)
			if err != nil {
				deleteImages(store, newImages)
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			for _, update := range updates {
				for i := range pricing {
					if pricing[i].PaymentMethodID == update.PaymentMethodID {
						pricing[i].Value = update.Value
						break
					}
				}
			}
		}

		if raw := c.PostForm("removePricingIds"); raw != "" {
			var ids []uint
			if err := json.Unmarshal([]byte(raw), &ids); err != nil {
				deleteImages(store, newImages)
				c.JSON(http.StatusBadRequest, gin.H{"message": "removePricingIds must be a JSON array"})
				return
			}
			removed := make(map[uint]bool, len(ids))
			for _, id := range ids {
				removed[id] = true
			}
			kept := make(models.PricingList, 0, len(pricing))
			for _, entry := range pricing {
				if !removed[entry.PaymentMethodID] {
					kept = append(kept, entry)
				}
			}
			pricing = kept
		}

		if detail, ok := c.GetPostForm("detail"); ok {
			post.Detail = detail
		}
		if statusRaw := c.PostForm("status"); statusRaw != "" {
			status, err := mapPostStatus(statusRaw)
			if err != nil {
				deleteImages(store, newImages)
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
				return
			}
			post.Status = status
		}

		post.Images = images
		post.Pricing = pricing

		if err := db.Save(&post).Error; err != nil {
			deleteImages(store, newImages)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating post"})
			return
		}

		// Respond with the same shaping as a GET.
		var updated models.Post
		if err := db.
			Preload("Item.Category").
			Preload("Item.SubCategory").
			Preload("Item").
			First(&updated, post.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating post"})
			return
		}

		names, err := activePaymentNames(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating post"})
			return
		}

		c.JSON(http.StatusOK, buildPostView(updated, names, store))
	}
}
