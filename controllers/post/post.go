package postController

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

const postImageDir = "post"

func mapPostStatus(value string) (models.PostStatus, error) {
	switch models.PostStatus(value) {
	case models.PostStatusPending, models.PostStatusPosted, models.PostStatusCancel:
		return models.PostStatus(value), nil
	default:
		return "", errors.New("invalid post status")
	}
}

// parsePricing validates the serialized pricing array: non-empty, every entry
// carries paymentMethodId and a numeric value, no duplicate method ids.
func parsePricing(raw string) (models.PricingList, error) {
	var entries []struct {
		PaymentMethodID *uint    `json:"paymentMethodId"`
		Value           *float64 `json:"value"`
	}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, errors.New("Pricing must be valid JSON")
	}
	if len(entries) == 0 {
		return nil, errors.New("Pricing must be a non-empty array")
	}

	seen := make(map[uint]bool, len(entries))
	pricing := make(models.PricingList, 0, len(entries))
	for _, entry := range entries {
		if entry.PaymentMethodID == nil || entry.Value == nil {
			return nil, errors.New("Each pricing entry must contain paymentMethodId and value")
		}
		if seen[*entry.PaymentMethodID] {
			return nil, errors.New("Duplicate paymentMethodId detected")
		}
		seen[*entry.PaymentMethodID] = true
		pricing = append(pricing, models.PricingEntry{
			PaymentMethodID: *entry.PaymentMethodID,
			Value:           *entry.Value,
		})
	}
	return pricing, nil
}

// validateActiveMethods checks every referenced payment method in one query:
// the count of matching active rows must equal the count of distinct ids.
func validateActiveMethods(db *gorm.DB, pricing models.PricingList) error {
	ids := make([]uint, 0, len(pricing))
	for _, entry := range pricing {
		ids = append(ids, entry.PaymentMethodID)
	}
	var count int64
	if err := db.Model(&models.PaymentMethod{}).
		Where("id IN ? AND status = ?", ids, models.PaymentMethodActive).
		Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return errors.New("One or more payment methods are invalid or inactive")
	}
	return nil
}

func savePostImages(c *gin.Context, store storage.ImageStore) (models.ImageList, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	var images models.ImageList
	for _, file := range form.File["images"] {
		ref, err := store.Save(file, postImageDir)
		if err != nil {
			for _, saved := range images {
				store.Delete(saved)
			}
			return nil, err
		}
		images = append(images, ref)
	}
	return images, nil
}

func deleteImages(store storage.ImageStore, images models.ImageList) {
	for _, ref := range images {
		store.Delete(ref)
	}
}

// POST /api/posts
func CreatePost(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.PostForm("itemId")
		pricingRaw := c.PostForm("pricing")
		detail := c.PostForm("detail")

		if itemID == "" || pricingRaw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "itemId and pricing are required"})
			return
		}

		var item models.Item
		if err := db.First(&item, itemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}

		pricing, err := parsePricing(pricingRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if err := validateActiveMethods(db, pricing); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		images, err := savePostImages(c, store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store images"})
			return
		}

		post := models.Post{
			ItemID:  item.ID,
			Pricing: pricing,
			Images:  images,
			Detail:  detail,
			Status:  models.PostStatusPending,
		}

		if err := db.Create(&post).Error; err != nil {
			deleteImages(store, images)
			log.Println("Create Post Error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating post"})
			return
		}

		c.JSON(http.StatusCreated, post)
	}
}

// DELETE /api/posts/:id
func DeletePost(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.Post
		if err := db.First(&post, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}

		deleteImages(store, post.Images)

		if err := db.Delete(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting post"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
	}
}
