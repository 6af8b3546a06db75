package salesController

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

const requestImageDir = "sales-request"

func saveRequestImages(c *gin.Context, store storage.ImageStore) (models.ImageList, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	var images models.ImageList
	for _, file := range form.File["images"] {
		ref, err := store.Save(file, requestImageDir)
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

func deleteRequestImages(store storage.ImageStore, images models.ImageList) {
	for _, ref := range images {
		store.Delete(ref)
	}
}

// POST /api/sales-requests
func CreateSalesRequest(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemIDRaw := c.PostForm("itemId")
		priceRaw := c.PostForm("price")
		quantityRaw := c.PostForm("quantity")
		methodIDRaw := c.PostForm("paymentMethodId")
		unit := c.PostForm("unit")

		if itemIDRaw == "" || priceRaw == "" || quantityRaw == "" || methodIDRaw == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "itemId, price, quantity, and paymentMethodId are required",
			})
			return
		}

		itemID, err := strconv.ParseUint(itemIDRaw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "itemId must be a number"})
			return
		}
		price, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "price must be a number"})
			return
		}
		quantity, err := strconv.Atoi(quantityRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity must be a number"})
			return
		}
		methodID, err := strconv.ParseUint(methodIDRaw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "paymentMethodId must be a number"})
			return
		}

		var item models.Item
		if err := db.First(&item, itemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		var method models.PaymentMethod
		if err := db.First(&method, methodID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment method not found"})
			return
		}

		images, err := saveRequestImages(c, store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store images"})
			return
		}

		request := models.SalesRequest{
			ItemID:          uint(itemID),
			Price:           price,
			Unit:            unit,
			Quantity:        quantity,
			PaymentMethodID: uint(methodID),
			Images:          images,
			Status:          models.RequestStatusPending,
		}

		if err := db.Create(&request).Error; err != nil {
			deleteRequestImages(store, images)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create sales request"})
			return
		}

		c.JSON(http.StatusCreated, request)
	}
}

// GET /api/sales-requests
func GetSalesRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.
			Preload("Item.Category").
			Preload("Item.SubCategory").
			Preload("Item").
			Preload("PaymentMethod")

		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if itemID := c.Query("itemId"); itemID != "" {
			query = query.Where("item_id = ?", itemID)
		}

		var requests []models.SalesRequest
		if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch sales requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// GET /api/sales-requests/:id
func GetSalesRequestByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.SalesRequest
		if err := db.
			Preload("Item.Category").
			Preload("Item.SubCategory").
			Preload("Item").
			Preload("PaymentMethod").
			First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sales request not found"})
			return
		}
		c.JSON(http.StatusOK, request)
	}
}

// PUT /api/sales-requests/:id
//
// Image mutation mirrors posts: removeImages names refs to drop, uploaded
// files append.
func UpdateSalesRequest(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.SalesRequest
		if err := db.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sales request not found"})
			return
		}

		images := request.Images

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

		newImages, err := saveRequestImages(c, store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store images"})
			return
		}
		images = append(images, newImages...)

		if raw := c.PostForm("itemId"); raw != "" {
			itemID, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				deleteRequestImages(store, newImages)
				c.JSON(http.StatusBadRequest, gin.H{"message": "itemId must be a number"})
				return
			}
			var item models.Item
			if err := db.First(&item, itemID).Error; err != nil {
				deleteRequestImages(store, newImages)
				c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
				return
			}
			request.ItemID = uint(itemID)
		}
		if raw := c.PostForm("price"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				deleteRequestImages(store, newImages)
				c.JSON(http.StatusBadRequest, gin.H{"message": "price must be a number"})
				return
			}
			request.Price = price
		}
		if raw := c.PostForm("quantity"); raw != "" {
			quantity, err := strconv.Atoi(raw)
			if err != nil {
				deleteRequestImages(store, newImages)
				c.JSON(http.StatusBadRequest, gin.H{"message": "quantity must be a number"})
				return
			}
			request.Quantity = quantity
		}
		if raw := c.PostForm("paymentMethodId"); raw != "" {
			methodID, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				deleteRequestImages(store, newImages)
				c.JSON(http.StatusBadRequest, gin.H{"message": "paymentMethodId must be a number"})
				return
			}
			var method models.PaymentMethod
			if err := db.First(&method, methodID).Error; err != nil {
				deleteRequestImages(store, newImages)
				c.JSON(http.StatusNotFound, gin.H{"message": "Payment method not found"})
				return
			}
			request.PaymentMethodID = uint(methodID)
		}
		if unit, ok := c.GetPostForm("unit"); ok {
			request.Unit = unit
		}

		request.Images = images
		if err := db.Save(&request).Error; err != nil {
			deleteRequestImages(store, newImages)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update sales request"})
			return
		}

		c.JSON(http.StatusOK, request)
	}
}

// PATCH /api/sales-requests/:id/status
func UpdateSalesRequestStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input statusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
			return
		}

		status := models.RequestStatus(input.Status)
		switch status {
		case models.RequestStatusPending, models.RequestStatusApproved, models.RequestStatusRejected:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
			return
		}

		var request models.SalesRequest
		if err := db.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sales request not found"})
			return
		}

		request.Status = status
		if err := db.Save(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Status updated successfully",
			"status":  request.Status,
		})
	}
}

// DELETE /api/sales-requests/:id
func DeleteSalesRequest(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.SalesRequest
		if err := db.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sales request not found"})
			return
		}

		deleteRequestImages(store, request.Images)

		if err := db.Delete(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete sales request"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Sales request deleted successfully"})
	}
}
