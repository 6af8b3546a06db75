package salesController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

var errInsufficientStock = errors.New("insufficient stock")

// -------- Request structs --------

type CreateSaleInput struct {
	OrderID    *uint    `json:"orderId"`
	CustomerID *uint    `json:"customerId"`
	ItemID     *uint    `json:"itemId"`
	Quantity   *int     `json:"quantity"`
	Price      *float64 `json:"price"`
	TotalPrice *float64 `json:"totalPrice"`
	PaidAmount *float64 `json:"paidAmount"`
}

type UpdateSaleInput struct {
	OrderID    *uint    `json:"orderId"`
	CustomerID *uint    `json:"customerId"`
	ItemID     *uint    `json:"itemId"`
	Quantity   *int     `json:"quantity"`
	Price      *float64 `json:"price"`
	TotalPrice *float64 `json:"totalPrice"`
	PaidAmount *float64 `json:"paidAmount"`
}

type statusInput struct {
	Status string `json:"status"`
}

// -------- Handlers --------

// POST /api/sales
func CreateSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateSaleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if input.Price == nil || input.TotalPrice == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "price and totalPrice are required"})
			return
		}

		if input.OrderID != nil {
			var order models.Order
			if err := db.First(&order, *input.OrderID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
		}
		if input.CustomerID != nil {
			var customer models.Customer
			if err := db.First(&customer, *input.CustomerID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
				return
			}
		}
		if input.ItemID != nil {
			var item models.Item
			if err := db.First(&item, *input.ItemID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
				return
			}
		}

		sale := models.Sales{
			OrderID:    input.OrderID,
			CustomerID: input.CustomerID,
			ItemID:     input.ItemID,
			Quantity:   input.Quantity,
			Price:      *input.Price,
			TotalPrice: *input.TotalPrice,
			Status:     models.SaleStatusPending,
			Payment:    models.SalePaymentUnpaid,
			Delivery:   models.SaleDeliveryPending,
		}
		if input.PaidAmount != nil {
			sale.PaidAmount = *input.PaidAmount
		}

		if err := db.Create(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create sale"})
			return
		}

		c.JSON(http.StatusCreated, sale)
	}
}

func preloadSale(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Order.Customer").
		Preload("Order.Post.Item").
		Preload("Order.PaymentMethod").
		Preload("Order").
		Preload("Customer").
		Preload("Item")
}

// GET /api/sales
func GetAllSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sales []models.Sales
		if err := preloadSale(db).Order("created_at DESC").Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

// GET /api/sales/:id
func GetSaleByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sale models.Sales
		if err := preloadSale(db).First(&sale, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

func parseDateUTC(value string, endOfDay bool) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		return day.Add(24*time.Hour - time.Millisecond), nil
	}
	return day, nil
}

// GET /api/sales/filter
//
// Item-level filters reach through orders and posts, so a sale only matches
// when its order's post resolves to a matching item.
func FilterSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := preloadSale(db.Model(&models.Sales{}))

		if status := c.Query("status"); status != "" {
			query = query.Where("sales.status = ?", status)
		}
		if payment := c.Query("paymentStatus"); payment != "" {
			query = query.Where("sales.payment_status = ?", payment)
		}
		if delivery := c.Query("deliveryStatus"); delivery != "" {
			query = query.Where("sales.delivery_status = ?", delivery)
		}
		if customerID := c.Query("customerId"); customerID != "" {
			query = query.Where("sales.customer_id = ?", customerID)
		}

		itemID := c.Query("itemId")
		categoryID := c.Query("categoryId")
		subCategoryID := c.Query("subCategoryId")
		if itemID != "" || categoryID != "" || subCategoryID != "" {
			query = query.
				Joins("JOIN orders ON orders.id = sales.order_id").
				Joins("JOIN posts ON posts.id = orders.post_id").
				Joins("JOIN items ON items.id = posts.item_id")
			if itemID != "" {
				query = query.Where("items.id = ?", itemID)
			}
			if categoryID != "" {
				query = query.Where("items.category_id = ?", categoryID)
			}
			if subCategoryID != "" {
				query = query.Where("items.sub_category_id = ?", subCategoryID)
			}
		}

		if startRaw := c.Query("startDate"); startRaw != "" {
			start, err := parseDateUTC(startRaw, false)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "startDate must be YYYY-MM-DD"})
				return
			}
			query = query.Where("sales.created_at >= ?", start)
		}
		if endRaw := c.Query("endDate"); endRaw != "" {
			end, err := parseDateUTC(endRaw, true)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "endDate must be YYYY-MM-DD"})
				return
			}
			query = query.Where("sales.created_at <= ?", end)
		}

		var sales []models.Sales
		if err := query.Order("sales.created_at DESC").Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch filtered sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

// PUT /api/sales/:id updates linkage and amounts. The three status axes only
// change through their dedicated PATCH endpoints.
func UpdateSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sale models.Sales
		if err := db.First(&sale, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}

		var input UpdateSaleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if input.OrderID != nil {
			sale.OrderID = input.OrderID
		}
		if input.CustomerID != nil {
			sale.CustomerID = input.CustomerID
		}
		if input.ItemID != nil {
			sale.ItemID = input.ItemID
		}
		if input.Quantity != nil {
			sale.Quantity = input.Quantity
		}
		if input.Price != nil {
			sale.Price = *input.Price
		}
		if input.TotalPrice != nil {
			sale.TotalPrice = *input.TotalPrice
		}
		if input.PaidAmount != nil {
			sale.PaidAmount = *input.PaidAmount
		}

		if err := db.Save(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update sale"})
			return
		}

		c.JSON(http.StatusOK, sale)
	}
}

// resolveSaleItem finds the item and quantity a sold transition should charge
// against: the linked order's post item when an order exists, otherwise the
// sale's own item linkage.
func resolveSaleItem(db *gorm.DB, sale *models.Sales) (uint, int, int, string) {
	if sale.OrderID != nil {
		var order models.Order
		if err := db.First(&order, *sale.OrderID).Error; err != nil {
			return 0, 0, http.StatusBadRequest, "Order not found"
		}
		var post models.Post
		if err := db.First(&post, order.PostID).Error; err != nil {
			return 0, 0, http.StatusNotFound, "Item not found"
		}
		return post.ItemID, order.Quantity, 0, ""
	}
	if sale.ItemID != nil && sale.Quantity != nil {
		return *sale.ItemID, *sale.Quantity, 0, ""
	}
	return 0, 0, http.StatusBadRequest, "Order not found"
}

// PATCH /api/sales/:id/status
//
// Transitioning into "sold" decrements the item stock exactly once; repeating
// the same status is a no-op, and cancelling never restores stock.
func UpdateSaleStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input statusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
			return
		}

		status := models.SaleStatus(input.Status)
		switch status {
		case models.SaleStatusPending, models.SaleStatusSold, models.SaleStatusCancelled:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
			return
		}

		var sale models.Sales
		if err := db.First(&sale, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}

		if status == models.SaleStatusSold && sale.Status != models.SaleStatusSold {
			itemID, quantity, code, msg := resolveSaleItem(db, &sale)
			if code != 0 {
				c.JSON(code, gin.H{"message": msg})
				return
			}

			var item models.Item
			if err := db.First(&item, itemID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
				return
			}

			err := db.Transaction(func(tx *gorm.DB) error {
				// Conditional decrement: the WHERE guard makes the stock check
				// and the subtraction one atomic statement, so two concurrent
				// sold transitions cannot drive the quantity negative.
				result := tx.Model(&models.Item{}).
					Where("id = ? AND quantity >= ?", itemID, quantity).
					Update("quantity", gorm.Expr("quantity - ?", quantity))
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return errInsufficientStock
				}

				sale.Status = status
				return tx.Save(&sale).Error
			})
			if err == errInsufficientStock {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Not enough item quantity in stock"})
				return
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
				return
			}
		} else {
			sale.Status = status
			if err := db.Save(&sale).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Sale status updated",
			"status":  sale.Status,
		})
	}
}

// PATCH /api/sales/:id/payment-status
func UpdateSalePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input statusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment status value"})
			return
		}

		status := models.SalePaymentStatus(input.Status)
		switch status {
		case models.SalePaymentUnpaid, models.SalePaymentPartial, models.SalePaymentPaid:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment status value"})
			return
		}

		var sale models.Sales
		if err := db.First(&sale, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}

		sale.Payment = status
		if err := db.Save(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update payment status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Payment status updated",
			"paymentStatus": sale.Payment,
		})
	}
}

// PATCH /api/sales/:id/delivery-status
func UpdateSaleDeliveryStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input statusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid delivery status value"})
			return
		}

		status := models.SaleDeliveryStatus(input.Status)
		switch status {
		case models.SaleDeliveryPending, models.SaleDeliveryShipped, models.SaleDeliveryDelivered:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid delivery status value"})
			return
		}

		var sale models.Sales
		if err := db.First(&sale, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}

		sale.Delivery = status
		if err := db.Save(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update delivery status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":        "Delivery status updated",
			"deliveryStatus": sale.Delivery,
		})
	}
}

// DELETE /api/sales/:id
func DeleteSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sale models.Sales
		if err := db.First(&sale, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}

		if err := db.Delete(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete sale"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
	}
}
