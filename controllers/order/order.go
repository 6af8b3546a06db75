package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

// -------- Request structs --------

type CreateOrderInput struct {
	CustomerID      uint     `json:"customerId"`
	PostID          uint     `json:"postId"`
	Quantity        *int     `json:"quantity"`
	PaymentMethodID uint     `json:"paymentMethodId"`
	OfferedPrice    *float64 `json:"offeredPrice"`
	// Status is accepted but ignored; orders always start pending.
	Status string `json:"status"`
}

type UpdateOrderInput struct {
	CustomerID      *uint    `json:"customerId"`
	PostID          *uint    `json:"postId"`
	Quantity        *int     `json:"quantity"`
	PaymentMethodID *uint    `json:"paymentMethodId"`
	OfferedPrice    *float64 `json:"offeredPrice"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status"`
}

// -------- Views --------

type CustomerRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type PostRef struct {
	ID     uint              `json:"id"`
	Detail string            `json:"detail"`
	Status models.PostStatus `json:"status"`
}

type PaymentMethodRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type OrderView struct {
	ID            uint               `json:"id"`
	Customer      *CustomerRef       `json:"customer,omitempty"`
	Post          *PostRef           `json:"post,omitempty"`
	PaymentMethod *PaymentMethodRef  `json:"paymentMethod,omitempty"`
	Quantity      int                `json:"quantity"`
	OfferedPrice  float64            `json:"offeredPrice"`
	Status        models.OrderStatus `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func buildOrderView(order models.Order) OrderView {
	view := OrderView{
		ID:           order.ID,
		Quantity:     order.Quantity,
		OfferedPrice: order.OfferedPrice,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
	if order.Customer != nil {
		view.Customer = &CustomerRef{ID: order.Customer.ID, Name: order.Customer.Name, Email: order.Customer.Email}
	}
	if order.Post != nil {
		view.Post = &PostRef{ID: order.Post.ID, Detail: order.Post.Detail, Status: order.Post.Status}
	}
	if order.PaymentMethod != nil {
		view.PaymentMethod = &PaymentMethodRef{ID: order.PaymentMethod.ID, Name: order.PaymentMethod.Name}
	}
	return view
}

func mapOrderStatus(value string) (models.OrderStatus, error) {
	switch models.OrderStatus(value) {
	case models.OrderStatusPending, models.OrderStatusApproved, models.OrderStatusRejected:
		return models.OrderStatus(value), nil
	default:
		return "", errors.New("invalid order status")
	}
}

func orderViews(orders []models.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, buildOrderView(order))
	}
	return views
}

// -------- Handlers --------

// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if input.CustomerID == 0 || input.PostID == 0 || input.Quantity == nil ||
			input.PaymentMethodID == 0 || input.OfferedPrice == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "customerId, postId, quantity, paymentMethodId, and offeredPrice are required",
			})
			return
		}

		var customer models.Customer
		if err := db.First(&customer, input.CustomerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}
		var post models.Post
		if err := db.First(&post, input.PostID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		var method models.PaymentMethod
		if err := db.First(&method, input.PaymentMethodID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment method not found"})
			return
		}

		// Client-supplied status is discarded.
		order := models.Order{
			CustomerID:      input.CustomerID,
			PostID:          input.PostID,
			Quantity:        *input.Quantity,
			PaymentMethodID: input.PaymentMethodID,
			OfferedPrice:    *input.OfferedPrice,
			Status:          models.OrderStatusPending,
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Customer").
			Preload("Post").
			Preload("PaymentMethod").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orderViews(orders))
	}
}

// GET /api/orders/my-orders returns the orders of the authenticated customer.
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := c.Get("customer_id")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("customer_id = ?", customerID).
			Preload("Customer").
			Preload("Post").
			Preload("PaymentMethod").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orderViews(orders))
	}
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("Customer").
			Preload("Post").
			Preload("PaymentMethod").
			First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, buildOrderView(order))
	}
}

// PUT /api/orders/:id
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		var input UpdateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if input.CustomerID != nil {
			order.CustomerID = *input.CustomerID
		}
		if input.PostID != nil {
			order.PostID = *input.PostID
		}
		if input.Quantity != nil {
			order.Quantity = *input.Quantity
		}
		if input.PaymentMethodID != nil {
			order.PaymentMethodID = *input.PaymentMethodID
		}
		if input.OfferedPrice != nil {
			order.OfferedPrice = *input.OfferedPrice
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
			return
		}

		var updated models.Order
		if err := db.
			Preload("Customer").
			Preload("Post").
			Preload("PaymentMethod").
			First(&updated, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, buildOrderView(updated))
	}
}

// PATCH /api/orders/:id/status allows any transition within the enum.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
			return
		}

		status, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
			return
		}

		var order models.Order
		if err := db.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		order.Status = status
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Status updated successfully",
			"status":  order.Status,
		})
	}
}

// DELETE /api/orders/:id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		if err := db.Delete(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

// parseDateUTC interprets a YYYY-MM-DD string as a UTC day boundary.
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

// GET /api/orders/filter
func GetFilteredOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Order{}).
			Preload("Customer").
			Preload("Post").
			Preload("PaymentMethod")

		if customerID := c.Query("customerId"); customerID != "" {
			query = query.Where("customer_id = ?", customerID)
		}
		if postID := c.Query("postId"); postID != "" {
			query = query.Where("post_id = ?", postID)
		}
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		if startRaw := c.Query("startDate"); startRaw != "" {
			start, err := parseDateUTC(startRaw, false)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "startDate must be YYYY-MM-DD"})
				return
			}
			query = query.Where("created_at >= ?", start)
		}
		if endRaw := c.Query("endDate"); endRaw != "" {
			end, err := parseDateUTC(endRaw, true)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "endDate must be YYYY-MM-DD"})
				return
			}
			query = query.Where("created_at <= ?", end)
		}

		var orders []models.Order
		if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch filtered orders"})
			return
		}
		c.JSON(http.StatusOK, orderViews(orders))
	}
}
