package dashboardController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

type recentOrderView struct {
	ID       uint   `json:"id"`
	Customer gin.H  `json:"customer"`
	PostID   uint   `json:"postId"`
	Item     gin.H  `json:"item"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

type recentSaleView struct {
	ID         uint    `json:"id"`
	OrderID    *uint   `json:"orderId"`
	Item       gin.H   `json:"item"`
	TotalPrice float64 `json:"totalPrice"`
	PaidAmount float64 `json:"paidAmount"`
	Status     string  `json:"status"`
}

// GET /api/dashboard
//
// Aggregates entity counts, status breakdowns, revenue totals, and recent
// activity. Queries run concurrently; the first error aborts the whole
// response.
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			categoryCount      int64
			subCategoryCount   int64
			itemCount          int64
			customerCount      int64
			userCount          int64
			paymentMethodCount int64
			postCount          int64
			orderCount         int64
			salesRequestCount  int64
			salesCount         int64

			lowStockCount int64
			featuredCount int64

			orderBreakdown        map[string]int64
			salesRequestBreakdown map[string]int64
			salesBreakdown        map[string]int64

			totalRevenue     float64
			collectedRevenue float64

			newCustomersLast7Days int64

			recentOrders []models.Order
			recentSales  []models.Sales
		)

		now := time.Now().UTC()

		count := func(dest *int64, model interface{}) func() error {
			return func() error {
				return db.Model(model).Count(dest).Error
			}
		}

		breakdown := func(dest *map[string]int64, model interface{}, column string) func() error {
			return func() error {
				var rows []struct {
					Status string
					Count  int64
				}
				if err := db.Model(model).
					Select(column + " AS status, COUNT(*) AS count").
					Group(column).
					Find(&rows).Error; err != nil {
					return err
				}
				result := make(map[string]int64, len(rows))
				for _, row := range rows {
					result[row.Status] = row.Count
				}
				*dest = result
				return nil
			}
		}

		g := new(errgroup.Group)

		g.Go(count(&categoryCount, &models.Category{}))
		g.Go(count(&subCategoryCount, &models.SubCategory{}))
		g.Go(count(&itemCount, &models.Item{}))
		g.Go(count(&customerCount, &models.Customer{}))
		g.Go(count(&userCount, &models.User{}))
		g.Go(count(&paymentMethodCount, &models.PaymentMethod{}))
		g.Go(count(&postCount, &models.Post{}))
		g.Go(count(&orderCount, &models.Order{}))
		g.Go(count(&salesRequestCount, &models.SalesRequest{}))
		g.Go(count(&salesCount, &models.Sales{}))

		g.Go(func() error {
			return db.Model(&models.Item{}).
				Where("quantity <= min_quantity").
				Count(&lowStockCount).Error
		})
		g.Go(func() error {
			return db.Model(&models.Item{}).
				Where("featured = ? AND (featured_until IS NULL OR featured_until > ?)", true, now).
				Count(&featuredCount).Error
		})

		g.Go(breakdown(&orderBreakdown, &models.Order{}, "status"))
		g.Go(breakdown(&salesRequestBreakdown, &models.SalesRequest{}, "status"))
		g.Go(breakdown(&salesBreakdown, &models.Sales{}, "status"))

		g.Go(func() error {
			var total struct{ Value float64 }
			if err := db.Model(&models.Sales{}).
				Select("COALESCE(SUM(total_price), 0) AS value").
				Where("status = ?", models.SaleStatusSold).
				Scan(&total).Error; err != nil {
				return err
			}
			totalRevenue = total.Value
			return nil
		})
		g.Go(func() error {
			var paid struct{ Value float64 }
			if err := db.Model(&models.Sales{}).
				Select("COALESCE(SUM(paid_amount), 0) AS value").
				Where("status = ?", models.SaleStatusSold).
				Scan(&paid).Error; err != nil {
				return err
			}
			collectedRevenue = paid.Value
			return nil
		})

		g.Go(func() error {
			return db.Model(&models.Customer{}).
				Where("created_at >= ?", now.AddDate(0, 0, -7)).
				Count(&newCustomersLast7Days).Error
		})

		g.Go(func() error {
			return db.
				Preload("Customer").
				Preload("Post.Item").
				Preload("Post").
				Order("created_at DESC").
				Limit(5).
				Find(&recentOrders).Error
		})
		g.Go(func() error {
			return db.
				Preload("Order.Post.Item").
				Preload("Order").
				Preload("Item").
				Order("created_at DESC").
				Limit(5).
				Find(&recentSales).Error
		})

		if err := g.Wait(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load dashboard"})
			return
		}

		orderViews := make([]recentOrderView, 0, len(recentOrders))
		for _, order := range recentOrders {
			view := recentOrderView{
				ID:       order.ID,
				PostID:   order.PostID,
				Quantity: order.Quantity,
				Status:   string(order.Status),
			}
			if order.Customer != nil {
				view.Customer = gin.H{"id": order.Customer.ID, "name": order.Customer.Name}
			}
			if order.Post != nil && order.Post.Item != nil {
				view.Item = gin.H{"id": order.Post.Item.ID, "name": order.Post.Item.Name}
			}
			orderViews = append(orderViews, view)
		}

		saleViews := make([]recentSaleView, 0, len(recentSales))
		for _, sale := range recentSales {
			view := recentSaleView{
				ID:         sale.ID,
				OrderID:    sale.OrderID,
				TotalPrice: sale.TotalPrice,
				PaidAmount: sale.PaidAmount,
				Status:     string(sale.Status),
			}
			if sale.Item != nil {
				view.Item = gin.H{"id": sale.Item.ID, "name": sale.Item.Name}
			} else if sale.Order != nil && sale.Order.Post != nil && sale.Order.Post.Item != nil {
				item := sale.Order.Post.Item
				view.Item = gin.H{"id": item.ID, "name": item.Name}
			}
			saleViews = append(saleViews, view)
		}

		c.JSON(http.StatusOK, gin.H{
			"counts": gin.H{
				"categories":     categoryCount,
				"subCategories":  subCategoryCount,
				"items":          itemCount,
				"customers":      customerCount,
				"users":          userCount,
				"paymentMethods": paymentMethodCount,
				"posts":          postCount,
				"orders":         orderCount,
				"salesRequests":  salesRequestCount,
				"sales":          salesCount,
			},
			"inventory": gin.H{
				"lowStockCount": lowStockCount,
				"featuredCount": featuredCount,
			},
			"orderStatus":        orderBreakdown,
			"salesRequestStatus": salesRequestBreakdown,
			"salesStatus":        salesBreakdown,
			"revenue": gin.H{
				"total":       totalRevenue,
				"collected":   collectedRevenue,
				"outstanding": totalRevenue - collectedRevenue,
			},
			"newCustomersLast7Days": newCustomersLast7Days,
			"recentOrders":          orderViews,
			"recentSales":           saleViews,
		})
	}
}
