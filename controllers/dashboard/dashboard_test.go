package dashboardController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// Single connection keeps the concurrent aggregation on one in-memory DB.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.SubCategory{},
		&models.Item{},
		&models.Customer{},
		&models.User{},
		&models.PaymentMethod{},
		&models.Post{},
		&models.Order{},
		&models.Sales{},
		&models.SalesRequest{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type dashboardResponse struct {
	Counts struct {
		Categories    int64 `json:"categories"`
		Items         int64 `json:"items"`
		Customers     int64 `json:"customers"`
		Orders        int64 `json:"orders"`
		Sales         int64 `json:"sales"`
		SalesRequests int64 `json:"salesRequests"`
	} `json:"counts"`
	Inventory struct {
		LowStockCount int64 `json:"lowStockCount"`
		FeaturedCount int64 `json:"featuredCount"`
	} `json:"inventory"`
	OrderStatus map[string]int64 `json:"orderStatus"`
	SalesStatus map[string]int64 `json:"salesStatus"`
	Revenue     struct {
		Total       float64 `json:"total"`
		Collected   float64 `json:"collected"`
		Outstanding float64 `json:"outstanding"`
	} `json:"revenue"`
	NewCustomersLast7Days int64                    `json:"newCustomersLast7Days"`
	RecentOrders          []map[string]interface{} `json:"recentOrders"`
	RecentSales           []map[string]interface{} `json:"recentSales"`
}

func fetchDashboard(t *testing.T, db *gorm.DB) dashboardResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard", GetDashboard(db))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dashboardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestDashboardEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	resp := fetchDashboard(t, db)

	if resp.Counts.Categories != 0 || resp.Counts.Orders != 0 {
		t.Errorf("counts = %+v, want zeros", resp.Counts)
	}
	if resp.Revenue.Total != 0 || resp.Revenue.Outstanding != 0 {
		t.Errorf("revenue = %+v, want zeros", resp.Revenue)
	}
	if len(resp.RecentOrders) != 0 || len(resp.RecentSales) != 0 {
		t.Errorf("recent lists should be empty")
	}
}

func TestDashboardAggregates(t *testing.T) {
	db := setupTestDB(t)

	category := models.Category{Name: "Grain"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	low := models.Item{Name: "Wheat", CategoryID: category.ID, Quantity: 2, MinQuantity: 5}
	ok := models.Item{Name: "Teff", CategoryID: category.ID, Quantity: 50, MinQuantity: 5, Featured: true}
	for _, item := range []*models.Item{&low, &ok} {
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}

	customer := models.Customer{
		Name: "Abebe Trading", PhoneNo: "0911000001", Email: "abebe@example.com",
		Password: "x", Type: models.CustomerTypeBuyer, Status: models.CustomerStatusApproved,
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	method := models.PaymentMethod{Name: "Bank Transfer"}
	if err := db.Create(&method).Error; err != nil {
		t.Fatalf("seed method: %v", err)
	}
	post := models.Post{
		ItemID:  ok.ID,
		Pricing: models.PricingList{{PaymentMethodID: method.ID, Value: 55}},
		Status:  models.PostStatusPosted,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	pending := models.Order{CustomerID: customer.ID, PostID: post.ID, PaymentMethodID: method.ID, Quantity: 5, Status: models.OrderStatusPending}
	approved := models.Order{CustomerID: customer.ID, PostID: post.ID, PaymentMethodID: method.ID, Quantity: 7, Status: models.OrderStatusApproved}
	for _, order := range []*models.Order{&pending, &approved} {
		if err := db.Create(order).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	sold := models.Sales{OrderID: &approved.ID, Price: 50, TotalPrice: 350, PaidAmount: 200, Status: models.SaleStatusSold}
	open := models.Sales{Price: 10, TotalPrice: 100, PaidAmount: 0, Status: models.SaleStatusPending}
	for _, sale := range []*models.Sales{&sold, &open} {
		if err := db.Create(sale).Error; err != nil {
			t.Fatalf("seed sale: %v", err)
		}
	}

	resp := fetchDashboard(t, db)

	if resp.Counts.Categories != 1 || resp.Counts.Items != 2 || resp.Counts.Customers != 1 {
		t.Errorf("counts = %+v", resp.Counts)
	}
	if resp.Counts.Orders != 2 || resp.Counts.Sales != 2 {
		t.Errorf("counts = %+v", resp.Counts)
	}
	if resp.Inventory.LowStockCount != 1 {
		t.Errorf("lowStockCount = %d, want 1", resp.Inventory.LowStockCount)
	}
	if resp.Inventory.FeaturedCount != 1 {
		t.Errorf("featuredCount = %d, want 1", resp.Inventory.FeaturedCount)
	}
	if resp.OrderStatus["pending"] != 1 || resp.OrderStatus["approved"] != 1 {
		t.Errorf("orderStatus = %v", resp.OrderStatus)
	}
	if resp.SalesStatus["sold"] != 1 || resp.SalesStatus["pending"] != 1 {
		t.Errorf("salesStatus = %v", resp.SalesStatus)
	}

	// Only sold sales count toward revenue.
	if resp.Revenue.Total != 350 {
		t.Errorf("revenue total = %v, want 350", resp.Revenue.Total)
	}
	if resp.Revenue.Collected != 200 {
		t.Errorf("revenue collected = %v, want 200", resp.Revenue.Collected)
	}
	if resp.Revenue.Outstanding != 150 {
		t.Errorf("revenue outstanding = %v, want 150", resp.Revenue.Outstanding)
	}

	if resp.NewCustomersLast7Days != 1 {
		t.Errorf("newCustomersLast7Days = %d, want 1", resp.NewCustomersLast7Days)
	}
	if len(resp.RecentOrders) != 2 {
		t.Errorf("recentOrders = %d, want 2", len(resp.RecentOrders))
	}
	if len(resp.RecentSales) != 2 {
		t.Errorf("recentSales = %d, want 2", len(resp.RecentSales))
	}
}
