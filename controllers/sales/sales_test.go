package salesController

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.SubCategory{},
		&models.Item{},
		&models.Customer{},
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

func salesRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/sales", CreateSale(db))
	r.GET("/sales", GetAllSales(db))
	r.GET("/sales/filter", FilterSales(db))
	r.GET("/sales/:id", GetSaleByID(db))
	r.PUT("/sales/:id", UpdateSale(db))
	r.PATCH("/sales/:id/status", UpdateSaleStatus(db))
	r.PATCH("/sales/:id/payment-status", UpdateSalePaymentStatus(db))
	r.PATCH("/sales/:id/delivery-status", UpdateSaleDeliveryStatus(db))
	r.DELETE("/sales/:id", DeleteSale(db))
	return r
}

func patchJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seedSaleChain builds category -> item -> post -> order -> sale and returns
// the item and sale ids. The order carries the quantity charged on "sold".
func seedSaleChain(t *testing.T, db *gorm.DB, stock, orderQty int) (uint, uint) {
	t.Helper()

	category := models.Category{Name: "Grain"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	item := models.Item{
		Name:        "Wheat",
		CategoryID:  category.ID,
		Quantity:    stock,
		MinQuantity: 5,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	method := models.PaymentMethod{Name: "Bank Transfer", Status: models.PaymentMethodActive}
	if err := db.Create(&method).Error; err != nil {
		t.Fatalf("seed payment method: %v", err)
	}
	customer := models.Customer{
		Name:    "Abebe Trading",
		PhoneNo: "0911000001",
		Email:   "abebe@example.com",
		Type:    models.CustomerTypeBuyer,
		Status:  models.CustomerStatusApproved,
	}
	customer.Password = "x"
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	post := models.Post{
		ItemID:  item.ID,
		Pricing: models.PricingList{{PaymentMethodID: method.ID, Value: 55}},
		Status:  models.PostStatusPosted,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	order := models.Order{
		CustomerID:      customer.ID,
		PostID:          post.ID,
		PaymentMethodID: method.ID,
		Quantity:        orderQty,
		OfferedPrice:    50,
		Status:          models.OrderStatusApproved,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	sale := models.Sales{
		OrderID:    &order.ID,
		CustomerID: &customer.ID,
		Price:      50,
		TotalPrice: 50 * float64(orderQty),
		Status:     models.SaleStatusPending,
		Payment:    models.SalePaymentUnpaid,
		Delivery:   models.SaleDeliveryPending,
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("seed sale: %v", err)
	}
	return item.ID, sale.ID
}

func itemQuantity(t *testing.T, db *gorm.DB, itemID uint) int {
	t.Helper()
	var item models.Item
	if err := db.First(&item, itemID).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	return item.Quantity
}

func TestCreateSaleRequiresAmounts(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)

	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader([]byte(`{"price": 10}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateSaleDefaultsStatusAxes(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)

	body := []byte(`{"price": 10, "totalPrice": 100}`)
	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var sale models.Sales
	if err := json.Unmarshal(w.Body.Bytes(), &sale); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sale.Status != models.SaleStatusPending {
		t.Errorf("status = %q, want pending", sale.Status)
	}
	if sale.Payment != models.SalePaymentUnpaid {
		t.Errorf("payment = %q, want unpaid", sale.Payment)
	}
	if sale.Delivery != models.SaleDeliveryPending {
		t.Errorf("delivery = %q, want pending", sale.Delivery)
	}
}

func TestSoldTransitionDecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)
	itemID, saleID := seedSaleChain(t, db, 100, 20)

	w := patchJSON(t, r, fmt.Sprintf("/sales/%d/status", saleID), gin.H{"status": "sold"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := itemQuantity(t, db, itemID); got != 80 {
		t.Fatalf("quantity = %d, want 80", got)
	}
}

func TestSoldTransitionIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)
	itemID, saleID := seedSaleChain(t, db, 100, 20)

	for i := 0; i < 3; i++ {
		w := patchJSON(t, r, fmt.Sprintf("/sales/%d/status", saleID), gin.H{"status": "sold"})
		if w.Code != http.StatusOK {
			t.Fatalf("round %d: expected 200, got %d: %s", i, w.Code, w.Body.String())
		}
	}
	if got := itemQuantity(t, db, itemID); got != 80 {
		t.Fatalf("quantity = %d after repeated sold, want 80", got)
	}
}

func TestSoldTransitionInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)
	itemID, saleID := seedSaleChain(t, db, 10, 20)

	w := patchJSON(t, r, fmt.Sprintf("/sales/%d/status", saleID), gin.H{"status": "sold"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["message"] != "Not enough item quantity in stock" {
		t.Errorf("message = %q", resp["message"])
	}

	// The failed transition must leave both the stock and the sale untouched.
	if got := itemQuantity(t, db, itemID); got != 10 {
		t.Errorf("quantity = %d, want 10", got)
	}
	var sale models.Sales
	if err := db.First(&sale, saleID).Error; err != nil {
		t.Fatalf("reload sale: %v", err)
	}
	if sale.Status != models.SaleStatusPending {
		t.Errorf("sale status = %q, want pending", sale.Status)
	}
}

func TestCancelDoesNotRestoreStock(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)
	itemID, saleID := seedSaleChain(t, db, 100, 20)

	if w := patchJSON(t, r, fmt.Sprintf("/sales/%d/status", saleID), gin.H{"status": "sold"}); w.Code != http.StatusOK {
		t.Fatalf("sold: got %d: %s", w.Code, w.Body.String())
	}
	if w := patchJSON(t, r, fmt.Sprintf("/sales/%d/status", saleID), gin.H{"status": "cancelled"}); w.Code != http.StatusOK {
		t.Fatalf("cancel: got %d: %s", w.Code, w.Body.String())
	}

	if got := itemQuantity(t, db, itemID); got != 80 {
		t.Fatalf("quantity = %d after cancel, want 80", got)
	}
}

func TestSoldWithoutOrderUsesDirectItemLink(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)

	category := models.Category{Name: "Grain"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	item := models.Item{Name: "Barley", CategoryID: category.ID, Quantity: 30, MinQuantity: 2}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	qty := 12
	sale := models.Sales{
		ItemID:     &item.ID,
		Quantity:   &qty,
		Price:      40,
		TotalPrice: 480,
		Status:     models.SaleStatusPending,
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("seed sale: %v", err)
	}

	w := patchJSON(t, r, fmt.Sprintf("/sales/%d/status", sale.ID), gin.H{"status": "sold"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := itemQuantity(t, db, item.ID); got != 18 {
		t.Fatalf("quantity = %d, want 18", got)
	}
}

func TestUpdateSaleStatusRejectsUnknownValue(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)
	_, saleID := seedSaleChain(t, db, 100, 20)

	w := patchJSON(t, r, fmt.Sprintf("/sales/%d/status", saleID), gin.H{"status": "shipped"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPaymentAndDeliveryAxesAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)
	itemID, saleID := seedSaleChain(t, db, 100, 20)

	if w := patchJSON(t, r, fmt.Sprintf("/sales/%d/payment-status", saleID), gin.H{"status": "partial"}); w.Code != http.StatusOK {
		t.Fatalf("payment: got %d: %s", w.Code, w.Body.String())
	}
	if w := patchJSON(t, r, fmt.Sprintf("/sales/%d/delivery-status", saleID), gin.H{"status": "shipped"}); w.Code != http.StatusOK {
		t.Fatalf("delivery: got %d: %s", w.Code, w.Body.String())
	}

	var sale models.Sales
	if err := db.First(&sale, saleID).Error; err != nil {
		t.Fatalf("reload sale: %v", err)
	}
	if sale.Payment != models.SalePaymentPartial {
		t.Errorf("payment = %q, want partial", sale.Payment)
	}
	if sale.Delivery != models.SaleDeliveryShipped {
		t.Errorf("delivery = %q, want shipped", sale.Delivery)
	}
	// Neither axis touches the main status or the stock.
	if sale.Status != models.SaleStatusPending {
		t.Errorf("status = %q, want pending", sale.Status)
	}
	if got := itemQuantity(t, db, itemID); got != 100 {
		t.Errorf("quantity = %d, want 100", got)
	}
}

func TestPaymentStatusRejectsMainStatusValue(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)
	_, saleID := seedSaleChain(t, db, 100, 20)

	w := patchJSON(t, r, fmt.Sprintf("/sales/%d/payment-status", saleID), gin.H{"status": "sold"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateSaleDoesNotTouchStatusAxes(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)
	_, saleID := seedSaleChain(t, db, 100, 20)

	body := []byte(`{"paidAmount": 500, "totalPrice": 1000}`)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/sales/%d", saleID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var sale models.Sales
	if err := db.First(&sale, saleID).Error; err != nil {
		t.Fatalf("reload sale: %v", err)
	}
	if sale.PaidAmount != 500 || sale.TotalPrice != 1000 {
		t.Errorf("amounts = %v/%v, want 500/1000", sale.PaidAmount, sale.TotalPrice)
	}
	if sale.Status != models.SaleStatusPending || sale.Payment != models.SalePaymentUnpaid {
		t.Errorf("status axes changed: %q/%q", sale.Status, sale.Payment)
	}
}

func TestFilterSalesByStatus(t *testing.T) {
	db := setupTestDB(t)
	r := salesRouter(db)
	_, saleID := seedSaleChain(t, db, 100, 20)

	other := models.Sales{Price: 5, TotalPrice: 5, Status: models.SaleStatusCancelled}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/sales/filter?status=pending", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var sales []models.Sales
	if err := json.Unmarshal(w.Body.Bytes(), &sales); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sales) != 1 || sales[0].ID != saleID {
		t.Fatalf("got %d sales, want the single pending one", len(sales))
	}
}
