package postController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
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
		&models.PaymentMethod{},
		&models.Post{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func postRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := storage.NewDiskStore(t.TempDir(), "http://localhost:8080")
	r := gin.New()
	r.POST("/posts", CreatePost(db, store))
	r.GET("/posts", GetPosts(db, store))
	r.GET("/posts/filter", FilterPosts(db, store))
	r.GET("/posts/search", SearchPosts(db, store))
	r.GET("/posts/item/:itemId", GetPostsByItem(db, store))
	r.GET("/posts/:id", GetPostByID(db, store))
	r.PUT("/posts/:id", UpdatePost(db, store))
	r.DELETE("/posts/:id", DeletePost(db, store))
	return r
}

func postForm(r *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seedCatalog creates a category, an item, and two payment methods (the
// second inactive). Returns item id, active method id, inactive method id.
func seedCatalog(t *testing.T, db *gorm.DB, itemName string) (uint, uint, uint) {
	t.Helper()

	var category models.Category
	if err := db.Where("name = ?", "Grain").First(&category).Error; err != nil {
		category = models.Category{Name: "Grain"}
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}
	item := models.Item{Name: itemName, CategoryID: category.ID, Quantity: 100, MinQuantity: 5}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	active := models.PaymentMethod{Name: "Bank Transfer", Status: models.PaymentMethodActive}
	if err := db.Create(&active).Error; err != nil {
		t.Fatalf("seed method: %v", err)
	}
	inactive := models.PaymentMethod{Name: "Cheque", Status: models.PaymentMethodInactive}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("seed method: %v", err)
	}
	return item.ID, active.ID, inactive.ID
}

func TestCreatePostValidatesPricing(t *testing.T) {
	db := setupTestDB(t)
	r := postRouter(t, db)
	itemID, activeID, inactiveID := seedCatalog(t, db, "Wheat")

	cases := []struct {
		name    string
		pricing string
		code    int
		message string
	}{
		{"not json", "oops", http.StatusBadRequest, "Pricing must be valid JSON"},
		{"empty array", "[]", http.StatusBadRequest, "Pricing must be a non-empty array"},
		{"missing value", fmt.Sprintf(`[{"paymentMethodId": %d}]`, activeID), http.StatusBadRequest, "Each pricing entry must contain paymentMethodId and value"},
		{"duplicate method", fmt.Sprintf(`[{"paymentMethodId": %d, "value": 10}, {"paymentMethodId": %d, "value": 20}]`, activeID, activeID), http.StatusBadRequest, "Duplicate paymentMethodId detected"},
		{"inactive method", fmt.Sprintf(`[{"paymentMethodId": %d, "value": 10}]`, inactiveID), http.StatusBadRequest, "One or more payment methods are invalid or inactive"},
		{"unknown method", `[{"paymentMethodId": 999, "value": 10}]`, http.StatusBadRequest, "One or more payment methods are invalid or inactive"},
	}

	for _, tc := range cases {
		form := url.Values{
			"itemId":  {fmt.Sprint(itemID)},
			"pricing": {tc.pricing},
		}
		w := postForm(r, http.MethodPost, "/posts", form)
		if w.Code != tc.code {
			t.Errorf("%s: code = %d, want %d: %s", tc.name, w.Code, tc.code, w.Body.String())
			continue
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Errorf("%s: decode: %v", tc.name, err)
			continue
		}
		if resp["message"] != tc.message {
			t.Errorf("%s: message = %q, want %q", tc.name, resp["message"], tc.message)
		}
	}
}

func TestCreatePostStartsPending(t *testing.T) {
	db := setupTestDB(t)
	r := postRouter(t, db)
	itemID, activeID, _ := seedCatalog(t, db, "Wheat")

	form := url.Values{
		"itemId":  {fmt.Sprint(itemID)},
		"pricing": {fmt.Sprintf(`[{"paymentMethodId": %d, "value": 55}]`, activeID)},
		"detail":  {"Fresh harvest"},
	}
	w := postForm(r, http.MethodPost, "/posts", form)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var post models.Post
	if err := json.Unmarshal(w.Body.Bytes(), &post); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if post.Status != models.PostStatusPending {
		t.Errorf("status = %q, want pending", post.Status)
	}
}

func TestCreatePostUnknownItem(t *testing.T) {
	db := setupTestDB(t)
	r := postRouter(t, db)
	_, activeID, _ := seedCatalog(t, db, "Wheat")

	form := url.Values{
		"itemId":  {"999"},
		"pricing": {fmt.Sprintf(`[{"paymentMethodId": %d, "value": 55}]`, activeID)},
	}
	w := postForm(r, http.MethodPost, "/posts", form)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPostViewDropsInactivePricing(t *testing.T) {
	db := setupTestDB(t)
	r := postRouter(t, db)
	itemID, activeID, inactiveID := seedCatalog(t, db, "Wheat")

	post := models.Post{
		ItemID: itemID,
		Pricing: models.PricingList{
			{PaymentMethodID: activeID, Value: 55},
			{PaymentMethodID: inactiveID, Value: 60},
		},
		Status: models.PostStatusPosted,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var view PostView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(view.Pricing) != 1 {
		t.Fatalf("pricing entries = %d, want 1", len(view.Pricing))
	}
	if view.Pricing[0].Name != "Bank Transfer" || view.Pricing[0].Value != 55 {
		t.Errorf("pricing = %+v", view.Pricing[0])
	}
}

func TestUpdatePostPricingOperations(t *testing.T) {
	db := setupTestDB(t)
	r := postRouter(t, db)
	itemID, activeID, _ := seedCatalog(t, db, "Wheat")

	second := models.PaymentMethod{Name: "Cash", Status: models.PaymentMethodActive}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("seed method: %v", err)
	}

	post := models.Post{
		ItemID:  itemID,
		Pricing: models.PricingList{{PaymentMethodID: activeID, Value: 55}},
		Status:  models.PostStatusPosted,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	// Add a second entry and bump the first one's value in a single call.
	form := url.Values{
		"addPricing":    {fmt.Sprintf(`[{"paymentMethodId": %d, "value": 60}]`, second.ID)},
		"updatePricing": {fmt.Sprintf(`[{"paymentMethodId": %d, "value": 58}]`, activeID)},
	}
	w := postForm(r, http.MethodPut, fmt.Sprintf("/posts/%d", post.ID), form)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var reloaded models.Post
	if err := db.First(&reloaded, post.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Pricing) != 2 {
		t.Fatalf("pricing entries = %d, want 2", len(reloaded.Pricing))
	}
	values := map[uint]float64{}
	for _, entry := range reloaded.Pricing {
		values[entry.PaymentMethodID] = entry.Value
	}
	if values[activeID] != 58 || values[second.ID] != 60 {
		t.Errorf("pricing = %v", values)
	}

	// Adding an entry for a method that already has one is ignored.
	form = url.Values{
		"addPricing": {fmt.Sprintf(`[{"paymentMethodId": %d, "value": 99}]`, activeID)},
	}
	if w := postForm(r, http.MethodPut, fmt.Sprintf("/posts/%d", post.ID), form); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := db.First(&reloaded, post.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	values = map[uint]float64{}
	for _, entry := range reloaded.Pricing {
		values[entry.PaymentMethodID] = entry.Value
	}
	if values[activeID] != 58 {
		t.Errorf("duplicate add overwrote value: %v", values[activeID])
	}

	// Remove the second entry.
	form = url.Values{
		"removePricingIds": {fmt.Sprintf(`[%d]`, second.ID)},
	}
	if w := postForm(r, http.MethodPut, fmt.Sprintf("/posts/%d", post.ID), form); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := db.First(&reloaded, post.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Pricing) != 1 || reloaded.Pricing[0].PaymentMethodID != activeID {
		t.Errorf("pricing after remove = %+v", reloaded.Pricing)
	}
}

func TestFilterPostsByCategory(t *testing.T) {
	db := setupTestDB(t)
	r := postRouter(t, db)
	wheatID, activeID, _ := seedCatalog(t, db, "Wheat")

	spice := models.Category{Name: "Spice"}
	if err := db.Create(&spice).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	pepper := models.Item{Name: "Pepper", CategoryID: spice.ID, Quantity: 10, MinQuantity: 1}
	if err := db.Create(&pepper).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	pricing := models.PricingList{{PaymentMethodID: activeID, Value: 10}}
	for _, itemID := range []uint{wheatID, pepper.ID} {
		post := models.Post{ItemID: itemID, Pricing: pricing, Status: models.PostStatusPosted}
		if err := db.Create(&post).Error; err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/posts/filter?categoryId=%d", spice.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var views []PostView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 1 || views[0].Item == nil || views[0].Item.Name != "Pepper" {
		t.Fatalf("filtered views = %d", len(views))
	}
}

func TestSearchPostsRelevanceOrdering(t *testing.T) {
	db := setupTestDB(t)
	r := postRouter(t, db)

	bothID, activeID, _ := seedCatalog(t, db, "Red Teff Premium")
	oneItem := models.Item{Name: "White Teff", CategoryID: 1, Quantity: 10, MinQuantity: 1}
	if err := db.Create(&oneItem).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	noneItem := models.Item{Name: "Barley", CategoryID: 1, Quantity: 10, MinQuantity: 1}
	if err := db.Create(&noneItem).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	pricing := models.PricingList{{PaymentMethodID: activeID, Value: 40}}
	for _, itemID := range []uint{oneItem.ID, bothID, noneItem.ID} {
		post := models.Post{ItemID: itemID, Pricing: pricing, Status: models.PostStatusPosted}
		if err := db.Create(&post).Error; err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/posts/search?name=red+teff", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var views []PostView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("results = %d, want 2 (Barley matches nothing)", len(views))
	}
	// Two keyword matches rank above one, regardless of recency.
	if views[0].Item.Name != "Red Teff Premium" || views[1].Item.Name != "White Teff" {
		t.Errorf("order = %q, %q", views[0].Item.Name, views[1].Item.Name)
	}
}

func TestSearchPostsPriceRange(t *testing.T) {
	db := setupTestDB(t)
	r := postRouter(t, db)
	itemID, activeID, _ := seedCatalog(t, db, "Wheat")

	cheap := models.Post{ItemID: itemID, Pricing: models.PricingList{{PaymentMethodID: activeID, Value: 20}}, Status: models.PostStatusPosted}
	pricey := models.Post{ItemID: itemID, Pricing: models.PricingList{{PaymentMethodID: activeID, Value: 90}}, Status: models.PostStatusPosted}
	for _, p := range []*models.Post{&cheap, &pricey} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/posts/search?minPrice=50", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var views []PostView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The cheap post's only pricing entry falls below the floor, so the
	// whole post drops out.
	if len(views) != 1 || views[0].ID != pricey.ID {
		t.Fatalf("results = %d, want only the expensive post", len(views))
	}
}
