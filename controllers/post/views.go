package postController

import (
	"time"

	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

// Read-side view structs. Responses are shaped explicitly instead of
// filtering columns per call site.

type NamedRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PricingView struct {
	PaymentMethodID uint    `json:"paymentMethodId"`
	Name            string  `json:"name"`
	Value           float64 `json:"value"`
}

type ItemView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Category    *NamedRef `json:"category,omitempty"`
	SubCategory *NamedRef `json:"subCategory,omitempty"`
}

type PostView struct {
	ID        uint              `json:"id"`
	Item      *ItemView         `json:"item,omitempty"`
	Pricing   []PricingView     `json:"pricing"`
	Images    []string          `json:"images"`
	Detail    string            `json:"detail"`
	Status    models.PostStatus `json:"status"`
	Count     int               `json:"count"`
	CreatedAt time.Time         `json:"createdAt"`
}

// activePaymentNames returns id -> name for every active payment method.
func activePaymentNames(db *gorm.DB) (map[uint]string, error) {
	var methods []models.PaymentMethod
	if err := db.Where("status = ?", models.PaymentMethodActive).Find(&methods).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(methods))
	for _, m := range methods {
		names[m.ID] = m.Name
	}
	return names, nil
}

func itemView(item *models.Item) *ItemView {
	if item == nil {
		return nil
	}
	view := &ItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
	}
	if item.Category != nil {
		view.Category = &NamedRef{ID: item.Category.ID, Name: item.Category.Name}
	}
	if item.SubCategory != nil {
		view.SubCategory = &NamedRef{ID: item.SubCategory.ID, Name: item.SubCategory.Name}
	}
	return view
}

// buildPostView expands pricing with live payment method names, dropping
// entries whose method is gone or inactive, and rewrites image references
// into absolute URLs.
func buildPostView(post models.Post, names map[uint]string, store storage.ImageStore) PostView {
	pricing := make([]PricingView, 0, len(post.Pricing))
	for _, entry := range post.Pricing {
		name, ok := names[entry.PaymentMethodID]
		if !ok {
			continue
		}
		pricing = append(pricing, PricingView{
			PaymentMethodID: entry.PaymentMethodID,
			Name:            name,
			Value:           entry.Value,
		})
	}

	images := make([]string, 0, len(post.Images))
	for _, img := range post.Images {
		if img == "" {
			continue
		}
		images = append(images, store.URL(img))
	}

	return PostView{
		ID:        post.ID,
		Item:      itemView(post.Item),
		Pricing:   pricing,
		Images:    images,
		Detail:    post.Detail,
		Status:    post.Status,
		Count:     post.Count,
		CreatedAt: post.CreatedAt,
	}
}
