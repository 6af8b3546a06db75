package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/storage"
)

// SetupRoutes registers every "/api/*" endpoint.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.ImageStore) {
	api := r.Group("/api")

	SetupCustomerRoutes(api, db, store)
	SetupUserRoutes(api, db)
	SetupCatalogRoutes(api, db)
	SetupPaymentMethodRoutes(api, db)
	SetupPostRoutes(api, db, store)
	SetupOrderRoutes(api, db)
	SetupSalesRoutes(api, db, store)
	SetupDashboardRoutes(api, db)
}
