package catalogController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/abyssiniasoftwaretechnology/E--commerce-B2B-project/models"
)

// ExportItemsToExcel streams the current stock list as an xlsx download.
func ExportItemsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Item
		if err := db.Preload("Category").Preload("SubCategory").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching items"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Items")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Category", "SubCategory",
			"Quantity", "MinQuantity", "LowStock", "Featured", "FeaturedUntil",
			"Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, item := range items {
			row := sheet.AddRow()
			row.AddCell().SetValue(item.ID)
			row.AddCell().SetValue(item.Name)
			row.AddCell().SetValue(item.Description)
			if item.Category != nil {
				row.AddCell().SetValue(item.Category.Name)
			} else {
				row.AddCell().SetValue("")
			}
			if item.SubCategory != nil {
				row.AddCell().SetValue(item.SubCategory.Name)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(item.Quantity)
			row.AddCell().SetValue(item.MinQuantity)
			row.AddCell().SetValue(item.Quantity <= item.MinQuantity)
			row.AddCell().SetValue(item.Featured)
			if item.FeaturedUntil != nil {
				row.AddCell().SetValue(item.FeaturedUntil.Format("2006-01-02 15:04:05"))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(string(item.Status))
			row.AddCell().SetValue(item.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=items.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to write Excel file"})
			return
		}
	}
}
