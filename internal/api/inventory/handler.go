package inventory

import (
	"net/http"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/inventory"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/inventory
func ListItems(c *gin.Context) {
	q := database.DB.Model(&inventory.Item{})
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if warehouse := c.Query("warehouse"); warehouse != "" {
		q = q.Where("warehouse = ?", warehouse)
	}

	var items []inventory.Item
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inventory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GET /admin/inventory/low-stock
func ListLowStock(c *gin.Context) {
	var items []inventory.Item
	err := database.DB.
		Where("low_stock_threshold > 0 AND quantity <= low_stock_threshold").
		Order("quantity ASC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inventory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type itemRequest struct {
	Name              string `json:"name" binding:"required"`
	Category          string `json:"category" binding:"required"`
	Unit              string `json:"unit" binding:"required"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Warehouse         string `json:"warehouse"`
}

// POST /admin/inventory
func CreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be negative"})
		return
	}

	item := inventory.Item{
		Name:              req.Name,
		Category:          req.Category,
		Unit:              req.Unit,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		Warehouse:         req.Warehouse,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /admin/inventory/:id
func UpdateItem(c *gin.Context) {
	var item inventory.Item
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be negative"})
		return
	}

	updates := map[string]interface{}{
		"name":                req.Name,
		"category":            req.Category,
		"unit":                req.Unit,
		"quantity":            req.Quantity,
		"low_stock_threshold": req.LowStockThreshold,
		"warehouse":           req.Warehouse,
	}
	if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated"})
}

// POST /admin/inventory/:id/adjust — relative stock movement, atomic
func AdjustQuantity(c *gin.Context) {
	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var item inventory.Item
		if err := tx.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		next := item.Quantity + body.Delta
		if next < 0 {
			return errNegativeStock
		}
		return tx.Model(&item).Update("quantity", next).Error
	})
	if err == errNegativeStock {
		c.JSON(http.StatusConflict, gin.H{"error": "Adjustment would make stock negative"})
		return
	}
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock adjusted"})
}

// DELETE /admin/inventory/:id
func DeleteItem(c *gin.Context) {
	res := database.DB.Delete(&inventory.Item{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
