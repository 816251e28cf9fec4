package alerts

import (
	"net/http"
	"time"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/alerts"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /alerts (public)
// Active alerts, newest first. ?district= narrows to one district plus
// region-wide alerts; ?severity= filters exactly.
func ListActiveAlerts(c *gin.Context) {
	q := database.DB.Model(&alerts.Alert{}).
		Where("active = true").
		Where("expires_at IS NULL OR expires_at > ?", time.Now())

	if district := c.Query("district"); district != "" {
		q = q.Where("district = ? OR district = ''", district)
	}
	if severity := c.Query("severity"); severity != "" {
		if !alerts.ValidSeverity(severity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown severity"})
			return
		}
		q = q.Where("severity = ?", severity)
	}

	var out []alerts.Alert
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": out})
}

// GET /alerts/:id (public)
func GetAlert(c *gin.Context) {
	var alert alerts.Alert
	if err := database.DB.First(&alert, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load alert"})
		return
	}
	c.JSON(http.StatusOK, alert)
}

// GET /admin/alerts — everything, including deactivated and expired
func ListAllAlerts(c *gin.Context) {
	var out []alerts.Alert
	if err := database.DB.Order("created_at DESC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load alerts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": out})
}

type alertRequest struct {
	Title     string     `json:"title" binding:"required"`
	Body      string     `json:"body" binding:"required"`
	Severity  string     `json:"severity" binding:"required"`
	District  string     `json:"district"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// POST /admin/alerts — broadcast a new alert
func BroadcastAlert(c *gin.Context) {
	var req alertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !alerts.ValidSeverity(req.Severity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown severity"})
		return
	}

	alert := alerts.Alert{
		Title:      req.Title,
		Body:       req.Body,
		Severity:   req.Severity,
		District:   req.District,
		Active:     true,
		IssuedByID: c.GetUint("user_id"),
		ExpiresAt:  req.ExpiresAt,
	}

	if err := database.DB.Create(&alert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create alert"})
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// PUT /admin/alerts/:id
func UpdateAlert(c *gin.Context) {
	var alert alerts.Alert
	if err := database.DB.First(&alert, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}

	var req alertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !alerts.ValidSeverity(req.Severity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown severity"})
		return
	}

	updates := map[string]interface{}{
		"title":      req.Title,
		"body":       req.Body,
		"severity":   req.Severity,
		"district":   req.District,
		"expires_at": req.ExpiresAt,
	}
	if err := database.DB.Model(&alert).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alert"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert updated"})
}

// POST /admin/alerts/:id/deactivate
func DeactivateAlert(c *gin.Context) {
	res := database.DB.Model(&alerts.Alert{}).
		Where("id = ?", c.Param("id")).
		Update("active", false)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate alert"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert deactivated"})
}
