package reports

import (
	"net/http"
	"strings"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/reports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// newTrackingCode builds the short code citizens quote on follow-up calls.
// Example: "RPT-9f86d081"
func newTrackingCode() string {
	return "RPT-" + strings.Split(uuid.NewString(), "-")[0]
}

type createReportRequest struct {
	Type         string   `json:"type" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	District     string   `json:"district" binding:"required"`
	LocationText string   `json:"location_text"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
}

// POST /reports (citizen)
func CreateReport(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !reports.ValidType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown incident type"})
		return
	}

	report := reports.IncidentReport{
		TrackingCode: newTrackingCode(),
		ReporterID:   userID,
		Type:         req.Type,
		Description:  req.Description,
		District:     req.District,
		LocationText: req.LocationText,
		Lat:          req.Lat,
		Lng:          req.Lng,
		Status:       reports.StatusPending,
	}

	if err := database.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":            report.ID,
		"tracking_code": report.TrackingCode,
		"status":        report.Status,
	})
}

// GET /reports (citizen) — own reports only
func ListMyReports(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var out []reports.IncidentReport
	if err := database.DB.
		Where("reporter_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// GET /reports/track/:code (public) — status lookup by tracking code
func TrackReport(c *gin.Context) {
	var report reports.IncidentReport
	err := database.DB.Where("tracking_code = ?", c.Param("code")).First(&report).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No report with that tracking code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up report"})
		return
	}

	// Public view: status only, no reporter details
	c.JSON(http.StatusOK, gin.H{
		"tracking_code": report.TrackingCode,
		"type":          report.Type,
		"district":      report.District,
		"status":        report.Status,
		"created_at":    report.CreatedAt,
	})
}

// GET /admin/reports — all reports, filterable by status/district
func ListAllReports(c *gin.Context) {
	q := database.DB.Model(&reports.IncidentReport{})

	if status := c.Query("status"); status != "" {
		if !reports.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
		q = q.Where("status = ?", status)
	}
	if district := c.Query("district"); district != "" {
		q = q.Where("district = ?", district)
	}

	var out []reports.IncidentReport
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// POST /admin/reports/:id/status
func SetReportStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !reports.ValidStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	res := database.DB.Model(&reports.IncidentReport{}).
		Where("id = ?", c.Param("id")).
		Update("status", body.Status)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report status updated"})
}

type createAssessmentRequest struct {
	ReportID      *string  `json:"report_id"`
	StructureType string   `json:"structure_type" binding:"required"`
	DamageLevel   string   `json:"damage_level" binding:"required"`
	EstimatedLoss float64  `json:"estimated_loss"`
	Description   string   `json:"description"`
	District      string   `json:"district" binding:"required"`
	PhotoKeys     []string `json:"photo_keys"`
}

// POST /assessments (citizen)
func CreateAssessment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req createAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Linked report must exist and belong to the same citizen
	if req.ReportID != nil {
		var linked reports.IncidentReport
		err := database.DB.Where("id = ? AND reporter_id = ?", *req.ReportID, userID).First(&linked).Error
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Linked report not found"})
			return
		}
	}

	assessment := reports.DamageAssessment{
		ReporterID:    userID,
		ReportID:      req.ReportID,
		StructureType: req.StructureType,
		DamageLevel:   req.DamageLevel,
		EstimatedLoss: req.EstimatedLoss,
		Description:   req.Description,
		District:      req.District,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assessment).Error; err != nil {
			return err
		}
		for _, key := range req.PhotoKeys {
			photo := reports.PhotoKey{AssessmentID: assessment.ID, Key: key}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit assessment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": assessment.ID})
}

// GET /assessments (citizen) — own assessments
func ListMyAssessments(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var out []reports.DamageAssessment
	if err := database.DB.
		Preload("PhotoKeys").
		Where("reporter_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assessments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessments": out})
}

// GET /admin/assessments
func ListAllAssessments(c *gin.Context) {
	q := database.DB.Model(&reports.DamageAssessment{}).Preload("PhotoKeys")
	if district := c.Query("district"); district != "" {
		q = q.Where("district = ?", district)
	}

	var out []reports.DamageAssessment
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assessments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessments": out})
}
