package feed

import (
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/app/http/middleware"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/alerts"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/content"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/reports"

	"github.com/gin-gonic/gin"
)

const (
	publicWindow = 48 * time.Hour
	publicLimit  = 20
	premiumLimit = 200
)

// GET /feed — merged alerts, verified reports and published pages, newest
// first. Anonymous and free users get a short recent tail; premium users can
// page through the full history with ?since and ?limit.
func GetFeed(c *gin.Context) {
	flags, _ := middleware.CurrentFlags(c)
	premium := flags.IsPremium

	now := time.Now()
	since := now.Add(-publicWindow)
	limit := publicLimit

	if premium {
		since = time.Time{}
		limit = premiumLimit
		if raw := c.Query("since"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid since (want RFC3339)"})
				return
			}
			since = t
		}
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > premiumLimit {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = n
		}
	}

	district := c.Query("district")

	alertItems, err := loadAlertItems(now, since, district)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}
	reportItems, err := loadReportItems(since, district)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}
	pageItems, err := loadPageItems(since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   Merge(limit, alertItems, reportItems, pageItems),
		"premium": premium,
	})
}

func loadAlertItems(now, since time.Time, district string) ([]Item, error) {
	q := database.DB.Model(&alerts.Alert{}).
		Where("active = ? AND (expires_at IS NULL OR expires_at > ?)", true, now)
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	if district != "" {
		q = q.Where("district = ? OR district = ''", district)
	}

	var rows []alerts.Alert
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows))
	for _, a := range rows {
		items = append(items, Item{
			Kind:     KindAlert,
			ID:       a.ID,
			Title:    a.Title,
			Summary:  truncate(a.Body, 200),
			District: a.District,
			Severity: a.Severity,
			At:       a.CreatedAt,
		})
	}
	return items, nil
}

// Only verified reports surface in the public timeline.
func loadReportItems(since time.Time, district string) ([]Item, error) {
	q := database.DB.Model(&reports.IncidentReport{}).
		Where("status = ?", reports.StatusVerified)
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	if district != "" {
		q = q.Where("district = ?", district)
	}

	var rows []reports.IncidentReport
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, Item{
			Kind:     KindReport,
			ID:       r.ID,
			Title:    "Verified incident: " + r.Type,
			Summary:  truncate(r.Description, 200),
			District: r.District,
			At:       r.CreatedAt,
		})
	}
	return items, nil
}

func loadPageItems(since time.Time) ([]Item, error) {
	q := database.DB.Model(&content.Page{}).
		Where("status = ?", content.StatusPublished)
	if !since.IsZero() {
		q = q.Where("updated_at >= ?", since)
	}

	var rows []content.Page
	if err := q.Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows))
	for _, p := range rows {
		items = append(items, Item{
			Kind:    KindPage,
			ID:      p.ID,
			Title:   p.Title,
			Summary: p.Category,
			At:      p.UpdatedAt,
		})
	}
	return items, nil
}

// truncate cuts on rune boundaries. Descriptions are often Urdu; a byte
// slice would split a multi-byte character and corrupt the summary.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "…"
}
