package contentapi

import (
	"encoding/json"
	"net/http"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/content"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /pages (public) — published pages only
func ListPublishedPages(c *gin.Context) {
	q := database.DB.Model(&content.Page{}).Where("status = ?", content.StatusPublished)
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var pages []content.Page
	if err := q.Order("title ASC").Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	out := ListPagesResponse{Pages: make([]PageSummaryDTO, 0, len(pages))}
	for _, p := range pages {
		out.Pages = append(out.Pages, PageSummaryDTO{
			ID: p.ID, Slug: p.Slug, Title: p.Title, Category: p.Category, Lang: p.Lang,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /pages/:slug (public)
func GetPublishedPage(c *gin.Context) {
	var page content.Page
	err := database.DB.
		Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_index ASC") }).
		First(&page, "slug = ? AND status = ?", c.Param("slug"), content.StatusPublished).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	c.JSON(http.StatusOK, toPageDTO(page))
}

// GET /admin/pages — drafts included
func ListAllPages(c *gin.Context) {
	var pages []content.Page
	if err := database.DB.Order("updated_at DESC").Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	out := ListPagesResponse{Pages: make([]PageSummaryDTO, 0, len(pages))}
	for _, p := range pages {
		out.Pages = append(out.Pages, PageSummaryDTO{
			ID: p.ID, Slug: p.Slug, Title: p.Title, Category: p.Category, Lang: p.Lang,
		})
	}
	c.JSON(http.StatusOK, out)
}

// POST /admin/pages — create as draft, slug derived from title
func CreatePage(c *gin.Context) {
	var req upsertPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := req.Lang
	if lang == "" {
		lang = "en"
	}

	page := content.Page{
		Slug:     content.MakeSlug(req.Title),
		Title:    req.Title,
		Category: req.Category,
		Lang:     lang,
		Status:   content.StatusDraft,
		AuthorID: c.GetUint("user_id"),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&page).Error; err != nil {
			return err
		}
		return insertBlocks(tx, page.ID, req.Blocks)
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to create page (slug may already exist)"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": page.ID, "slug": page.Slug})
}

// PUT /admin/pages/:id — update metadata and replace all blocks
func UpdatePage(c *gin.Context) {
	var page content.Page
	if err := database.DB.First(&page, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var req upsertPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":    req.Title,
			"category": req.Category,
		}
		if req.Lang != "" {
			updates["lang"] = req.Lang
		}
		if err := tx.Model(&page).Updates(updates).Error; err != nil {
			return err
		}
		// Full block replacement keeps ordering trivial
		if err := tx.Where("page_id = ?", page.ID).Delete(&content.PageBlock{}).Error; err != nil {
			return err
		}
		return insertBlocks(tx, page.ID, req.Blocks)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Page updated"})
}

// POST /admin/pages/:id/publish
func PublishPage(c *gin.Context) {
	setPageStatus(c, content.StatusPublished)
}

// POST /admin/pages/:id/unpublish
func UnpublishPage(c *gin.Context) {
	setPageStatus(c, content.StatusDraft)
}

// DELETE /admin/pages/:id
func DeletePage(c *gin.Context) {
	res := database.DB.Delete(&content.Page{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page deleted"})
}

func setPageStatus(c *gin.Context, status string) {
	res := database.DB.Model(&content.Page{}).
		Where("id = ?", c.Param("id")).
		Update("status", status)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func insertBlocks(tx *gorm.DB, pageID string, blocks []upsertBlock) error {
	for i, b := range blocks {
		props := b.Props
		if len(props) == 0 {
			props = json.RawMessage(`{}`)
		}
		block := content.PageBlock{
			PageID:    pageID,
			SortIndex: i,
			Type:      b.Type,
			Props:     props,
		}
		if err := tx.Create(&block).Error; err != nil {
			return err
		}
	}
	return nil
}

func toPageDTO(p content.Page) PageDTO {
	dto := PageDTO{
		ID:       p.ID,
		Slug:     p.Slug,
		Title:    p.Title,
		Category: p.Category,
		Lang:     p.Lang,
		Status:   p.Status,
		Blocks:   make([]BlockDTO, 0, len(p.Blocks)),
	}
	for _, b := range p.Blocks {
		dto.Blocks = append(dto.Blocks, BlockDTO{
			ID:        b.ID,
			Type:      b.Type,
			SortIndex: b.SortIndex,
			Props:     b.Props,
		})
	}
	return dto
}
