package facilities

import (
	"net/http"

	"github.com/tfxTanoli/disaster-management-system-sub000/database"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/domain/facilities"

	"github.com/gin-gonic/gin"
)

// GET /facilities (public)
func ListFacilities(c *gin.Context) {
	q := database.DB.Model(&facilities.Facility{}).Where("operational = true")

	if kind := c.Query("kind"); kind != "" {
		if !facilities.ValidKind(kind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown facility kind"})
			return
		}
		q = q.Where("kind = ?", kind)
	}
	if district := c.Query("district"); district != "" {
		q = q.Where("district = ?", district)
	}

	var out []facilities.Facility
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load facilities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"facilities": out})
}

// GET /ngos (public)
func ListNGOs(c *gin.Context) {
	q := database.DB.Model(&facilities.NGO{}).Where("active = true")
	if district := c.Query("district"); district != "" {
		q = q.Where("district = ?", district)
	}

	var out []facilities.NGO
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load NGOs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ngos": out})
}

type facilityRequest struct {
	Name        string   `json:"name" binding:"required"`
	Kind        string   `json:"kind" binding:"required"`
	District    string   `json:"district"`
	Address     string   `json:"address"`
	Contact     string   `json:"contact"`
	Capacity    *int     `json:"capacity"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Operational *bool    `json:"operational"`
}

// POST /admin/facilities
func CreateFacility(c *gin.Context) {
	var req facilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !facilities.ValidKind(req.Kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown facility kind"})
		return
	}

	f := facilities.Facility{
		Name:        req.Name,
		Kind:        req.Kind,
		District:    req.District,
		Address:     req.Address,
		Contact:     req.Contact,
		Capacity:    req.Capacity,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Operational: true,
	}
	if req.Operational != nil {
		f.Operational = *req.Operational
	}

	if err := database.DB.Create(&f).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create facility"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

// PUT /admin/facilities/:id
func UpdateFacility(c *gin.Context) {
	var f facilities.Facility
	if err := database.DB.First(&f, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
		return
	}

	var req facilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !facilities.ValidKind(req.Kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown facility kind"})
		return
	}

	updates := map[string]interface{}{
		"name":     req.Name,
		"kind":     req.Kind,
		"district": req.District,
		"address":  req.Address,
		"contact":  req.Contact,
		"capacity": req.Capacity,
		"lat":      req.Lat,
		"lng":      req.Lng,
	}
	if req.Operational != nil {
		updates["operational"] = *req.Operational
	}

	if err := database.DB.Model(&f).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update facility"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Facility updated"})
}

// DELETE /admin/facilities/:id
func DeleteFacility(c *gin.Context) {
	res := database.DB.Delete(&facilities.Facility{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete facility"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Facility deleted"})
}

type ngoRequest struct {
	Name     string `json:"name" binding:"required"`
	Focus    string `json:"focus"`
	District string `json:"district"`
	Contact  string `json:"contact"`
	Website  string `json:"website"`
	Active   *bool  `json:"active"`
}

// POST /admin/ngos
func CreateNGO(c *gin.Context) {
	var req ngoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ngo := facilities.NGO{
		Name:     req.Name,
		Focus:    req.Focus,
		District: req.District,
		Contact:  req.Contact,
		Website:  req.Website,
		Active:   true,
	}
	if req.Active != nil {
		ngo.Active = *req.Active
	}

	if err := database.DB.Create(&ngo).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "NGO may already exist"})
		return
	}
	c.JSON(http.StatusCreated, ngo)
}

// PUT /admin/ngos/:id
func UpdateNGO(c *gin.Context) {
	var ngo facilities.NGO
	if err := database.DB.First(&ngo, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "NGO not found"})
		return
	}

	var req ngoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":     req.Name,
		"focus":    req.Focus,
		"district": req.District,
		"contact":  req.Contact,
		"website":  req.Website,
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if err := database.DB.Model(&ngo).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update NGO"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "NGO updated"})
}
