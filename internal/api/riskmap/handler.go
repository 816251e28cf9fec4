package riskmap

import (
	"fmt"
	"net/http"

	"github.com/tfxTanoli/disaster-management-system-sub000/config"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/infra/predict"

	"github.com/gin-gonic/gin"
)

// GET /premium/risk-map — per-district hazard risk scores from the prediction
// service. Upstream trouble degrades to an empty map instead of failing the
// page.
func GetRiskMap(c *gin.Context) {
	client := predict.NewClient(config.PREDICT_API_URL)

	risks, err := client.DistrictRisks(c.Request.Context())
	if err != nil {
		fmt.Println("⚠️ prediction service unavailable:", err)
		c.JSON(http.StatusOK, gin.H{
			"risks":    []predict.DistrictRisk{},
			"degraded": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"risks": risks})
}
