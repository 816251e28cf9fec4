package weather

import (
	"fmt"
	"net/http"

	"github.com/tfxTanoli/disaster-management-system-sub000/config"
	"github.com/tfxTanoli/disaster-management-system-sub000/internal/infra/predict"

	"github.com/gin-gonic/gin"
)

// GET /weather?district=... — public forecast proxy. Returns a neutral
// placeholder when the upstream is down so the portal home page still renders.
func GetForecast(c *gin.Context) {
	district := c.Query("district")
	if district == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing district"})
		return
	}

	client := predict.NewClient(config.WEATHER_API_URL)

	fc, err := client.ForecastFor(c.Request.Context(), district)
	if err != nil {
		fmt.Println("⚠️ weather service unavailable:", err)
		c.JSON(http.StatusOK, gin.H{
			"forecast": predict.Forecast{District: district, Condition: "unknown"},
			"degraded": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecast": fc})
}
