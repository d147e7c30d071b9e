package httpserver

import (
	"math"

	"github.com/gin-gonic/gin"
)

// Money crosses the wire as decimal dollars, matching what the storefront
// client renders; everything behind the API is integer cents.
func centsToDollars(cents int64) float64 {
	return float64(cents) / 100
}

func dollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
