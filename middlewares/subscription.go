package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
)

// Subscription blocks mutating routes once the company subscription has
// lapsed. Reads stay open so the day can still be reviewed.
func Subscription(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		var company models.Company
		if err := db.Order("id ASC").First(&company).Error; err != nil {
			c.Next() // no company row yet, nothing to gate on
			return
		}
		if !company.IsActive || company.SubscriptionEnd.Before(time.Now()) {
			c.JSON(http.StatusForbidden, gin.H{"message": "subscription expired"})
			c.Abort()
			return
		}
		c.Next()
	}
}
