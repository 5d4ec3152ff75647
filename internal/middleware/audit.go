package middleware

import (
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit records authenticated requests after the handler has run.
// Best-effort: a failed insert never affects the response.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		user, ok := CurrentUser(c)
		if !ok {
			return
		}

		userID := user.ID
		entry := models.AuditLog{
			UserID:    &userID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&entry).Error
	}
}
