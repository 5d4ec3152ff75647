package middleware

import (
	"errors"
	"strings"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/models"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CurrentUserKey is the gin context key holding the authenticated user.
const CurrentUserKey = "currentUser"

// Auth verifies the access token and puts the resolved user into the
// gin context. Tokens are read from the accessToken cookie first, then
// from the Authorization header.
func Auth(tokens *util.TokenIssuer, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if cookie, err := c.Cookie("accessToken"); err == nil {
			tokenStr = cookie
		}

		if tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tokenStr = parts[1]
				}
			}
		}

		if tokenStr == "" {
			util.AbortFail(c, apperr.Auth("Unauthorized request"))
			return
		}

		claims, err := tokens.VerifyAccessToken(tokenStr)
		if err != nil {
			util.AbortFail(c, apperr.Auth("Invalid access token"))
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.AbortFail(c, apperr.Auth("Invalid access token"))
			} else {
				util.AbortFail(c, apperr.Internal(""))
			}
			return
		}

		c.Set(CurrentUserKey, &user)
		c.Next()
	}
}

// CurrentUser fetches the authenticated user placed by Auth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
