package util

import (
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Success writes the uniform success envelope.
func Success(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"statusCode": status,
		"data":       data,
		"message":    message,
		"success":    true,
	})
}

// Fail writes the uniform error envelope for a service error.
func Fail(c *gin.Context, err error) {
	ae := apperr.From(err)
	errs := ae.Errs
	if errs == nil {
		errs = []string{}
	}
	c.JSON(ae.Status, gin.H{
		"statusCode": ae.Status,
		"message":    ae.Message,
		"success":    false,
		"errors":     errs,
	})
}

// AbortFail is Fail plus aborting the middleware chain.
func AbortFail(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}
