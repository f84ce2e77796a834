package middleware

import (
	"fmt"
	"net/http"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns panics into the standard 500 envelope
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: errcode.GenericMessage,
		})
	})
}

// NoRouteHandler answers unknown paths with the standard envelope
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Laluan tidak dijumpai")
	}
}

// NoMethodHandler answers unsupported methods with the standard envelope
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusMethodNotAllowed, "Kaedah tidak dibenarkan", nil)
	}
}
