package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// GetPaginationParams reads page and limit from the query string with defaults
func GetPaginationParams(c *gin.Context) (int, int) {
	page := defaultPage
	limit := defaultLimit

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// GetIDParam returns a trimmed path parameter, false when it is empty
func GetIDParam(c *gin.Context, name string) (string, bool) {
	id := strings.TrimSpace(c.Param(name))
	return id, id != ""
}

// IsConfirmed reports whether the request carries confirm=true
func IsConfirmed(c *gin.Context) bool {
	confirmed, err := strconv.ParseBool(c.Query("confirm"))
	return err == nil && confirmed
}
