package handler

import (
	"net/http"
	"strconv"
	"time"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/middleware"
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	invalidBodyMessage = "Format permintaan tidak sah"
)

// currentIdentity returns the signed-in identity or writes a 401 and returns false
func currentIdentity(c *gin.Context) (*service.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		utils.AppErrorResponse(c, errcode.New(errcode.AuthInvalidToken))
		return nil, false
	}
	return identity, true
}

// requireConfirmation rejects destructive requests that were sent without confirm=true
func requireConfirmation(c *gin.Context) bool {
	if !utils.IsConfirmed(c) {
		utils.AppErrorResponse(c, errcode.New(errcode.ConfirmationRequired))
		return false
	}
	return true
}

// queryYear reads ?year=, defaulting to the current year
func queryYear(c *gin.Context) (int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		utils.AppErrorResponse(c, errcode.Wrap(errcode.ValidationFailed, err))
		return 0, false
	}
	return year, true
}

// pathID reads a non-blank path parameter
func pathID(c *gin.Context, name string) (string, bool) {
	id, ok := utils.GetIDParam(c, name)
	if !ok {
		utils.AppErrorResponse(c, errcode.New(errcode.ValidationFailed))
		return "", false
	}
	return id, true
}

// pathInt reads a positive integer path parameter
func pathInt(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		utils.AppErrorResponse(c, errcode.Wrap(errcode.ValidationFailed, err))
		return 0, false
	}
	return n, true
}

// sendSpreadsheet writes an xlsx attachment
func sendSpreadsheet(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Transfer-Encoding", "binary")
	c.Data(http.StatusOK, xlsxContentType, data)
}
