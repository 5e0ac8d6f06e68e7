package util

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/romana/rlog"
	"order_management/constants"
)

// ErrorStatus maps a service error to its http status code.
func ErrorStatus(err error) int {
	switch {
	case constants.IsValidationError(err), errors.Is(err, constants.ErrReferenceNotFound):
		return http.StatusBadRequest
	case errors.Is(err, constants.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// WriteError answers with the status of err. Server side failures are logged and
// replaced by an opaque message.
func WriteError(c *gin.Context, err error) {
	status := ErrorStatus(err)
	if status == http.StatusInternalServerError {
		rlog.Errorf("%s %s failed: %s", c.Request.Method, c.Request.URL.Path, err.Error())
		c.JSON(status, gin.H{"error": constants.INTERNAL_ERROR})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// BindJSON decodes the request body into reqObj, answering 400 on failure.
func BindJSON(c *gin.Context, reqObj interface{}) bool {
	if err := c.ShouldBindJSON(reqObj); err != nil {
		rlog.Error("Unmarshal request body failed: " + err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// ParseID reads the positive integer path parameter name, answering 400 on failure.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
