// Package handler contains the HTTP endpoint implementations. Handlers
// bind and validate input, call one service method, and translate service
// errors into the response envelope. No business logic lives here.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
