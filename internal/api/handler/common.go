package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// parseAsOf 解析 as_of 查询参数，缺省表示以当前时刻为窗口终点
func parseAsOf(c *gin.Context) (time.Time, bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
