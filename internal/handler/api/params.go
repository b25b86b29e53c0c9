package api

import (
	"strconv"

	"hostelops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

func parsePageParams(c *gin.Context) (*queries.Cursor, int) {
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	return cursor, limit
}
