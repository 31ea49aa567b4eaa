package principal

import "github.com/gin-gonic/gin"

const contextKey = "principalID"

// UserID returns the acting user's id or 0 when no principal was set.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(contextKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
