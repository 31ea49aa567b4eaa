package principal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Header carries the id of the acting user. The gateway authenticates the
// caller and forwards the id; this service trusts it.
const Header = "X-Sharer-User-Id"

// Required is a Gin middleware that extracts the acting user id from the
// principal header and aborts with 400 when it is missing or not an integer.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(Header)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing " + Header + " header",
			})
			return
		}

		id, err := strconv.ParseInt(header, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid " + Header + " header",
			})
			return
		}

		// Store the principal into Gin context for later handlers.
		c.Set(contextKey, id)

		c.Next()
	}
}
