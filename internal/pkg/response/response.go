package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The mobile app predates this rewrite, so the wire contract is fixed:
// successful payloads are returned as-is and every failure is
// {"error": "..."} with the appropriate status code.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Internal surfaces the underlying error text to the caller. Debatable, but
// the field crew relies on it to report problems over the phone.
func Internal(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
