package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxListLimit = 100

// queryInt reads a non-negative integer query parameter. ok is false when the
// value is present but not a number.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func queryLimit(c *gin.Context, def int) (int, bool) {
	n, ok := queryInt(c, "limit", def)
	if !ok {
		return 0, false
	}
	if n == 0 {
		n = def
	}
	if n > maxListLimit {
		n = maxListLimit
	}
	return n, true
}
