package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// UintParam parses a numeric path parameter.
func UintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
