package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/farellandr/lokly/internal/storage"
)

func StorageMiddleware(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("storage", store)
		c.Next()
	}
}

func GetStorage(c *gin.Context) storage.Storage {
	store, exists := c.Get("storage")
	if !exists {
		return nil
	}
	return store.(storage.Storage)
}
