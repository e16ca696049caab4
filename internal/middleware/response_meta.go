package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	responseMetaKey  = "response_meta"
	requestStartKey  = "request_start"
	processingTimeMs = "processing_time_ms"
)

// ResponseMeta records the request start so handlers can report processing time.
func ResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartKey, time.Now())
		c.Next()
	}
}

// SetMeta stores a response metadata entry for the current request.
func SetMeta(c *gin.Context, key string, value interface{}) {
	meta := ensureMeta(c)
	meta[key] = value
}

// Meta returns the metadata collected so far with the elapsed processing time.
func Meta(c *gin.Context) map[string]interface{} {
	meta := ensureMeta(c)
	if value, exists := c.Get(requestStartKey); exists {
		if start, ok := value.(time.Time); ok {
			meta[processingTimeMs] = time.Since(start).Milliseconds()
		}
	}
	return meta
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if meta, exists := c.Get(responseMetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	meta := make(map[string]interface{})
	c.Set(responseMetaKey, meta)
	return meta
}
