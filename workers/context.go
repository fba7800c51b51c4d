package workers

import "github.com/gin-gonic/gin"

const uploadsKey = "uploads"

func SetUploadsToContext(p *UploadProcessor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(uploadsKey, p)
		c.Next()
	}
}

func UploadsInstance(c *gin.Context) *UploadProcessor {
	v, ok := c.Get(uploadsKey)
	if !ok {
		return nil
	}
	p, _ := v.(*UploadProcessor)
	return p
}
