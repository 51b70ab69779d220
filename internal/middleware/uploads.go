package middleware

import (
	"mime"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// UploadHeaders makes served upload content embeddable from anywhere:
// previews render inside viewers and iframes hosted on other origins.
// The content type is pinned from the extension so converted PDFs and
// office originals are not served as opaque downloads.
func UploadHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
		c.Writer.Header().Set("Accept-Ranges", "bytes")

		if mt := mime.TypeByExtension(filepath.Ext(c.Request.URL.Path)); mt != "" {
			c.Writer.Header().Set("Content-Type", mt)
		}

		c.Next()
	}
}
