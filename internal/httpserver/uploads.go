package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashionstore/pkg/images"
	"fashionstore/pkg/storage"
)

func uploadHandler(store *storage.ObjectStorage, maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			errorJSON(c, http.StatusServiceUnavailable, "uploads are not configured")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		file, header, err := c.Request.FormFile("image")
		if err != nil {
			errorJSON(c, http.StatusBadRequest, "image file required")
			return
		}
		defer file.Close()
		if !images.IsSupported(header.Header.Get("Content-Type")) {
			errorJSON(c, http.StatusBadRequest, "unsupported image type")
			return
		}
		data, contentType, err := images.Process(file)
		if err != nil {
			errorJSON(c, http.StatusBadRequest, "could not process image")
			return
		}
		url, err := store.UploadBuffer(c.Request.Context(), data, contentType)
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, "upload failed")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}
