package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apollo1008/donnie-marketplace/internal/config"
	"github.com/apollo1008/donnie-marketplace/internal/store"
)

// UploadHandler handles image uploads for the dev server.
type UploadHandler struct {
	cfg   *config.Config
	store store.IStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(cfg *config.Config, st store.IStore) *UploadHandler {
	return &UploadHandler{cfg: cfg, store: st}
}

// Upload handles POST /api/upload. The body is multipart with field
// "file"; the response is {url} pointing back at GET /uploads/:key.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	maxBytes := int64(h.cfg.MaxUploadSizeMB) << 20
	if fileHeader.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("File exceeds %dMB limit", h.cfg.MaxUploadSizeMB)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	key := h.store.SaveImage(fileHeader.Filename, data)
	c.JSON(http.StatusOK, gin.H{"url": h.cfg.UploadBaseURL + "/uploads/" + key})
}

// ServeImage handles GET /uploads/:key and returns the stored bytes.
func (h *UploadHandler) ServeImage(c *gin.Context) {
	key := c.Param("key")
	data, ok := h.store.GetImage(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
