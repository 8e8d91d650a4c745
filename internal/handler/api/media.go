package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/pkg/config"
)

// Accepted image extensions for apartment photos.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type MediaHandler struct {
	cfg config.UploadsConfig
}

func NewMediaHandler(cfg config.UploadsConfig) *MediaHandler {
	return &MediaHandler{cfg: cfg}
}

// @Summary Upload image
// @Description Upload an apartment image (admin only)
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /admin/uploads [post]
func (h *MediaHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}

	if file.Size > h.cfg.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("File exceeds the %d byte limit", h.cfg.MaxFileSize),
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Only jpg, jpeg, png, gif and webp images are accepted",
		})
		return
	}

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Server-generated name; the client's filename is never trusted.
	name := uuid.New().String() + ext
	dst := filepath.Join(h.cfg.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"filename": name,
		"url":      "/uploads/" + name,
	})
}

// Batch uploads are capped per request.
const maxBatchUpload = 10

// @Summary Upload images
// @Description Upload up to 10 apartment images in one request (admin only)
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Image files"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /admin/uploads/multiple [post]
func (h *MediaHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No files uploaded",
		})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No files uploaded",
		})
		return
	}
	if len(files) > maxBatchUpload {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("At most %d images per upload", maxBatchUpload),
		})
		return
	}

	// The whole batch is validated before anything touches disk, so a bad
	// file never leaves a partial upload behind.
	for _, file := range files {
		if file.Size > h.cfg.MaxFileSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("File %q exceeds the %d byte limit", file.Filename, h.cfg.MaxFileSize),
			})
			return
		}
		if !allowedImageExts[strings.ToLower(filepath.Ext(file.Filename))] {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Only jpg, jpeg, png, gif and webp images are accepted",
			})
			return
		}
	}

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	uploaded := make([]gin.H, 0, len(files))
	for _, file := range files {
		name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.Dir, name)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		uploaded = append(uploaded, gin.H{
			"filename": name,
			"url":      "/uploads/" + name,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"count": len(uploaded),
		"files": uploaded,
	})
}

// @Summary List images
// @Description List uploaded apartment images (admin only)
// @Tags media
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /admin/uploads [get]
func (h *MediaHandler) ListImages(c *gin.Context) {
	entries, err := os.ReadDir(h.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing uploaded yet.
			c.JSON(http.StatusOK, gin.H{"count": 0, "files": []gin.H{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	files := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, gin.H{
			"filename":   entry.Name(),
			"url":        "/uploads/" + entry.Name(),
			"size":       info.Size(),
			"uploadedAt": info.ModTime(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(files),
		"files": files,
	})
}

// @Summary Delete image
// @Description Remove an uploaded apartment image (admin only)
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param filename path string true "Stored filename"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/uploads/{filename} [delete]
func (h *MediaHandler) DeleteImage(c *gin.Context) {
	name := c.Param("filename")
	// Only names this handler generated are deletable, which also rules out
	// path traversal.
	if name != filepath.Base(name) || !allowedImageExts[strings.ToLower(filepath.Ext(name))] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filename",
		})
		return
	}

	if err := os.Remove(filepath.Join(h.cfg.Dir, name)); err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Image not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
