package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/winehouse/internal/models"
)

// UploadHandler stores admin file uploads under the public images
// directory and records their metadata.
type UploadHandler struct {
	db        *gorm.DB
	uploadDir string
}

// NewUploadHandler constructs UploadHandler, creating the upload directory
// when missing.
func NewUploadHandler(db *gorm.DB, uploadDir string) *UploadHandler {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		panic(fmt.Sprintf("failed to create upload directory %s: %v", uploadDir, err))
	}
	return &UploadHandler{db: db, uploadDir: uploadDir}
}

// Upload accepts a multipart file, stores it under a collision-resistant
// name preserving the original extension, and returns its public URL.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no file provided")
	}

	suffix := uuid.New().String()[:8]
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, filepath.Ext(file.Filename))

	if err := c.SaveFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		return err
	}

	upload := models.Upload{
		Filename:     filename,
		OriginalName: file.Filename,
		MimeType:     file.Header.Get(fiber.HeaderContentType),
		Size:         file.Size,
	}

	if err := h.db.Create(&upload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"url":      "/images/uploads/" + filename,
		"filename": filename,
		"id":       upload.ID,
	})
}

// List returns upload metadata, newest first.
func (h *UploadHandler) List(c *fiber.Ctx) error {
	var uploads []models.Upload
	if err := h.db.Order("created_at desc").Find(&uploads).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": uploads})
}
