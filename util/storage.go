package util

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hamyaran/hamyar-api/config"
)

// SaveUploadedFile persists an optional multipart file field under
// UPLOADDIR/<prefix>/ with a random name, returning the stored relative path.
// A missing field is not an error; it returns an empty path so JSON-only
// submissions pass through untouched.
func SaveUploadedFile(c *gin.Context, field, prefix string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read file field %s: %w", field, err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dir := filepath.Join(config.LoadConfig().UploadDir, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("failed to store file %s: %w", field, err)
	}

	return filepath.Join(prefix, name), nil
}
