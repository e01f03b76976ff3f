package utils

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateObjectKey builds the storage key of an uploaded car image.
// Format: cars/<unix-millis>_<original filename>
func GenerateObjectKey(now time.Time, filename string) string {
	name := filepath.Base(filename)
	if name == "." || name == "/" {
		name = "upload"
	}
	return fmt.Sprintf("cars/%d_%s", now.UnixMilli(), name)
}
