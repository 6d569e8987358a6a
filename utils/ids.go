package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// ObjectPath builds a storage path such as "bid-images/<uid>-<unix millis>.<ext>"
func ObjectPath(folder, uid string, at time.Time, ext string) string {
	return fmt.Sprintf("%s/%s-%d.%s", folder, uid, at.UnixMilli(), ext)
}
