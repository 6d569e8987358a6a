package objectstore

import (
	"fmt"

	"marketplace-bidding/internal/biddingerrors"

	"github.com/gabriel-vasile/mimetype"
)

// imageExtensions lists the image types accepted for upload and their file extension
var imageExtensions = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/bmp":  "bmp",
	"image/tiff": "tiff",
	"image/webp": "webp",
}

// DetectImage sniffs data and returns its content type and file extension.
// Anything outside the image allow-list is rejected.
func DetectImage(data []byte) (contentType, ext string, err error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("%w: empty file", biddingerrors.ErrInvalidImage)
	}
	detected := mimetype.Detect(data)
	ext, ok := imageExtensions[detected.String()]
	if !ok {
		return "", "", fmt.Errorf("%w: %s is not an accepted image type", biddingerrors.ErrInvalidImage, detected.String())
	}
	return detected.String(), ext, nil
}
