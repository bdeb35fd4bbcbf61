package validator

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"blog-service/internal/domain"
)

// sniffLen is how much of an upload is read to detect its type.
const sniffLen = 3072

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ValidateImage checks the size of an upload and detects its real content
// type from the leading bytes. On success the upload's ContentType is set to
// the detected type and its Reader is rewound to include the sniffed bytes.
func (v *Validator) ValidateImage(img *domain.ImageUpload) error {
	if img == nil {
		return nil
	}
	if img.Size <= 0 {
		return domain.NewValidationError("featured_image", "image_empty")
	}
	if v.maxImageBytes > 0 && img.Size > v.maxImageBytes {
		return domain.NewValidationError("featured_image", fmt.Sprintf("image_exceeds_%d_bytes", v.maxImageBytes))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(img.Reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return domain.NewValidationError("featured_image", "image_unreadable")
	}
	head = head[:n]
	img.Reader = io.MultiReader(bytes.NewReader(head), img.Reader)

	detected := mimetype.Detect(head)
	ext, ok := allowedImageTypes[detected.String()]
	if !ok {
		return domain.NewValidationError("featured_image", "image_type_not_allowed")
	}

	img.ContentType = detected.String()
	if img.Filename == "" {
		img.Filename = "image" + ext
	}
	return nil
}
