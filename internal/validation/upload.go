package validation

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/dugun-dev/dugun/internal/domain"
)

// ValidateUpload checks one uploaded file against the size limit and the
// allowed MIME types and returns it as a PendingUpload with image dimensions
// probed when decodable. The caller owns the returned Data reader.
func ValidateUpload(fileHeader *multipart.FileHeader, allowedMimeTypes []string, maxSizeBytes int64) (*domain.PendingUpload, error) {
	if fileHeader.Size == 0 {
		return nil, ErrNoFile
	}
	if fileHeader.Size > maxSizeBytes {
		return nil, fmt.Errorf("%w: file exceeds the limit of %.0f MB", ErrPayloadTooLarge, FormatSizeMB(maxSizeBytes))
	}

	mimeType, err := DetectMimeType(fileHeader)
	if err != nil {
		return nil, err
	}

	allowedMimes := BuildAllowedMimeMap(allowedMimeTypes)
	if !allowedMimes[strings.ToLower(mimeType)] {
		return nil, fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}

	width, height, err := ExtractImageDimensions(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &domain.PendingUpload{
		Filename:    fileHeader.Filename,
		SizeBytes:   fileHeader.Size,
		MimeType:    strings.ToLower(mimeType),
		ImageWidth:  width,
		ImageHeight: height,
		Data:        file,
	}, nil
}

// BuildAllowedMimeMap lowercases the configured types once so lookups are
// case-insensitive.
func BuildAllowedMimeMap(mimeTypes []string) map[string]bool {
	allowedMimes := make(map[string]bool, len(mimeTypes))
	for _, m := range mimeTypes {
		allowedMimes[strings.ToLower(m)] = true
	}
	return allowedMimes
}

func DetectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detectedType := mime.TypeByExtension(ext); detectedType != "" {
			mimeType = detectedType
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}

	return mimeType, nil
}

// ExtractImageDimensions probes the decoded image size. The file must be
// rewound afterwards so the full stream reaches the provider; a failed rewind
// is an error, not a silent truncation.
func ExtractImageDimensions(file multipart.File) (*int, *int, error) {
	img, _, err := image.DecodeConfig(file)
	if err != nil {
		// Not decodable is not fatal, the provider re-validates anyway
		if _, err := file.Seek(0, 0); err != nil {
			return nil, nil, fmt.Errorf("failed to rewind uploaded file: %w", err)
		}
		return nil, nil, nil
	}

	if _, err := file.Seek(0, 0); err != nil {
		return nil, nil, fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	width, height := img.Width, img.Height
	return &width, &height, nil
}
