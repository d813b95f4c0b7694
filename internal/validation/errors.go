package validation

import "errors"

// ErrNoFile is returned when the upload contains no file or an empty file
var ErrNoFile = errors.New("no file provided")

// ErrPayloadTooLarge is returned when the request body exceeds size limits
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrInvalidMimeType is returned when an uploaded file has a disallowed MIME type
var ErrInvalidMimeType = errors.New("invalid MIME type")
