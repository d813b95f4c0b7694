package domain

import "io"

// PendingUpload is a validated file ready to be sent to the image provider.
type PendingUpload struct {
	Filename    string
	SizeBytes   int64
	MimeType    string
	ImageWidth  *int
	ImageHeight *int
	Data        io.Reader
}
