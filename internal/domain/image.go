package domain

import "time"

type ImageId = int64

// Image is metadata for an asset stored at the image provider.
// The provider owns the bytes; locally we only keep the public id,
// the delivery URLs derived from it and the probed pixel dimensions.
// Width and Height are nil when the file could not be decoded locally.
type Image struct {
	Id           ImageId   `json:"id"`
	PublicId     string    `json:"publicId"`
	OriginalUrl  string    `json:"originalUrl"`
	OptimizedUrl string    `json:"optimizedUrl"`
	CroppedUrl   string    `json:"croppedUrl"`
	Width        *int      `json:"width"`
	Height       *int      `json:"height"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
