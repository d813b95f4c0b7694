package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dugun-dev/dugun/internal/domain"
	internal_errors "github.com/dugun-dev/dugun/internal/errors"
)

// Delivery transformations requested from the provider.
const (
	transformationOptimized = "q_auto,f_auto"
	transformationCropped   = "w_800,h_600,c_fill,g_auto"
)

type ImageService interface {
	Upload(ctx context.Context, pending *domain.PendingUpload) (*domain.Image, error)
	List() ([]domain.Image, error)
	Delete(ctx context.Context, id domain.ImageId) error
}

// MediaUploader is the port to the external image hosting provider.
type MediaUploader interface {
	// Upload stores the bytes under the requested public id and returns the
	// provider-assigned id plus the secure delivery URL of the original.
	Upload(ctx context.Context, data io.Reader, mimeType, publicId string) (assignedId, secureUrl string, err error)

	// Destroy removes the stored asset.
	Destroy(ctx context.Context, publicId string) error

	// URL builds a delivery URL for the asset with a transformation applied.
	URL(publicId, transformation string) string
}

type ImageStorage interface {
	CreateImage(image *domain.Image) (domain.ImageId, error)
	GetImage(id domain.ImageId) (*domain.Image, error)
	GetImages() ([]domain.Image, error)
	DeleteImage(id domain.ImageId) error
}

type Image struct {
	storage  ImageStorage
	uploader MediaUploader
}

func NewImage(storage ImageStorage, uploader MediaUploader) ImageService {
	return &Image{storage, uploader}
}

// Upload pushes the validated file to the provider and records its metadata.
// The row is written only after the provider confirms, so a provider failure
// never leaves an orphaned local image.
func (s *Image) Upload(ctx context.Context, pending *domain.PendingUpload) (*domain.Image, error) {
	publicId := fmt.Sprintf("wedding_%s_%d", uuid.NewString(), time.Now().UTC().UnixNano())

	assignedId, secureUrl, err := s.uploader.Upload(ctx, pending.Data, pending.MimeType, publicId)
	if err != nil {
		log.Printf("provider upload failed for %s: %v", pending.Filename, err)
		return nil, internal_errors.BadRequest("Image could not be uploaded")
	}

	id, err := s.storage.CreateImage(&domain.Image{
		PublicId:     assignedId,
		OriginalUrl:  secureUrl,
		OptimizedUrl: s.uploader.URL(assignedId, transformationOptimized),
		CroppedUrl:   s.uploader.URL(assignedId, transformationCropped),
		Width:        pending.ImageWidth,
		Height:       pending.ImageHeight,
	})
	if err != nil {
		return nil, err
	}
	return s.storage.GetImage(id)
}

func (s *Image) List() ([]domain.Image, error) {
	return s.storage.GetImages()
}

// Delete removes the provider asset best effort, then the local row.
// The cascade drops any associations referencing the image.
func (s *Image) Delete(ctx context.Context, id domain.ImageId) error {
	image, err := s.storage.GetImage(id)
	if err != nil {
		return err
	}

	if err := s.uploader.Destroy(ctx, image.PublicId); err != nil {
		// Provider cleanup failure must not block local deletion
		log.Printf("provider destroy failed for %s: %v", image.PublicId, err)
	}

	return s.storage.DeleteImage(id)
}
