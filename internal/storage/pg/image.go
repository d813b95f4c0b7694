package pg

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/dugun-dev/dugun/internal/domain"
	internal_errors "github.com/dugun-dev/dugun/internal/errors"
)

// CreateImage saves provider metadata for an uploaded asset. uploaded_at is
// assigned here so every row carries the same clock.
func (s *Storage) CreateImage(image *domain.Image) (domain.ImageId, error) {
	uploadedTs := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway

	var id domain.ImageId
	err := s.db.QueryRow(`
	INSERT INTO images(public_id, original_url, optimized_url, cropped_url, width, height, uploaded_at)
	VALUES($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`,
		image.PublicId, image.OriginalUrl, image.OptimizedUrl, image.CroppedUrl, image.Width, image.Height, uploadedTs).Scan(&id)
	if err != nil {
		return -1, err
	}
	return id, nil
}

func (s *Storage) GetImage(id domain.ImageId) (*domain.Image, error) {
	var image domain.Image
	err := s.db.QueryRow(`
	SELECT
		id,
		public_id,
		original_url,
		optimized_url,
		cropped_url,
		width,
		height,
		uploaded_at
	FROM images
	WHERE id = $1`, id).Scan(
		&image.Id, &image.PublicId, &image.OriginalUrl, &image.OptimizedUrl, &image.CroppedUrl, &image.Width, &image.Height, &image.UploadedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Image not found")
		}
		return nil, err
	}
	return &image, nil
}

// GetImages returns all images, newest upload first.
func (s *Storage) GetImages() ([]domain.Image, error) {
	rows, err := s.db.Query(`
	SELECT
		id,
		public_id,
		original_url,
		optimized_url,
		cropped_url,
		width,
		height,
		uploaded_at
	FROM images
	ORDER BY uploaded_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		var image domain.Image
		if err := rows.Scan(&image.Id, &image.PublicId, &image.OriginalUrl, &image.OptimizedUrl, &image.CroppedUrl, &image.Width, &image.Height, &image.UploadedAt); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

// DeleteImage removes the row; the FK cascade drops associations pointing at it.
func (s *Storage) DeleteImage(id domain.ImageId) error {
	result, err := s.db.Exec(`DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("Image not found")
	}
	return nil
}

// ExistingImageIds returns the subset of ids that have a row.
func (s *Storage) ExistingImageIds(ids []domain.ImageId) ([]domain.ImageId, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(`SELECT id FROM images WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var existing []domain.ImageId
	for rows.Next() {
		var id domain.ImageId
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing = append(existing, id)
	}
	return existing, rows.Err()
}
