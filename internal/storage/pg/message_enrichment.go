package pg

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/dugun-dev/dugun/internal/domain"
)

// enrichMessagesWithImages fetches association rows joined with their image
// details and attaches them to the messages in idToMessage. Associations keep
// insertion order via the id sort.
func (s *Storage) enrichMessagesWithImages(idToMessage map[domain.MsgId]*domain.Message) error {
	if len(idToMessage) == 0 {
		return nil
	}

	messageIds := make([]domain.MsgId, 0, len(idToMessage))
	for id := range idToMessage {
		messageIds = append(messageIds, id)
	}

	rows, err := s.db.Query(`
		SELECT mi.id, mi.message_id, mi.image_id,
		       i.id, i.public_id, i.original_url, i.optimized_url, i.cropped_url, i.width, i.height, i.uploaded_at
		FROM message_images mi
		JOIN images i ON mi.image_id = i.id
		WHERE mi.message_id = ANY($1)
		ORDER BY mi.id
	`, pq.Array(messageIds))
	if err != nil {
		return fmt.Errorf("failed to fetch message images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var link domain.MessageImage
		var image domain.Image
		if err := rows.Scan(
			&link.Id, &link.MessageId, &link.ImageId,
			&image.Id, &image.PublicId, &image.OriginalUrl, &image.OptimizedUrl, &image.CroppedUrl, &image.Width, &image.Height, &image.UploadedAt,
		); err != nil {
			return fmt.Errorf("failed to scan message image row: %w", err)
		}
		link.Image = &image
		if msg, ok := idToMessage[link.MessageId]; ok {
			msg.Images = append(msg.Images, link)
		}
	}

	return rows.Err()
}
