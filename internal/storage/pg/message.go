package pg

import (
	"database/sql"
	"errors"
	"time"

	"github.com/dugun-dev/dugun/internal/domain"
	internal_errors "github.com/dugun-dev/dugun/internal/errors"
)

// CreateMessage persists the message row plus one association row per image
// id in a single transaction, so a failing association insert leaves nothing
// behind.
func (s *Storage) CreateMessage(senderName, content string, imageIds []domain.ImageId) (domain.MsgId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return -1, err
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	createdTs := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway

	var id domain.MsgId
	err = tx.QueryRow(`
	INSERT INTO messages(sender_name, content, created_at)
	VALUES($1, $2, $3)
	RETURNING id`, senderName, content, createdTs).Scan(&id)
	if err != nil {
		return -1, err
	}

	for _, imageId := range imageIds {
		if _, err := tx.Exec(`
		INSERT INTO message_images(message_id, image_id)
		VALUES($1, $2)`, id, imageId); err != nil {
			return -1, err
		}
	}

	if err := tx.Commit(); err != nil {
		return -1, err
	}

	return id, nil
}

func (s *Storage) GetMessage(id domain.MsgId) (*domain.Message, error) {
	var msg domain.Message
	err := s.db.QueryRow(`
	SELECT
		id,
		sender_name,
		content,
		created_at
	FROM messages
	WHERE id = $1`, id).Scan(&msg.Id, &msg.SenderName, &msg.Content, &msg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Message not found")
		}
		return nil, err
	}
	msg.Images = []domain.MessageImage{}

	idToMessage := map[domain.MsgId]*domain.Message{msg.Id: &msg}
	if err := s.enrichMessagesWithImages(idToMessage); err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetMessages returns all messages newest first, with associations and their
// image details eagerly loaded.
func (s *Storage) GetMessages() ([]domain.Message, error) {
	rows, err := s.db.Query(`
	SELECT
		id,
		sender_name,
		content,
		created_at
	FROM messages
	ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.Id, &msg.SenderName, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msg.Images = []domain.MessageImage{}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	idToMessage := make(map[domain.MsgId]*domain.Message, len(messages))
	for i := range messages {
		idToMessage[messages[i].Id] = &messages[i]
	}
	if err := s.enrichMessagesWithImages(idToMessage); err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteMessage removes the row; the FK cascade drops its associations while
// the referenced images stay.
func (s *Storage) DeleteMessage(id domain.MsgId) error {
	result, err := s.db.Exec(`DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return internal_errors.NotFound("Message not found")
	}
	return nil
}
