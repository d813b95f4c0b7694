package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dugun-dev/dugun/internal/config"
	"github.com/dugun-dev/dugun/internal/domain"
	internal_errors "github.com/dugun-dev/dugun/internal/errors"
)

type MessageService interface {
	Create(data domain.MessageCreationData) (*domain.Message, error)
	List() ([]domain.Message, error)
	Delete(id domain.MsgId) error
}

type MessageStorage interface {
	// CreateMessage persists the message and one association per image id in
	// a single transaction.
	CreateMessage(senderName, content string, imageIds []domain.ImageId) (domain.MsgId, error)
	GetMessage(id domain.MsgId) (*domain.Message, error)
	GetMessages() ([]domain.Message, error)
	DeleteMessage(id domain.MsgId) error
}

// ImageFinder resolves which of the requested image ids actually exist.
type ImageFinder interface {
	ExistingImageIds(ids []domain.ImageId) ([]domain.ImageId, error)
}

type Message struct {
	storage MessageStorage
	images  ImageFinder
	cfg     *config.Message
}

func NewMessage(storage MessageStorage, images ImageFinder, cfg *config.Message) MessageService {
	return &Message{storage, images, cfg}
}

// Create validates the request end to end before any write happens. Every
// referenced image must exist up front: an association pointing at a missing
// image could not be rolled back cleanly once the cascade chain owns it.
func (s *Message) Create(data domain.MessageCreationData) (*domain.Message, error) {
	senderName := sanitizeText(strings.TrimSpace(data.SenderName))
	if senderName == "" {
		return nil, internal_errors.BadRequest("Sender name is required")
	}
	if utf8.RuneCountInString(senderName) > s.cfg.MaxSenderNameLength {
		return nil, internal_errors.BadRequest("Sender name is too long")
	}

	content := sanitizeText(strings.TrimSpace(data.Content))
	if utf8.RuneCountInString(content) > s.cfg.MaxContentLength {
		return nil, internal_errors.BadRequest("Message content is too long")
	}

	imageIds := dedupeIds(data.ImageIds)
	if content == "" && len(imageIds) == 0 {
		return nil, internal_errors.BadRequest("Message content or at least one image is required")
	}
	if len(imageIds) > s.cfg.MaxImages {
		return nil, internal_errors.BadRequest(fmt.Sprintf("At most %d images can be attached", s.cfg.MaxImages))
	}

	if len(imageIds) > 0 {
		existing, err := s.images.ExistingImageIds(imageIds)
		if err != nil {
			return nil, err
		}
		if missing := missingIds(imageIds, existing); len(missing) > 0 {
			return nil, internal_errors.BadRequest("Image ids not found: " + joinIds(missing))
		}
	}

	id, err := s.storage.CreateMessage(senderName, content, imageIds)
	if err != nil {
		return nil, err
	}
	return s.storage.GetMessage(id)
}

func (s *Message) List() ([]domain.Message, error) {
	return s.storage.GetMessages()
}

func (s *Message) Delete(id domain.MsgId) error {
	return s.storage.DeleteMessage(id)
}

// dedupeIds drops duplicates keeping first-seen order.
func dedupeIds(ids []domain.ImageId) []domain.ImageId {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[domain.ImageId]bool, len(ids))
	out := make([]domain.ImageId, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func missingIds(requested, existing []domain.ImageId) []domain.ImageId {
	found := make(map[domain.ImageId]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}
	var missing []domain.ImageId
	for _, id := range requested {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinIds(ids []domain.ImageId) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
