package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugun-dev/dugun/internal/config"
	"github.com/dugun-dev/dugun/internal/domain"
	internal_errors "github.com/dugun-dev/dugun/internal/errors"
)

// Mock structs
type MockMessageStorage struct {
	CreateMessageFunc func(senderName, content string, imageIds []domain.ImageId) (domain.MsgId, error)
	GetMessageFunc    func(id domain.MsgId) (*domain.Message, error)
	GetMessagesFunc   func() ([]domain.Message, error)
	DeleteMessageFunc func(id domain.MsgId) error
}

func (m *MockMessageStorage) CreateMessage(senderName, content string, imageIds []domain.ImageId) (domain.MsgId, error) {
	if m.CreateMessageFunc != nil {
		return m.CreateMessageFunc(senderName, content, imageIds)
	}
	return 1, nil
}

func (m *MockMessageStorage) GetMessage(id domain.MsgId) (*domain.Message, error) {
	if m.GetMessageFunc != nil {
		return m.GetMessageFunc(id)
	}
	return &domain.Message{Id: id}, nil
}

func (m *MockMessageStorage) GetMessages() ([]domain.Message, error) {
	if m.GetMessagesFunc != nil {
		return m.GetMessagesFunc()
	}
	return []domain.Message{}, nil
}

func (m *MockMessageStorage) DeleteMessage(id domain.MsgId) error {
	if m.DeleteMessageFunc != nil {
		return m.DeleteMessageFunc(id)
	}
	return nil
}

type MockImageFinder struct {
	ExistingImageIdsFunc func(ids []domain.ImageId) ([]domain.ImageId, error)
}

func (m *MockImageFinder) ExistingImageIds(ids []domain.ImageId) ([]domain.ImageId, error) {
	if m.ExistingImageIdsFunc != nil {
		return m.ExistingImageIdsFunc(ids)
	}
	return ids, nil
}

func testMessageConfig() *config.Message {
	return &config.Message{MaxImages: 4, MaxContentLength: 1000, MaxSenderNameLength: 100}
}

func requireBadRequest(t *testing.T, err error, wantMessage string) {
	t.Helper()
	require.Error(t, err)
	var statusErr *internal_errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.StatusCode)
	assert.Equal(t, wantMessage, statusErr.Message)
}

func TestMessageCreate(t *testing.T) {
	storage := &MockMessageStorage{}
	finder := &MockImageFinder{}
	service := NewMessage(storage, finder, testMessageConfig())

	// Test successful creation with content and images
	storage.CreateMessageFunc = func(senderName, content string, imageIds []domain.ImageId) (domain.MsgId, error) {
		assert.Equal(t, "Ayşe", senderName)
		assert.Equal(t, "Congratulations!", content)
		assert.Equal(t, []domain.ImageId{1, 2}, imageIds)
		return 42, nil
	}
	storage.GetMessageFunc = func(id domain.MsgId) (*domain.Message, error) {
		assert.Equal(t, domain.MsgId(42), id)
		return &domain.Message{Id: id, SenderName: "Ayşe", Content: "Congratulations!"}, nil
	}

	message, err := service.Create(domain.MessageCreationData{
		SenderName: "  Ayşe  ",
		Content:    " Congratulations! ",
		ImageIds:   []domain.ImageId{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MsgId(42), message.Id)

	// Test storage error passthrough
	mockError := errors.New("Mock CreateMessageFunc")
	storage.CreateMessageFunc = func(senderName, content string, imageIds []domain.ImageId) (domain.MsgId, error) {
		return 0, mockError
	}
	_, err = service.Create(domain.MessageCreationData{SenderName: "Ayşe", Content: "hi"})
	require.ErrorIs(t, err, mockError)
}

func TestMessageCreateSenderValidation(t *testing.T) {
	storage := &MockMessageStorage{}
	finder := &MockImageFinder{}
	service := NewMessage(storage, finder, testMessageConfig())

	// Empty sender
	_, err := service.Create(domain.MessageCreationData{SenderName: "", Content: "hi"})
	requireBadRequest(t, err, "Sender name is required")

	// Whitespace-only sender
	_, err = service.Create(domain.MessageCreationData{SenderName: "   ", Content: "hi"})
	requireBadRequest(t, err, "Sender name is required")

	// Sender that is nothing but markup gets rejected after sanitization
	_, err = service.Create(domain.MessageCreationData{SenderName: "<script>alert(1)</script>", Content: "hi"})
	requireBadRequest(t, err, "Sender name is required")

	// Sender too long (limit counts runes, not bytes)
	_, err = service.Create(domain.MessageCreationData{SenderName: strings.Repeat("ğ", 101), Content: "hi"})
	requireBadRequest(t, err, "Sender name is too long")

	// Exactly at the limit is fine
	_, err = service.Create(domain.MessageCreationData{SenderName: strings.Repeat("ğ", 100), Content: "hi"})
	require.NoError(t, err)
}

func TestMessageCreateContentValidation(t *testing.T) {
	storage := &MockMessageStorage{}
	finder := &MockImageFinder{}
	service := NewMessage(storage, finder, testMessageConfig())

	// Content too long
	_, err := service.Create(domain.MessageCreationData{SenderName: "Ayşe", Content: strings.Repeat("a", 1001)})
	requireBadRequest(t, err, "Message content is too long")

	// Empty content with no images
	_, err = service.Create(domain.MessageCreationData{SenderName: "Ayşe", Content: "  "})
	requireBadRequest(t, err, "Message content or at least one image is required")

	// Empty content with at least one image is allowed
	_, err = service.Create(domain.MessageCreationData{SenderName: "Ayşe", Content: "", ImageIds: []domain.ImageId{7}})
	require.NoError(t, err)

	// Markup gets stripped but surrounding text survives
	storage.CreateMessageFunc = func(senderName, content string, imageIds []domain.ImageId) (domain.MsgId, error) {
		assert.Equal(t, "hello world", content)
		return 1, nil
	}
	_, err = service.Create(domain.MessageCreationData{SenderName: "Ayşe", Content: "hello <b>world</b>"})
	require.NoError(t, err)
}

func TestMessageCreateImageValidation(t *testing.T) {
	storage := &MockMessageStorage{}
	finder := &MockImageFinder{}
	service := NewMessage(storage, finder, testMessageConfig())

	// Too many images
	_, err := service.Create(domain.MessageCreationData{
		SenderName: "Ayşe",
		Content:    "hi",
		ImageIds:   []domain.ImageId{1, 2, 3, 4, 5},
	})
	requireBadRequest(t, err, "At most 4 images can be attached")

	// Duplicates collapse before the limit check, order preserved
	storage.CreateMessageFunc = func(senderName, content string, imageIds []domain.ImageId) (domain.MsgId, error) {
		assert.Equal(t, []domain.ImageId{3, 1, 2}, imageIds)
		return 1, nil
	}
	finder.ExistingImageIdsFunc = func(ids []domain.ImageId) ([]domain.ImageId, error) {
		assert.Equal(t, []domain.ImageId{3, 1, 2}, ids)
		return ids, nil
	}
	_, err = service.Create(domain.MessageCreationData{
		SenderName: "Ayşe",
		Content:    "hi",
		ImageIds:   []domain.ImageId{3, 1, 3, 2, 1, 3},
	})
	require.NoError(t, err)

	// Unknown ids reject the whole message, nothing persisted
	created := false
	storage.CreateMessageFunc = func(senderName, content string, imageIds []domain.ImageId) (domain.MsgId, error) {
		created = true
		return 1, nil
	}
	finder.ExistingImageIdsFunc = func(ids []domain.ImageId) ([]domain.ImageId, error) {
		return []domain.ImageId{1}, nil
	}
	_, err = service.Create(domain.MessageCreationData{
		SenderName: "Ayşe",
		Content:    "hi",
		ImageIds:   []domain.ImageId{1, 9, 12},
	})
	requireBadRequest(t, err, "Image ids not found: 9, 12")
	assert.False(t, created, "storage must not be touched when image ids are unknown")

	// Finder error passthrough
	mockError := errors.New("Mock ExistingImageIdsFunc")
	finder.ExistingImageIdsFunc = func(ids []domain.ImageId) ([]domain.ImageId, error) {
		return nil, mockError
	}
	_, err = service.Create(domain.MessageCreationData{SenderName: "Ayşe", ImageIds: []domain.ImageId{1}})
	require.ErrorIs(t, err, mockError)
}

func TestMessageList(t *testing.T) {
	storage := &MockMessageStorage{}
	service := NewMessage(storage, &MockImageFinder{}, testMessageConfig())

	expected := []domain.Message{{Id: 2, SenderName: "b"}, {Id: 1, SenderName: "a"}}
	storage.GetMessagesFunc = func() ([]domain.Message, error) { return expected, nil }

	messages, err := service.List()
	require.NoError(t, err)
	assert.Equal(t, expected, messages)

	mockError := errors.New("Mock GetMessagesFunc")
	storage.GetMessagesFunc = func() ([]domain.Message, error) { return nil, mockError }
	_, err = service.List()
	require.ErrorIs(t, err, mockError)
}

func TestMessageDelete(t *testing.T) {
	storage := &MockMessageStorage{}
	service := NewMessage(storage, &MockImageFinder{}, testMessageConfig())

	var deletedId domain.MsgId
	storage.DeleteMessageFunc = func(id domain.MsgId) error {
		deletedId = id
		return nil
	}
	require.NoError(t, service.Delete(5))
	assert.Equal(t, domain.MsgId(5), deletedId)

	notFound := internal_errors.NotFound("Message not found")
	storage.DeleteMessageFunc = func(id domain.MsgId) error { return notFound }
	err := service.Delete(5)
	require.ErrorIs(t, err, notFound)
}
