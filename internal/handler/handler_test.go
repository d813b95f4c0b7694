package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/dugun-dev/dugun/internal/config"
	"github.com/dugun-dev/dugun/internal/domain"
)

// Mock structs
type MockImageService struct {
	UploadFunc func(ctx context.Context, pending *domain.PendingUpload) (*domain.Image, error)
	ListFunc   func() ([]domain.Image, error)
	DeleteFunc func(ctx context.Context, id domain.ImageId) error
}

func (m *MockImageService) Upload(ctx context.Context, pending *domain.PendingUpload) (*domain.Image, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, pending)
	}
	return &domain.Image{Id: 1}, nil
}

func (m *MockImageService) List() ([]domain.Image, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []domain.Image{}, nil
}

func (m *MockImageService) Delete(ctx context.Context, id domain.ImageId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockMessageService struct {
	CreateFunc func(data domain.MessageCreationData) (*domain.Message, error)
	ListFunc   func() ([]domain.Message, error)
	DeleteFunc func(id domain.MsgId) error
}

func (m *MockMessageService) Create(data domain.MessageCreationData) (*domain.Message, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(data)
	}
	return &domain.Message{Id: 1}, nil
}

func (m *MockMessageService) List() ([]domain.Message, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []domain.Message{}, nil
}

func (m *MockMessageService) Delete(id domain.MsgId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type MockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{
			Upload: config.Upload{
				MaxFileSizeBytes: 52428800,
				AllowedMimeTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"},
			},
			Message: config.Message{MaxImages: 4, MaxContentLength: 1000, MaxSenderNameLength: 100},
		},
	}
}

// newTestRouter wires the handler into the same routes the real router uses.
func newTestRouter(image *MockImageService, message *MockMessageService, health *MockPinger) *chi.Mux {
	h := New(image, message, health, testConfig())

	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Route("/api", func(r chi.Router) {
		r.Route("/images", func(r chi.Router) {
			r.Post("/upload", h.UploadImage)
			r.Get("/", h.GetImages)
			r.Delete("/{id}", h.DeleteImage)
		})
		r.Route("/messages", func(r chi.Router) {
			r.Post("/", h.CreateMessage)
			r.Get("/", h.GetMessages)
			r.Delete("/{id}", h.DeleteMessage)
		})
	})
	return r
}

func doRequest(r http.Handler, method, target, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
