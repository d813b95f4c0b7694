package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/dugun-dev/dugun/internal/config"
	"github.com/dugun-dev/dugun/internal/service"
)

// Pinger reports readiness of the backing database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	image   service.ImageService
	message service.MessageService
	health  Pinger
	cfg     *config.Config
}

func New(image service.ImageService, message service.MessageService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{image, message, health, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Print(err.Error())
	}
}

// deleteResponse is the body both DELETE endpoints return.
type deleteResponse struct {
	Message   string `json:"message"`
	DeletedId int64  `json:"deletedId"`
}
