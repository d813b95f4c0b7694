package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dugun-dev/dugun/internal/domain"
	"github.com/dugun-dev/dugun/internal/utils"
)

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	type bodyJson struct {
		Content    string           `json:"content"`
		SenderName string           `json:"senderName"`
		ImageIds   []domain.ImageId `validate:"omitempty,dive,gt=0" json:"imageIds"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	message, err := h.message.Create(domain.MessageCreationData{
		SenderName: body.SenderName,
		Content:    body.Content,
		ImageIds:   body.ImageIds,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, message)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.message.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messages)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "message id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.message.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, deleteResponse{Message: "Message deleted", DeletedId: id})
}
