package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dugun-dev/dugun/internal/utils"
	"github.com/dugun-dev/dugun/internal/validation"
)

// UploadImage accepts a multipart form with a single "file" field, validates
// it and hands it to the image service.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	upload := h.cfg.Public.Upload

	maxRequestSize := validation.CalculateMaxRequestSize(upload.MaxFileSizeBytes, 1<<20)
	if err := validation.ValidateAndParseMultipart(r, w, maxRequestSize); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		http.Error(w, "No file provided", http.StatusBadRequest)
		return
	}

	pending, err := validation.ValidateUpload(files[0], upload.AllowedMimeTypes, upload.MaxFileSizeBytes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if closer, ok := pending.Data.(io.Closer); ok {
		defer closer.Close()
	}

	image, err := h.image.Upload(r.Context(), pending)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, image)
}

func (h *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.image.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, images)
}

func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "image id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.image.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, deleteResponse{Message: "Image deleted", DeletedId: id})
}
