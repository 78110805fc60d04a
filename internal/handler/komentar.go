// internal/handler/komentar.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/service"
)

type KomentarHandler struct {
	komentarService *service.KomentarService
}

func NewKomentarHandler(komentarService *service.KomentarService) *KomentarHandler {
	return &KomentarHandler{komentarService: komentarService}
}

type KomentarResponse struct {
	Message  string          `json:"message"`
	Komentar *model.Komentar `json:"komentar"`
}

// List answers GET /ukm-komentar/{id}, where id is the UKM.
func (h *KomentarHandler) List(w http.ResponseWriter, r *http.Request) {
	ukmID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	views, err := h.komentarService.List(r.Context(), ukmID)
	if err != nil {
		handleError(w, r, err, "Gagal mengambil komentar")
		return
	}
	respondWithJSON(w, http.StatusOK, views)
}

// Create answers POST /ukm-komentar/{id}, where id is the UKM.
func (h *KomentarHandler) Create(w http.ResponseWriter, r *http.Request) {
	ukmID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.KomentarInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	komentar, err := h.komentarService.Create(r.Context(), identity(r), ukmID, input)
	if err != nil {
		handleError(w, r, err, "Gagal menambahkan komentar")
		return
	}
	respondWithJSON(w, http.StatusCreated, KomentarResponse{
		Message:  "✅ Komentar berhasil ditambahkan!",
		Komentar: komentar,
	})
}

// Update answers PUT /ukm-komentar/{id}, where id is the comment.
func (h *KomentarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.KomentarInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	komentar, err := h.komentarService.Update(r.Context(), identity(r), id, input)
	if err != nil {
		handleError(w, r, err, "Gagal memperbarui komentar")
		return
	}
	respondWithJSON(w, http.StatusOK, KomentarResponse{
		Message:  "✅ Komentar diperbarui!",
		Komentar: komentar,
	})
}

func (h *KomentarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.komentarService.Delete(r.Context(), identity(r), id); err != nil {
		handleError(w, r, err, "Gagal menghapus komentar")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "✅ Komentar dihapus"})
}
