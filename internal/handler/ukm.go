// internal/handler/ukm.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/ukmhub/internal/service"
)

type UKMHandler struct {
	ukmService *service.UKMService
}

func NewUKMHandler(ukmService *service.UKMService) *UKMHandler {
	return &UKMHandler{ukmService: ukmService}
}

func (h *UKMHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.ukmService.List(r.Context())
	if err != nil {
		handleError(w, r, err, "Failed to fetch UKM")
		return
	}
	respondWithJSON(w, http.StatusOK, details)
}

func (h *UKMHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "ukmId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	detail, err := h.ukmService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err, "Failed to fetch UKM")
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

func (h *UKMHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.UKMInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	ukm, err := h.ukmService.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err, "Failed to create UKM")
		return
	}
	respondWithJSON(w, http.StatusCreated, ukm)
}

func (h *UKMHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "ukmId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.UKMInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	ukm, err := h.ukmService.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err, "Failed to update UKM")
		return
	}
	respondWithJSON(w, http.StatusOK, ukm)
}

func (h *UKMHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "ukmId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.ukmService.Delete(r.Context(), id); err != nil {
		handleError(w, r, err, "Failed to delete UKM")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "UKM deleted successfully"})
}
