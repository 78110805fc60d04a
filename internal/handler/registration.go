// internal/handler/registration.go
package handler

import (
	"fmt"
	"net/http"

	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/service"
)

type RegistrationHandler struct {
	registrationService *service.RegistrationService
}

func NewRegistrationHandler(registrationService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

type RegistrationResponse struct {
	Message      string              `json:"message"`
	Registration *model.Registration `json:"registration"`
}

func (h *RegistrationHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	views, err := h.registrationService.ListForUser(r.Context(), identity(r), userID)
	if err != nil {
		handleError(w, r, err, "Failed to fetch registrations")
		return
	}
	respondWithJSON(w, http.StatusOK, nonNil(views))
}

func (h *RegistrationHandler) ListKegiatanForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	views, err := h.registrationService.ListKegiatanForUser(r.Context(), identity(r), userID)
	if err != nil {
		handleError(w, r, err, "Failed to fetch kegiatan registrations")
		return
	}
	respondWithJSON(w, http.StatusOK, nonNil(views))
}

func (h *RegistrationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	views, err := h.registrationService.ListAll(r.Context(), identity(r))
	if err != nil {
		handleError(w, r, err, "Failed to fetch registrations")
		return
	}
	respondWithJSON(w, http.StatusOK, nonNil(views))
}

func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateRegistrationInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	reg, err := h.registrationService.Create(r.Context(), identity(r), input)
	if err != nil {
		handleError(w, r, err, "Failed to register")
		return
	}
	respondWithJSON(w, http.StatusCreated, RegistrationResponse{
		Message:      "✅ Berhasil daftar! Menunggu konfirmasi admin",
		Registration: reg,
	})
}

func (h *RegistrationHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.TransitionInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	reg, err := h.registrationService.Transition(r.Context(), identity(r), id, input)
	if err != nil {
		handleError(w, r, err, "Failed to update registration status")
		return
	}
	respondWithJSON(w, http.StatusOK, RegistrationResponse{
		Message:      fmt.Sprintf("✅ Status diubah ke %s", reg.Status),
		Registration: reg,
	})
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
