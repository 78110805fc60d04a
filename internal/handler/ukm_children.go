// internal/handler/ukm_children.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/ukmhub/internal/service"
)

// Kegiatan, laporan and anggota routes all live under /ukm/{ukmId} and
// share the same shape: create, update and delete scoped to the UKM.

type KegiatanHandler struct {
	kegiatanService *service.KegiatanService
}

func NewKegiatanHandler(kegiatanService *service.KegiatanService) *KegiatanHandler {
	return &KegiatanHandler{kegiatanService: kegiatanService}
}

func (h *KegiatanHandler) Create(w http.ResponseWriter, r *http.Request) {
	ukmID, ok := pathID(r, "ukmId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.KegiatanInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	kegiatan, err := h.kegiatanService.Create(r.Context(), ukmID, input)
	if err != nil {
		handleError(w, r, err, "Failed to create kegiatan")
		return
	}
	respondWithJSON(w, http.StatusCreated, kegiatan)
}

func (h *KegiatanHandler) Update(w http.ResponseWriter, r *http.Request) {
	ukmID, ok1 := pathID(r, "ukmId")
	id, ok2 := pathID(r, "kegId")
	if !ok1 || !ok2 {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.KegiatanInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	kegiatan, err := h.kegiatanService.Update(r.Context(), ukmID, id, input)
	if err != nil {
		handleError(w, r, err, "Failed to update kegiatan")
		return
	}
	respondWithJSON(w, http.StatusOK, kegiatan)
}

func (h *KegiatanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ukmID, ok1 := pathID(r, "ukmId")
	id, ok2 := pathID(r, "kegId")
	if !ok1 || !ok2 {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.kegiatanService.Delete(r.Context(), ukmID, id); err != nil {
		handleError(w, r, err, "Failed to delete kegiatan")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Kegiatan deleted"})
}

type LaporanHandler struct {
	laporanService *service.LaporanService
}

func NewLaporanHandler(laporanService *service.LaporanService) *LaporanHandler {
	return &LaporanHandler{laporanService: laporanService}
}

func (h *LaporanHandler) Create(w http.ResponseWriter, r *http.Request) {
	ukmID, ok := pathID(r, "ukmId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.LaporanInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	laporan, err := h.laporanService.Create(r.Context(), ukmID, input)
	if err != nil {
		handleError(w, r, err, "Failed to create laporan")
		return
	}
	respondWithJSON(w, http.StatusCreated, laporan)
}

func (h *LaporanHandler) Update(w http.ResponseWriter, r *http.Request) {
	ukmID, ok1 := pathID(r, "ukmId")
	id, ok2 := pathID(r, "lapId")
	if !ok1 || !ok2 {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.LaporanInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	laporan, err := h.laporanService.Update(r.Context(), ukmID, id, input)
	if err != nil {
		handleError(w, r, err, "Failed to update laporan")
		return
	}
	respondWithJSON(w, http.StatusOK, laporan)
}

func (h *LaporanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ukmID, ok1 := pathID(r, "ukmId")
	id, ok2 := pathID(r, "lapId")
	if !ok1 || !ok2 {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.laporanService.Delete(r.Context(), ukmID, id); err != nil {
		handleError(w, r, err, "Failed to delete laporan")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Laporan deleted"})
}

type AnggotaHandler struct {
	anggotaService *service.AnggotaService
}

func NewAnggotaHandler(anggotaService *service.AnggotaService) *AnggotaHandler {
	return &AnggotaHandler{anggotaService: anggotaService}
}

func (h *AnggotaHandler) Create(w http.ResponseWriter, r *http.Request) {
	ukmID, ok := pathID(r, "ukmId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.AnggotaInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	anggota, err := h.anggotaService.Create(r.Context(), ukmID, input)
	if err != nil {
		handleError(w, r, err, "Failed to create anggota")
		return
	}
	respondWithJSON(w, http.StatusCreated, anggota)
}

func (h *AnggotaHandler) Update(w http.ResponseWriter, r *http.Request) {
	ukmID, ok1 := pathID(r, "ukmId")
	id, ok2 := pathID(r, "angId")
	if !ok1 || !ok2 {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input service.AnggotaInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	anggota, err := h.anggotaService.Update(r.Context(), ukmID, id, input)
	if err != nil {
		handleError(w, r, err, "Failed to update anggota")
		return
	}
	respondWithJSON(w, http.StatusOK, anggota)
}

func (h *AnggotaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ukmID, ok1 := pathID(r, "ukmId")
	id, ok2 := pathID(r, "angId")
	if !ok1 || !ok2 {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.anggotaService.Delete(r.Context(), ukmID, id); err != nil {
		handleError(w, r, err, "Failed to delete anggota")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Anggota deleted"})
}
