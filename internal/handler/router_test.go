package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/audit"
	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/handler"
	"github.com/dangerclosesec/ukmhub/internal/mocks"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	router       http.Handler
	tokens       *auth.TokenManager
	ukmRepo      *mocks.MockUKMRepositoryIface
	kegiatanRepo *mocks.MockKegiatanRepositoryIface
	laporanRepo  *mocks.MockLaporanRepositoryIface
	anggotaRepo  *mocks.MockAnggotaRepositoryIface
	komentarRepo *mocks.MockKomentarRepositoryIface
	regRepo      *mocks.MockRegistrationRepositoryIface
	userRepo     *mocks.MockUserRepositoryIface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	f := &fixture{
		tokens:       tokens,
		ukmRepo:      mocks.NewMockUKMRepositoryIface(ctrl),
		kegiatanRepo: mocks.NewMockKegiatanRepositoryIface(ctrl),
		laporanRepo:  mocks.NewMockLaporanRepositoryIface(ctrl),
		anggotaRepo:  mocks.NewMockAnggotaRepositoryIface(ctrl),
		komentarRepo: mocks.NewMockKomentarRepositoryIface(ctrl),
		regRepo:      mocks.NewMockRegistrationRepositoryIface(ctrl),
		userRepo:     mocks.NewMockUserRepositoryIface(ctrl),
	}

	tx := mocks.NewMockTransactor(ctrl)
	tx.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	cache := service.NewCacheService(service.CacheConfig{TTL: time.Minute, CleanupFreq: time.Minute})
	t.Cleanup(cache.Close)
	noop := &audit.NoOpLogger{}

	f.router = handler.NewRouter(handler.RouterConfig{Tokens: tokens}, handler.Handlers{
		UKM: handler.NewUKMHandler(service.NewUKMService(
			tx, f.ukmRepo, f.kegiatanRepo, f.anggotaRepo, f.laporanRepo, cache, noop)),
		Kegiatan: handler.NewKegiatanHandler(service.NewKegiatanService(f.ukmRepo, f.kegiatanRepo, cache, noop)),
		Laporan:  handler.NewLaporanHandler(service.NewLaporanService(f.ukmRepo, f.laporanRepo, cache, noop)),
		Anggota:  handler.NewAnggotaHandler(service.NewAnggotaService(tx, f.ukmRepo, f.anggotaRepo, cache, noop)),
		Registration: handler.NewRegistrationHandler(service.NewRegistrationService(
			tx, f.regRepo, f.userRepo, f.ukmRepo, f.kegiatanRepo, f.anggotaRepo, cache, noop, nil)),
		Komentar: handler.NewKomentarHandler(service.NewKomentarService(tx, f.komentarRepo, f.ukmRepo, cache, noop)),
		AuditLog: handler.NewAuditLogHandler(service.NewAuditLogService(nil)),
	})
	return f
}

func (f *fixture) token(t *testing.T, userID int64, role model.Role) string {
	t.Helper()
	token, err := f.tokens.Generate(userID, role)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestAuthGuards(t *testing.T) {
	f := newFixture(t)
	memberToken := f.token(t, 42, model.RoleMember)

	tests := []struct {
		name    string
		method  string
		path    string
		token   string
		body    string
		status  int
		message string
	}{
		{"missing token", http.MethodGet, "/pendaftar", "", "", http.StatusUnauthorized, "Access token required"},
		{"garbage token", http.MethodGet, "/pendaftar", "not-a-jwt", "", http.StatusForbidden, "Invalid token"},
		{"member on admin route", http.MethodGet, "/pendaftar", memberToken, "", http.StatusForbidden, "Admin access only"},
		{"member creating ukm", http.MethodPost, "/ukm", memberToken, `{"nama":"x"}`, http.StatusForbidden, "Admin access only"},
		{"member reading audit log", http.MethodGet, "/audit-logs", memberToken, "", http.StatusForbidden, "Admin access only"},
		{"anonymous comment", http.MethodPost, "/ukm-komentar/5", "", `{"komentar":"bagus sekali"}`, http.StatusUnauthorized, "Login diperlukan untuk komen!"},
		{"garbage token on comment", http.MethodPut, "/ukm-komentar/5", "not-a-jwt", `{"komentar":"bagus sekali"}`, http.StatusForbidden, "Token tidak valid"},
		{"anonymous ukm create", http.MethodPost, "/ukm", "", `{"nama":"x"}`, http.StatusUnauthorized, "Login required (Admin only)"},
		{"garbage token on ukm delete", http.MethodDelete, "/ukm/5", "not-a-jwt", "", http.StatusForbidden, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.method, tt.path, tt.token, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decode(t, rec)["error"])
		})
	}
}

func TestGetUKMNotFound(t *testing.T) {
	f := newFixture(t)
	f.ukmRepo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(nil, domain.ErrUKMNotFound)

	rec := f.do(t, http.MethodGet, "/ukm/999", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"UKM not found"}`, rec.Body.String())
}

func TestNonNumericID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/ukm/abc", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	f := newFixture(t)
	adminToken := f.token(t, 1, model.RoleAdmin)

	rec := f.do(t, http.MethodPost, "/ukm", adminToken, `{"nama":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request payload", decode(t, rec)["error"])
}

func TestCreateRegistration(t *testing.T) {
	f := newFixture(t)
	f.ukmRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
	f.regRepo.EXPECT().Exists(gomock.Any(), int64(42), int64(5), model.RegistrationAnggota).Return(false, nil)
	f.regRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reg *model.Registration) error {
			reg.ID = 7
			return nil
		})

	rec := f.do(t, http.MethodPost, "/pendaftar", f.token(t, 42, model.RoleMember), `{"ukm_id":5,"type":"anggota"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "✅ Berhasil daftar! Menunggu konfirmasi admin", body["message"])

	reg := body["registration"].(map[string]interface{})
	assert.EqualValues(t, 42, reg["user_id"])
	assert.EqualValues(t, 5, reg["ukm_id"])
	assert.Nil(t, reg["kegiatan_id"])
	assert.Equal(t, "anggota", reg["type"])
	assert.Equal(t, "pending", reg["status"])
}

func TestCreateRegistrationDuplicate(t *testing.T) {
	f := newFixture(t)
	f.ukmRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
	f.regRepo.EXPECT().Exists(gomock.Any(), int64(42), int64(5), model.RegistrationAnggota).Return(true, nil)

	rec := f.do(t, http.MethodPost, "/pendaftar", f.token(t, 42, model.RoleMember), `{"ukm_id":5,"type":"anggota"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Sudah terdaftar", decode(t, rec)["error"])
}

func TestTransitionRegistration(t *testing.T) {
	f := newFixture(t)
	f.regRepo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&model.Registration{
		ID:     7,
		UserID: 42,
		UKMID:  5,
		Type:   model.RegistrationAnggota,
		Status: model.StatusPending,
	}, nil)
	f.regRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), model.StatusAccepted).
		DoAndReturn(func(_ context.Context, reg *model.Registration, s model.RegistrationStatus) error {
			reg.Status = s
			return nil
		})
	f.userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(&model.User{ID: 42, Nama: "Sari", NIM: "12345"}, nil)
	f.anggotaRepo.EXPECT().ExistsByNIM(gomock.Any(), int64(5), "12345").Return(false, nil)
	f.anggotaRepo.EXPECT().
		Create(gomock.Any(), &model.Anggota{UKMID: 5, Nama: "Sari", NIM: "12345", Jabatan: model.DefaultJabatan}).
		Return(nil)
	f.ukmRepo.EXPECT().SetMemberFlag(gomock.Any(), int64(5), true).Return(nil)

	rec := f.do(t, http.MethodPatch, "/pendaftar/7", f.token(t, 1, model.RoleAdmin), `{"status":"accepted"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "✅ Status diubah ke accepted", body["message"])
	assert.Equal(t, "accepted", body["registration"].(map[string]interface{})["status"])
}

func TestListRegistrationsForOtherUser(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/pendaftar/user/7", f.token(t, 42, model.RoleMember), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateKomentarTooShort(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/ukm-komentar/5", f.token(t, 42, model.RoleMember), `{"komentar":"  pendek  "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Komentar minimal 10 karakter", decode(t, rec)["error"])
}

func TestDeleteKomentar(t *testing.T) {
	f := newFixture(t)
	f.komentarRepo.EXPECT().
		Deactivate(gomock.Any(), int64(3), int64(42), false).
		Return(&model.Komentar{ID: 3, UKMID: 5, UserID: 42}, nil)

	rec := f.do(t, http.MethodDelete, "/ukm-komentar/3", f.token(t, 42, model.RoleMember), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"✅ Komentar dihapus"}`, rec.Body.String())
}

func TestDeleteUKM(t *testing.T) {
	f := newFixture(t)
	f.ukmRepo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	rec := f.do(t, http.MethodDelete, "/ukm/5", f.token(t, 1, model.RoleAdmin), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"UKM deleted successfully"}`, rec.Body.String())
}

func TestInternalErrorIsGeneric(t *testing.T) {
	f := newFixture(t)
	f.ukmRepo.EXPECT().FindAll(gomock.Any()).Return(nil, assert.AnError)

	rec := f.do(t, http.MethodGet, "/ukm", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch UKM"}`, rec.Body.String())
}
