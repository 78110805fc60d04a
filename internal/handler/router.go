// internal/handler/router.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/middleware"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups every resource handler mounted by NewRouter.
type Handlers struct {
	UKM          *UKMHandler
	Kegiatan     *KegiatanHandler
	Laporan      *LaporanHandler
	Anggota      *AnggotaHandler
	Registration *RegistrationHandler
	Komentar     *KomentarHandler
	AuditLog     *AuditLogHandler
}

type RouterConfig struct {
	Logger         *slog.Logger
	Tokens         middleware.TokenValidator
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.CaptureRequestMeta)
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	authenticated := middleware.Authenticate(cfg.Tokens)
	adminLogin := middleware.AuthenticateWith(cfg.Tokens, middleware.AuthMessages{
		Missing: domain.ErrAdminLoginRequired.Message,
		Invalid: domain.ErrInvalidToken.Message,
	})
	commenterLogin := middleware.AuthenticateWith(cfg.Tokens, middleware.AuthMessages{
		Missing: domain.ErrLoginRequiredToPost.Message,
		Invalid: domain.ErrTokenTidakValid.Message,
	})
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	jsonBody := chimw.AllowContentType("application/json")

	r.Route("/ukm", func(r chi.Router) {
		r.Get("/", h.UKM.List)
		r.Get("/{ukmId}", h.UKM.Get)

		r.Group(func(r chi.Router) {
			r.Use(adminLogin, adminOnly, jsonBody)

			r.Post("/", h.UKM.Create)
			r.Put("/{ukmId}", h.UKM.Update)
			r.Delete("/{ukmId}", h.UKM.Delete)

			r.Post("/{ukmId}/kegiatan", h.Kegiatan.Create)
			r.Put("/{ukmId}/kegiatan/{kegId}", h.Kegiatan.Update)
			r.Delete("/{ukmId}/kegiatan/{kegId}", h.Kegiatan.Delete)

			r.Post("/{ukmId}/laporan", h.Laporan.Create)
			r.Put("/{ukmId}/laporan/{lapId}", h.Laporan.Update)
			r.Delete("/{ukmId}/laporan/{lapId}", h.Laporan.Delete)

			r.Post("/{ukmId}/anggota", h.Anggota.Create)
			r.Put("/{ukmId}/anggota/{angId}", h.Anggota.Update)
			r.Delete("/{ukmId}/anggota/{angId}", h.Anggota.Delete)
		})
	})

	r.Route("/pendaftar", func(r chi.Router) {
		r.Use(authenticated)

		r.Get("/user/{userId}", h.Registration.ListForUser)
		r.Get("/kegiatan/user/{userId}", h.Registration.ListKegiatanForUser)
		r.With(jsonBody).Post("/", h.Registration.Create)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", h.Registration.ListAll)
			r.With(jsonBody).Patch("/{id}", h.Registration.Transition)
		})
	})

	// {id} is the UKM on GET and POST, the comment on PUT and DELETE.
	r.Route("/ukm-komentar", func(r chi.Router) {
		r.Get("/{id}", h.Komentar.List)

		r.Group(func(r chi.Router) {
			r.Use(commenterLogin, jsonBody)
			r.Post("/{id}", h.Komentar.Create)
			r.Put("/{id}", h.Komentar.Update)
			r.Delete("/{id}", h.Komentar.Delete)
		})
	})

	r.Route("/audit-logs", func(r chi.Router) {
		r.Use(authenticated, adminOnly)
		r.Get("/", h.AuditLog.GetAuditLogs)
		r.Get("/{id}", h.AuditLog.GetAuditLogByID)
	})

	return r
}
