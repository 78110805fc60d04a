// internal/service/komentar.go
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dangerclosesec/ukmhub/internal/audit"
	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/repository"
)

const minKomentarLength = 10

type KomentarInput struct {
	Komentar string `json:"komentar"`
	Rating   *int   `json:"rating"`
}

// normalize trims the text and applies the default rating. A zero rating
// counts as absent.
func (in KomentarInput) normalize() (string, int, error) {
	text := strings.TrimSpace(in.Komentar)
	if utf8.RuneCountInString(text) < minKomentarLength {
		return "", 0, domain.ErrKomentarTooShort
	}

	rating := model.DefaultRating
	if in.Rating != nil && *in.Rating != 0 {
		if *in.Rating < 1 || *in.Rating > 5 {
			return "", 0, domain.ErrInvalidRating
		}
		rating = *in.Rating
	}
	return text, rating, nil
}

// KomentarService moderates UKM comments. Each user keeps at most one
// active comment per UKM.
type KomentarService struct {
	tx      repository.Transactor
	repo    repository.KomentarRepositoryIface
	ukmRepo repository.UKMRepositoryIface
	cache   *CacheService
	audit   audit.Logger
}

func NewKomentarService(
	tx repository.Transactor,
	repo repository.KomentarRepositoryIface,
	ukmRepo repository.UKMRepositoryIface,
	cache *CacheService,
	auditLogger audit.Logger,
) *KomentarService {
	return &KomentarService{
		tx:      tx,
		repo:    repo,
		ukmRepo: ukmRepo,
		cache:   cache,
		audit:   auditLogger,
	}
}

func (s *KomentarService) List(ctx context.Context, ukmID int64) ([]model.KomentarView, error) {
	views, err := s.repo.ListActiveByUKM(ctx, ukmID)
	if err != nil {
		return nil, err
	}
	return orEmpty(views), nil
}

func (s *KomentarService) Create(ctx context.Context, id auth.Identity, ukmID int64, input KomentarInput) (*model.Komentar, error) {
	if id.UserID == 0 {
		return nil, domain.ErrLoginRequiredToPost
	}

	text, rating, err := input.normalize()
	if err != nil {
		return nil, err
	}

	komentar := &model.Komentar{
		UKMID:    ukmID,
		UserID:   id.UserID,
		Komentar: text,
		Rating:   rating,
		IsActive: true,
	}

	err = s.tx.Transact(ctx, func(ctx context.Context) error {
		exists, err := s.ukmRepo.Exists(ctx, ukmID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrUKMNotFound
		}

		active, err := s.repo.HasActive(ctx, ukmID, id.UserID)
		if err != nil {
			return err
		}
		if active {
			return domain.ErrAlreadyCommented
		}

		return s.repo.Create(ctx, komentar)
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateUKM(ctx, ukmID)
	return komentar, nil
}

// Update edits the caller's own active comment.
func (s *KomentarService) Update(ctx context.Context, id auth.Identity, komentarID int64, input KomentarInput) (*model.Komentar, error) {
	text, rating, err := input.normalize()
	if err != nil {
		return nil, err
	}

	komentar := &model.Komentar{
		ID:       komentarID,
		UserID:   id.UserID,
		Komentar: text,
		Rating:   rating,
	}
	if err := s.repo.UpdateOwned(ctx, komentar); err != nil {
		return nil, err
	}

	s.cache.InvalidateUKM(ctx, komentar.UKMID)
	return komentar, nil
}

// Delete soft-deletes a comment. Owners may delete their own comment and
// admins any comment; everyone else sees it as missing.
func (s *KomentarService) Delete(ctx context.Context, id auth.Identity, komentarID int64) error {
	komentar, err := s.repo.Deactivate(ctx, komentarID, id.UserID, id.IsAdmin())
	if err != nil {
		return err
	}

	s.cache.InvalidateUKM(ctx, komentar.UKMID)
	if id.IsAdmin() && komentar.UserID != id.UserID {
		warnAudit(ctx, s.audit.LogEntityDelete(ctx, model.EntityKomentar, komentar.ID), model.EntityKomentar, komentar.ID)
	}
	return nil
}
