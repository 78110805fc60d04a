// internal/service/registration.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/ukmhub/internal/audit"
	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/repository"
	"github.com/go-playground/validator/v10"
)

// DecisionNotifier tells an applicant that an admin decided on their
// registration.
type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, user *model.User, ukm *model.UKM, reg *model.Registration) error
}

type CreateRegistrationInput struct {
	UKMID      int64                  `json:"ukm_id" validate:"required,gt=0"`
	KegiatanID *int64                 `json:"kegiatan_id" validate:"omitempty,gt=0"`
	Type       model.RegistrationType `json:"type" validate:"required,oneof=anggota kegiatan"`
}

type TransitionInput struct {
	Status model.RegistrationStatus `json:"status"`
}

type RegistrationService struct {
	tx           repository.Transactor
	repo         repository.RegistrationRepositoryIface
	userRepo     repository.UserRepositoryIface
	ukmRepo      repository.UKMRepositoryIface
	kegiatanRepo repository.KegiatanRepositoryIface
	anggotaRepo  repository.AnggotaRepositoryIface
	cache        *CacheService
	audit        audit.Logger
	notifier     DecisionNotifier
	validate     *validator.Validate
}

// NewRegistrationService wires the registration workflow. notifier may be
// nil, which disables decision notifications.
func NewRegistrationService(
	tx repository.Transactor,
	repo repository.RegistrationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	ukmRepo repository.UKMRepositoryIface,
	kegiatanRepo repository.KegiatanRepositoryIface,
	anggotaRepo repository.AnggotaRepositoryIface,
	cache *CacheService,
	auditLogger audit.Logger,
	notifier DecisionNotifier,
) *RegistrationService {
	return &RegistrationService{
		tx:           tx,
		repo:         repo,
		userRepo:     userRepo,
		ukmRepo:      ukmRepo,
		kegiatanRepo: kegiatanRepo,
		anggotaRepo:  anggotaRepo,
		cache:        cache,
		audit:        auditLogger,
		notifier:     notifier,
		validate:     newValidator(),
	}
}

// ListForUser returns all registrations of userID. Only the user and
// admins may read them.
func (s *RegistrationService) ListForUser(ctx context.Context, id auth.Identity, userID int64) ([]model.RegistrationView, error) {
	if !id.CanAccessUser(userID) {
		return nil, domain.ErrAccessDenied
	}
	return s.repo.ListByUser(ctx, userID)
}

// ListKegiatanForUser returns the activity registrations of userID.
func (s *RegistrationService) ListKegiatanForUser(ctx context.Context, id auth.Identity, userID int64) ([]model.RegistrationView, error) {
	if !id.CanAccessUser(userID) {
		return nil, domain.ErrAccessDenied
	}
	return s.repo.ListKegiatanByUser(ctx, userID)
}

func (s *RegistrationService) ListAll(ctx context.Context, id auth.Identity) ([]model.RegistrationView, error) {
	if !id.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	return s.repo.ListAll(ctx)
}

// Create registers the caller for a UKM or one of its activities. A user
// holds at most one registration per (ukm, type), whatever its status.
func (s *RegistrationService) Create(ctx context.Context, id auth.Identity, input CreateRegistrationInput) (*model.Registration, error) {
	if id.IsAdmin() {
		return nil, domain.ErrAdminNoRegister
	}

	// kegiatan_id 0 means no activity.
	if input.KegiatanID != nil && *input.KegiatanID == 0 {
		input.KegiatanID = nil
	}
	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "kegiatan_id" {
					return nil, validationError(err)
				}
			}
			return nil, domain.ErrRegistrationInput
		}
		return nil, validationError(err)
	}

	reg := &model.Registration{
		UserID:     id.UserID,
		UKMID:      input.UKMID,
		KegiatanID: input.KegiatanID,
		Type:       input.Type,
		Status:     model.StatusPending,
	}

	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		exists, err := s.ukmRepo.Exists(ctx, input.UKMID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrUKMNotFound
		}

		if input.KegiatanID != nil {
			if _, err := s.kegiatanRepo.FindByID(ctx, input.UKMID, *input.KegiatanID); err != nil {
				return err
			}
		}

		registered, err := s.repo.Exists(ctx, id.UserID, input.UKMID, input.Type)
		if err != nil {
			return err
		}
		if registered {
			return domain.ErrAlreadyRegistered
		}

		return s.repo.Create(ctx, reg)
	})
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// Transition sets a registration's status. Accepting an anggota
// registration also makes the applicant a member of the UKM.
func (s *RegistrationService) Transition(ctx context.Context, id auth.Identity, registrationID int64, input TransitionInput) (*model.Registration, error) {
	if !id.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	if !input.Status.Decided() {
		return nil, domain.ErrInvalidStatus
	}

	var (
		reg  *model.Registration
		from model.RegistrationStatus
	)
	err := s.tx.Transact(ctx, func(ctx context.Context) error {
		r, err := s.repo.FindByID(ctx, registrationID)
		if err != nil {
			return err
		}
		from = r.Status

		if err := s.repo.UpdateStatus(ctx, r, input.Status); err != nil {
			return err
		}
		reg = r

		if r.Status == model.StatusAccepted && r.Type == model.RegistrationAnggota {
			return s.promoteToMember(ctx, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	promoted := reg.Status == model.StatusAccepted && reg.Type == model.RegistrationAnggota
	if promoted {
		s.cache.InvalidateUKM(ctx, reg.UKMID)
	}

	warnAudit(ctx, s.audit.LogTransition(ctx, reg.ID, from, reg.Status, map[string]interface{}{
		"user_id":  reg.UserID,
		"ukm_id":   reg.UKMID,
		"type":     reg.Type,
		"promoted": promoted,
	}), model.EntityRegistration, reg.ID)

	s.notify(ctx, reg)

	return reg, nil
}

// promoteToMember inserts the applicant as anggota unless a member with
// the same nim exists, and flags the UKM as having members either way.
func (s *RegistrationService) promoteToMember(ctx context.Context, reg *model.Registration) error {
	user, err := s.userRepo.FindByID(ctx, reg.UserID)
	if err != nil {
		return err
	}

	exists, err := s.anggotaRepo.ExistsByNIM(ctx, reg.UKMID, user.NIM)
	if err != nil {
		return err
	}
	if !exists {
		anggota := &model.Anggota{
			UKMID:   reg.UKMID,
			Nama:    user.Nama,
			NIM:     user.NIM,
			Jabatan: model.DefaultJabatan,
		}
		if err := s.anggotaRepo.Create(ctx, anggota); err != nil {
			return fmt.Errorf("creating anggota: %w", err)
		}
	}

	return s.ukmRepo.SetMemberFlag(ctx, reg.UKMID, true)
}

// notify sends the decision to the applicant. Failures are logged only.
func (s *RegistrationService) notify(ctx context.Context, reg *model.Registration) {
	if s.notifier == nil {
		return
	}

	user, err := s.userRepo.FindByID(ctx, reg.UserID)
	if err != nil {
		slog.WarnContext(ctx, "Skipping decision notification", "registration_id", reg.ID, "error", err)
		return
	}
	if user.Email == nil || *user.Email == "" {
		return
	}

	ukm, err := s.ukmRepo.FindByID(ctx, reg.UKMID)
	if err != nil {
		slog.WarnContext(ctx, "Skipping decision notification", "registration_id", reg.ID, "error", err)
		return
	}

	if err := s.notifier.NotifyDecision(ctx, user, ukm, reg); err != nil {
		slog.WarnContext(ctx, "Failed to send decision notification",
			"registration_id", reg.ID,
			"user_id", user.ID,
			"error", err,
		)
	}
}
