// internal/domain/errors.go
package domain

import "errors"

var (
	// Taxonomy
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// Error is a user-facing failure. Message is safe to return to clients;
// Kind is one of the taxonomy sentinels above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// InvalidInput builds an ErrInvalidInput failure with a custom message.
func InvalidInput(message string) *Error {
	return newError(ErrInvalidInput, message)
}

var (
	// Auth-related errors
	ErrTokenRequired   = newError(ErrUnauthenticated, "Access token required")
	ErrInvalidToken    = newError(ErrForbidden, "Invalid token")
	ErrAdminOnly       = newError(ErrForbidden, "Admin access only")
	ErrAccessDenied    = newError(ErrForbidden, "Access denied")
	ErrAdminNoRegister = newError(ErrForbidden, "Admin cannot register")

	// Guard wording for the UKM admin and comment route groups
	ErrAdminLoginRequired = newError(ErrUnauthenticated, "Login required (Admin only)")
	ErrTokenTidakValid    = newError(ErrForbidden, "Token tidak valid")

	// UKM-related errors
	ErrUKMNotFound      = newError(ErrNotFound, "UKM not found")
	ErrKegiatanNotFound = newError(ErrNotFound, "Kegiatan not found")
	ErrLaporanNotFound  = newError(ErrNotFound, "Laporan not found")
	ErrAnggotaNotFound  = newError(ErrNotFound, "Anggota not found")
	ErrUserNotFound     = newError(ErrNotFound, "User not found")

	// Registration-related errors
	ErrRegistrationNotFound = newError(ErrNotFound, "Registration not found")
	ErrRegistrationInput    = newError(ErrInvalidInput, "ukm_id dan type wajib diisi")
	ErrInvalidStatus        = newError(ErrInvalidInput, "Status harus accepted atau rejected")
	ErrAlreadyRegistered    = newError(ErrConflict, "Sudah terdaftar")

	// Comment-related errors
	ErrKomentarTooShort    = newError(ErrInvalidInput, "Komentar minimal 10 karakter")
	ErrInvalidRating       = newError(ErrInvalidInput, "Rating 1-5 saja")
	ErrAlreadyCommented    = newError(ErrConflict, "Sudah komen untuk UKM ini!")
	ErrKomentarNotOwned    = newError(ErrNotFound, "Komentar tidak ditemukan atau bukan milik Anda")
	ErrKomentarNotFound    = newError(ErrNotFound, "Komentar tidak ditemukan")
	ErrLoginRequiredToPost = newError(ErrUnauthenticated, "Login diperlukan untuk komen!")

	// Audit-related errors
	ErrAuditLogNotFound = newError(ErrNotFound, "Audit log not found")
)
