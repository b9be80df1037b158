package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adanyl0v/go-tasks/internal/models"
)

var (
	ErrAuthDisabled        = errors.New("auth is disabled")
	ErrPasswordMismatch    = errors.New("password mismatch")
	ErrUnknownExportFormat = errors.New("unknown export format")
)

// TaskService owns the authoritative task list and keeps durable storage
// synchronized with it.
//
// Mutations update the in-memory list synchronously and return the new
// state; persistence happens in the background through a single-writer
// queue where one save is in flight at a time and the newest snapshot
// supersedes a queued one. A failed save never rolls the list back; it is
// reported on Failures and dropped.
type TaskService interface {
	// Load reads the durable slot and makes its contents the current
	// state. An absent value or any read or parse failure yields an empty
	// list; failures are reported on Failures, never returned. Call it
	// once at startup, before serving.
	Load(ctx context.Context) models.TaskList

	// Tasks returns a snapshot of the current state.
	Tasks() models.TaskList

	// Add appends a task with the trimmed text and a fresh ID. Text that
	// is empty after trimming is ignored. While an edit is in progress the
	// text replaces the edit target's text instead, and the target is
	// cleared.
	Add(text string) models.TaskList

	// Update replaces the text of the task with the given ID. Text that
	// is empty after trimming, or an unknown ID, leaves the list
	// untouched. Updating the current edit target clears the target.
	Update(id, text string) models.TaskList

	// ToggleCompletion flips the completed flag of the task with the
	// given ID. An unknown ID leaves the list untouched.
	ToggleCompletion(id string) models.TaskList

	// Delete removes the task with the given ID. An unknown ID leaves the
	// list untouched. Deleting the current edit target clears the target.
	Delete(id string) models.TaskList

	// BeginEdit marks the task with the given ID as the edit target and
	// returns it, so the caller can prefill an input with its text. An
	// unknown ID sets no target.
	BeginEdit(id string) (models.Task, bool)

	// CancelEdit clears the edit target without touching the list.
	CancelEdit()

	// Editing returns the current edit target, if any.
	Editing() (models.Task, bool)

	// Failures reports load and save failures as they happen. The channel
	// is buffered; once it fills up, further failures are dropped rather
	// than blocking the store.
	Failures() <-chan Failure

	// Close flushes the pending save, if any, and stops the background
	// saver. No mutations may happen after Close. The context bounds the
	// wait for the flush.
	Close(ctx context.Context) error
}

// AuthService issues and validates the owner's access tokens.
type AuthService interface {
	// Enabled reports whether an owner password hash is configured.
	// When it is not, the whole API is open and Login always fails.
	Enabled() bool

	// Login verifies the owner password and returns a fresh access token.
	//
	// It returns ErrAuthDisabled if no password hash is configured or
	// ErrPasswordMismatch if the password is wrong.
	Login(password string) (*LoginResult, error)

	// ParseToken validates an access token and returns the registered
	// claims, or an error wrapping jwt.ErrTokenExpired if the token is
	// expired.
	ParseToken(token string) (*jwt.RegisteredClaims, error)
}

// ExportService renders the current task list in a portable format.
type ExportService interface {
	// Export returns the list rendered as FormatJSON, FormatCSV or
	// FormatPDF. It returns ErrUnknownExportFormat for anything else.
	Export(format string) ([]byte, error)
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}
