package store

import (
	"errors"

	"github.com/pressroom/pressroom/pkg/model"
)

// ErrAccountNotFound is returned when an account doesn't exist
var ErrAccountNotFound = errors.New("account not found")

// ErrNotReporter is returned when an approval or revocation targets an
// account that doesn't hold the reporter role
var ErrNotReporter = errors.New("account is not a reporter")

// ErrDuplicateEmail is returned when a registration reuses an email
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicateLicenseKey is returned when a generated license key collides
// with an existing one and the retry budget is exhausted
var ErrDuplicateLicenseKey = errors.New("license key already in use")

// Registration carries the fields of a new reporter account. The account is
// always created with the reporter role, unapproved and without a license
// key.
type Registration struct {
	Name              string
	Email             string
	PasswordHash      string
	PhoneNumber       string
	CitizenshipNumber string
	ProfilePhotoURL   string
	IDCardURL         string
}

// AccountsStore abstracts account storage operations
type AccountsStore interface {
	// Register creates a new unapproved reporter account.
	// Returns ErrDuplicateEmail if the email is taken.
	Register(reg Registration) (*model.Account, error)

	// ByEmail retrieves an account by exact email match.
	// Returns ErrAccountNotFound if no account matches.
	ByEmail(email string) (*model.Account, error)

	// ByID retrieves an account by id.
	// Returns ErrAccountNotFound if no account matches.
	ByID(id int64) (*model.Account, error)

	// PendingReporters returns all reporter accounts awaiting approval.
	PendingReporters() ([]model.Account, error)

	// ApprovedReporters returns all approved reporter accounts.
	ApprovedReporters() ([]model.Account, error)

	// Approve marks a reporter approved and stores a freshly generated
	// license key, replacing any previous key. Returns the new key.
	// Returns ErrAccountNotFound or ErrNotReporter as appropriate.
	Approve(id int64) (string, error)

	// Revoke clears a reporter's license key and approval.
	// Returns ErrAccountNotFound or ErrNotReporter as appropriate.
	Revoke(id int64) error
}
