package gorm

import (
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/pressroom/pressroom/pkg/license"
	"github.com/pressroom/pressroom/pkg/model"
	"github.com/pressroom/pressroom/pkg/server/store"
)

// Postgres unique_violation error code
const uniqueViolationCode = "23505"

// Unique constraint names from the accounts migration
const (
	emailConstraint      = "accounts_email_key"
	licenseKeyConstraint = "accounts_license_key_key"
)

// licenseKeyRetries bounds how many fresh keys Approve tries before giving
// up on unique collisions.
const licenseKeyRetries = 5

// Ensure AccountsStore implements store.AccountsStore
var _ store.AccountsStore = (*AccountsStore)(nil)

// AccountsStore implements store.AccountsStore using GORM
type AccountsStore struct {
	db     *gorm.DB
	keygen func() (string, error)
}

// NewAccountsStore creates a new AccountsStore. A nil keygen selects
// license.Generate.
func NewAccountsStore(db *gorm.DB, keygen func() (string, error)) *AccountsStore {
	if keygen == nil {
		keygen = license.Generate
	}
	return &AccountsStore{db: db, keygen: keygen}
}

// Register creates a new unapproved reporter account.
func (s *AccountsStore) Register(reg store.Registration) (*model.Account, error) {
	account := &model.Account{
		Name:              reg.Name,
		Email:             reg.Email,
		PasswordHash:      reg.PasswordHash,
		Role:              model.RoleReporter,
		IsApproved:        false,
		PhoneNumber:       reg.PhoneNumber,
		CitizenshipNumber: reg.CitizenshipNumber,
		ProfilePhotoURL:   reg.ProfilePhotoURL,
		IDCardURL:         reg.IDCardURL,
	}

	if err := s.db.Create(account).Error; err != nil {
		if isUniqueViolation(err, emailConstraint) {
			return nil, store.ErrDuplicateEmail
		}
		return nil, err
	}

	return account, nil
}

// ByEmail retrieves an account by exact email match.
func (s *AccountsStore) ByEmail(email string) (*model.Account, error) {
	var account model.Account
	tx := s.db.Where("email = ?", email).First(&account)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrAccountNotFound
		}
		return nil, tx.Error
	}
	return &account, nil
}

// ByID retrieves an account by id.
func (s *AccountsStore) ByID(id int64) (*model.Account, error) {
	var account model.Account
	tx := s.db.First(&account, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrAccountNotFound
		}
		return nil, tx.Error
	}
	return &account, nil
}

// PendingReporters returns all reporter accounts awaiting approval.
func (s *AccountsStore) PendingReporters() ([]model.Account, error) {
	var accounts []model.Account
	tx := s.db.
		Where("role = ? AND is_approved = ?", model.RoleReporter, false).
		Order("created_at asc").
		Find(&accounts)
	return accounts, tx.Error
}

// ApprovedReporters returns all approved reporter accounts.
func (s *AccountsStore) ApprovedReporters() ([]model.Account, error) {
	var accounts []model.Account
	tx := s.db.
		Where("role = ? AND is_approved = ?", model.RoleReporter, true).
		Order("created_at asc").
		Find(&accounts)
	return accounts, tx.Error
}

// Approve marks a reporter approved and stores a freshly generated license
// key. A key that collides with an existing one is regenerated inside a
// savepoint so the enclosing transaction survives the unique violation.
func (s *AccountsStore) Approve(id int64) (string, error) {
	var licenseKey string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var account model.Account
		if err := tx.First(&account, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrAccountNotFound
			}
			return err
		}
		if account.Role != model.RoleReporter {
			return store.ErrNotReporter
		}

		for attempt := 0; attempt < licenseKeyRetries; attempt++ {
			key, err := s.keygen()
			if err != nil {
				return err
			}

			err = tx.Transaction(func(sp *gorm.DB) error {
				return sp.Model(&account).
					Updates(map[string]interface{}{
						"license_key": key,
						"is_approved": true,
					}).Error
			})
			if err == nil {
				licenseKey = key
				return nil
			}
			if !isUniqueViolation(err, licenseKeyConstraint) {
				return err
			}
		}

		return store.ErrDuplicateLicenseKey
	})
	if err != nil {
		return "", err
	}

	return licenseKey, nil
}

// Revoke clears a reporter's license key and approval.
func (s *AccountsStore) Revoke(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var account model.Account
		if err := tx.First(&account, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrAccountNotFound
			}
			return err
		}
		if account.Role != model.RoleReporter {
			return store.ErrNotReporter
		}

		return tx.Model(&account).
			Updates(map[string]interface{}{
				"license_key": nil,
				"is_approved": false,
			}).Error
	})
}

// isUniqueViolation reports whether err is a Postgres unique violation on
// the named constraint. An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolationCode {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
