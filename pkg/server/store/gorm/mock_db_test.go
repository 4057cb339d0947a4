package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pressroom/pressroom/pkg/model"
)

// newMockDB creates a sqlmock-backed GORM connection for unit testing.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return gormDB, mock
}

var accountColumns = []string{
	"id", "name", "email", "password_hash", "role", "is_approved",
	"license_key", "phone_number", "citizenship_number",
	"profile_photo_url", "id_card_url", "created_at",
}

func accountRows(accounts ...model.Account) *sqlmock.Rows {
	rows := sqlmock.NewRows(accountColumns)
	for _, a := range accounts {
		var key interface{}
		if a.LicenseKey != nil {
			key = *a.LicenseKey
		}
		rows.AddRow(
			a.ID, a.Name, a.Email, a.PasswordHash, a.Role.String(),
			a.IsApproved, key, a.PhoneNumber, a.CitizenshipNumber,
			a.ProfilePhotoURL, a.IDCardURL, a.CreatedAt,
		)
	}
	return rows
}

var articleColumns = []string{
	"id", "title", "content", "owner_id", "cover_image", "category",
	"created_at", "updated_at",
}

func articleRows(articles ...model.Article) *sqlmock.Rows {
	rows := sqlmock.NewRows(articleColumns)
	for _, a := range articles {
		rows.AddRow(
			a.ID, a.Title, a.Content, a.OwnerID, a.CoverImage,
			a.Category, a.CreatedAt, a.UpdatedAt,
		)
	}
	return rows
}
