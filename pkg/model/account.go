package model

import "time"

// Account represents a principal in Pressroom: a reporter or an
// administrator.
//
// Reporters self-register and start out unapproved. An administrator
// approves them, which mints a license key; login for reporters requires
// both the password and the current license key. Administrators are
// provisioned out-of-band (pressctl account create-admin) and never carry a
// license key.
type Account struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	Name              string    `gorm:"column:name;not null"`
	Email             string    `gorm:"column:email;not null"`
	PasswordHash      string    `gorm:"column:password_hash;not null"`
	Role              Role      `gorm:"column:role;type:varchar(20);not null"`
	IsApproved        bool      `gorm:"column:is_approved;not null"`
	LicenseKey        *string   `gorm:"column:license_key"`
	PhoneNumber       string    `gorm:"column:phone_number"`
	CitizenshipNumber string    `gorm:"column:citizenship_number"`
	ProfilePhotoURL   string    `gorm:"column:profile_photo_url"`
	IDCardURL         string    `gorm:"column:id_card_url"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Account) TableName() string {
	return "accounts"
}

// License returns the account's license key, or the empty string when none
// is assigned.
func (a *Account) License() string {
	if a.LicenseKey == nil {
		return ""
	}
	return *a.LicenseKey
}
