package models

import "time"

// Account is a sign-in identity. Profiles reuse its ID.
type Account struct {
	ID           string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string     `json:"email" gorm:"column:email;uniqueIndex;type:varchar(255)"`
	PasswordHash string     `json:"-" gorm:"column:password_hash"`
	Disabled     bool       `json:"disabled" gorm:"column:disabled"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty" gorm:"column:last_sign_in_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for Account
func (Account) TableName() string {
	return "accounts"
}
