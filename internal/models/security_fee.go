package models

import "time"

// FeeStatus is the payment state of a monthly security fee
type FeeStatus string

const (
	FeePaid        FeeStatus = "selesai"
	FeeOutstanding FeeStatus = "tertunggak"
)

// SecurityFee represents the security_fees table, one row per member per month
type SecurityFee struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	ProfileID string     `json:"profile_id" gorm:"column:profile_id;type:varchar(36);uniqueIndex:idx_security_fee_period"`
	Year      int        `json:"year" gorm:"column:year;uniqueIndex:idx_security_fee_period"`
	Month     int        `json:"month" gorm:"column:month;uniqueIndex:idx_security_fee_period"`
	Amount    int64      `json:"amount" gorm:"column:amount"`
	Status    FeeStatus  `json:"status" gorm:"column:status;type:varchar(20);default:tertunggak;index"`
	PaidAt    *time.Time `json:"paid_at,omitempty" gorm:"column:paid_at"`
	Profile   *Profile   `json:"-" gorm:"foreignKey:ProfileID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for SecurityFee
func (SecurityFee) TableName() string {
	return "security_fees"
}
