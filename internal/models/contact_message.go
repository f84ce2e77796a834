package models

import "time"

// ContactMessage represents the contact_messages table
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name"`
	Email     string    `json:"email" gorm:"column:email"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	Subject   string    `json:"subject" gorm:"column:subject"`
	Message   string    `json:"message" gorm:"column:message;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName sets the insert table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}
