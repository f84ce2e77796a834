package models

import "time"

// DefaultAnnouncementCategory is used when an announcement is created without a category
const DefaultAnnouncementCategory = "Umum"

// Announcement represents the posts table
type Announcement struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title     string    `json:"title" gorm:"column:title"`
	Category  string    `json:"category" gorm:"column:category;default:Umum"`
	Content   string    `json:"content" gorm:"column:content;type:text"`
	Image     *string   `json:"image" gorm:"column:image"`
	CreatedBy string    `json:"created_by" gorm:"column:created_by;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Announcement
func (Announcement) TableName() string {
	return "posts"
}
