package models

import "time"

// HouseholdMember is one ordered row of the household table of a profile
type HouseholdMember struct {
	ID           uint   `json:"-" gorm:"primarykey"`
	ProfileID    string `json:"-" gorm:"column:profile_id;type:varchar(36);index"`
	Position     int    `json:"position" gorm:"column:position"`
	Name         string `json:"name" gorm:"column:name"`
	Relationship string `json:"relationship" gorm:"column:relationship"`
	Phone        string `json:"phone" gorm:"column:phone"`
}

// TableName sets the insert table name for HouseholdMember
func (HouseholdMember) TableName() string {
	return "profile_household_members"
}

// Vehicle is one ordered row of the vehicle table of a profile
type Vehicle struct {
	ID            uint   `json:"-" gorm:"primarykey"`
	ProfileID     string `json:"-" gorm:"column:profile_id;type:varchar(36);index"`
	Position      int    `json:"position" gorm:"column:position"`
	Model         string `json:"model" gorm:"column:model"`
	PlateNumber   string `json:"plate_number" gorm:"column:plate_number"`
	StickerNumber string `json:"sticker_number" gorm:"column:sticker_number"`
}

// TableName sets the insert table name for Vehicle
func (Vehicle) TableName() string {
	return "profile_vehicles"
}

// ProfileDocument is the eligibility document attached at registration
type ProfileDocument struct {
	ID         uint      `json:"-" gorm:"primarykey"`
	ProfileID  string    `json:"-" gorm:"column:profile_id;type:varchar(36);uniqueIndex"`
	URL        string    `json:"url" gorm:"column:url"`
	FileName   string    `json:"file_name" gorm:"column:file_name"`
	MimeType   string    `json:"mime_type" gorm:"column:mime_type"`
	Size       int64     `json:"size" gorm:"column:size"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"column:uploaded_at"`
}

// TableName sets the insert table name for ProfileDocument
func (ProfileDocument) TableName() string {
	return "profile_documents"
}
