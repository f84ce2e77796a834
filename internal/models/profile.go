package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProfileStatus is the moderation state of a profile
type ProfileStatus string

const (
	StatusPending  ProfileStatus = "pending"
	StatusApproved ProfileStatus = "approved"
	StatusRejected ProfileStatus = "rejected"
	// StatusActive is written by the account claim flow and sits outside the moderation buckets
	StatusActive ProfileStatus = "active"
)

// Valid reports whether s is a known status
func (s ProfileStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusActive:
		return true
	}
	return false
}

// Role separates members from administrators
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Address is embedded into profiles with the address_ prefix
type Address struct {
	HouseNo string `json:"house_no" gorm:"column:house_no"`
	Street  string `json:"street" gorm:"column:street"`
}

// Profile represents the profiles table. ID is the identity id it is bound to.
type Profile struct {
	ID             string                      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email          string                      `json:"email" gorm:"column:email;uniqueIndex;type:varchar(255)"`
	FullName       string                      `json:"full_name" gorm:"column:full_name"`
	NationalID     string                      `json:"national_id" gorm:"column:national_id"`
	Ethnicity      string                      `json:"ethnicity" gorm:"column:ethnicity"`
	Address        Address                     `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Phone          string                      `json:"phone" gorm:"column:phone"`
	MembershipTags datatypes.JSONSlice[string] `json:"membership_tags" gorm:"column:membership_tags"`
	Household      []HouseholdMember           `json:"household" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Vehicles       []Vehicle                   `json:"vehicles" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Document       *ProfileDocument            `json:"document,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Status         ProfileStatus               `json:"status" gorm:"column:status;type:varchar(20);default:pending;index"`
	Verified       bool                        `json:"verified" gorm:"column:verified"`
	ApprovedAt     *time.Time                  `json:"approved_at,omitempty" gorm:"column:approved_at"`
	ApprovedBy     *string                     `json:"approved_by,omitempty" gorm:"column:approved_by;type:varchar(36)"`
	RejectedAt     *time.Time                  `json:"rejected_at,omitempty" gorm:"column:rejected_at"`
	RejectedBy     *string                     `json:"rejected_by,omitempty" gorm:"column:rejected_by;type:varchar(36)"`
	Role           Role                        `json:"role" gorm:"column:role;type:varchar(20);default:member;index"`
	CreatedAt      time.Time                   `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// TableName sets the insert table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// HasDocument reports whether an eligibility document with a URL is attached
func (p *Profile) HasDocument() bool {
	return p.Document != nil && p.Document.URL != ""
}
