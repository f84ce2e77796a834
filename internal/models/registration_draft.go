package models

import (
	"strings"
	"time"
)

// HouseholdRow is an editable household row of a registration form
type HouseholdRow struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// IsBlank reports whether every field of the row is empty
func (r HouseholdRow) IsBlank() bool {
	return isBlank(r.Name, r.Relationship, r.Phone)
}

// VehicleRow is an editable vehicle row of a registration form
type VehicleRow struct {
	Model         string `json:"model"`
	PlateNumber   string `json:"plate_number"`
	StickerNumber string `json:"sticker_number"`
}

// IsBlank reports whether every field of the row is empty
func (r VehicleRow) IsBlank() bool {
	return isBlank(r.Model, r.PlateNumber, r.StickerNumber)
}

// RegistrationDraft is the server-side state of an unfinished registration form.
// It lives in redis, not in the relational store.
type RegistrationDraft struct {
	ID        string         `json:"id"`
	Household []HouseholdRow `json:"household"`
	Vehicles  []VehicleRow   `json:"vehicles"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func isBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
