package response

import (
	"time"

	"strata-be-svc/internal/models"
)

// RowTableResponse wraps an ordered row table with the "no data" marker
type RowTableResponse[T any] struct {
	Rows  []T  `json:"rows"`
	Empty bool `json:"empty"`
}

// ProfileDetailResponse is the full profile view for the owner and for admins
type ProfileDetailResponse struct {
	ID             string                                   `json:"id"`
	Email          string                                   `json:"email"`
	FullName       string                                   `json:"full_name"`
	NationalID     string                                   `json:"national_id"`
	Ethnicity      string                                   `json:"ethnicity"`
	Address        models.Address                           `json:"address"`
	Phone          string                                   `json:"phone"`
	MembershipTags []string                                 `json:"membership_tags"`
	Household      RowTableResponse[models.HouseholdMember] `json:"household"`
	Vehicles       RowTableResponse[models.Vehicle]         `json:"vehicles"`
	Document       *models.ProfileDocument                  `json:"document,omitempty"`
	Status         models.ProfileStatus                     `json:"status"`
	Verified       bool                                     `json:"verified"`
	ApprovedAt     *time.Time                               `json:"approved_at,omitempty"`
	ApprovedBy     *string                                  `json:"approved_by,omitempty"`
	RejectedAt     *time.Time                               `json:"rejected_at,omitempty"`
	RejectedBy     *string                                  `json:"rejected_by,omitempty"`
	Role           models.Role                              `json:"role"`
	CreatedAt      time.Time                                `json:"created_at"`
	UpdatedAt      time.Time                                `json:"updated_at"`
}

// NewProfileDetailResponse projects a profile into its detail view
func NewProfileDetailResponse(p *models.Profile) *ProfileDetailResponse {
	household := p.Household
	if household == nil {
		household = []models.HouseholdMember{}
	}
	vehicles := p.Vehicles
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	tags := []string(p.MembershipTags)
	if tags == nil {
		tags = []string{}
	}

	return &ProfileDetailResponse{
		ID:             p.ID,
		Email:          p.Email,
		FullName:       p.FullName,
		NationalID:     p.NationalID,
		Ethnicity:      p.Ethnicity,
		Address:        p.Address,
		Phone:          p.Phone,
		MembershipTags: tags,
		Household:      RowTableResponse[models.HouseholdMember]{Rows: household, Empty: len(household) == 0},
		Vehicles:       RowTableResponse[models.Vehicle]{Rows: vehicles, Empty: len(vehicles) == 0},
		Document:       p.Document,
		Status:         p.Status,
		Verified:       p.Verified,
		ApprovedAt:     p.ApprovedAt,
		ApprovedBy:     p.ApprovedBy,
		RejectedAt:     p.RejectedAt,
		RejectedBy:     p.RejectedBy,
		Role:           p.Role,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
