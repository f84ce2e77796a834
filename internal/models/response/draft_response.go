package response

import (
	"time"

	"strata-be-svc/internal/models"
)

// NumberedRow is one editable row with its display number and remove control state
type NumberedRow[T any] struct {
	No        int  `json:"no" example:"1"`
	Removable bool `json:"removable" example:"false"`
	Row       T    `json:"row"`
}

// DraftResponse is the server-side state of a registration form
type DraftResponse struct {
	ID        string                             `json:"id" example:"7d0c4a2e-1f3b-4f53-a1a9-50f0e3d1c2b4"`
	Household []NumberedRow[models.HouseholdRow] `json:"household"`
	Vehicles  []NumberedRow[models.VehicleRow]   `json:"vehicles"`
	ExpiresAt time.Time                          `json:"expires_at"`
}

// RowRemovalResponse reports whether a remove request changed the draft
type RowRemovalResponse struct {
	Removed bool           `json:"removed" example:"true"`
	Draft   *DraftResponse `json:"draft"`
}
