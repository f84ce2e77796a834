package response

import "time"

// LedgerEntryResponse is one month of the security fee ledger
type LedgerEntryResponse struct {
	No         int    `json:"no" example:"6"`
	Month      int    `json:"month" example:"6"`
	MonthName  string `json:"month_name" example:"Jun"`
	Status     string `json:"status" example:"tertunggak"`
	Label      string `json:"label" example:"TERTUNGGAK"`
	Amount     int64  `json:"amount" example:"100"`
	PaymentURL string `json:"payment_url,omitempty" example:"https://toyyibpay.com/Sekuriti-Jun-24"`
}

// LedgerSummaryResponse summarises a full ledger year
type LedgerSummaryResponse struct {
	Completed         int    `json:"completed" example:"9"`
	Outstanding       int    `json:"outstanding" example:"3"`
	OutstandingAmount int64  `json:"outstanding_amount" example:"300"`
	OutstandingLabel  string `json:"outstanding_label" example:"RM 300"`
}

// LedgerResponse is the ledger view of one member for one year
type LedgerResponse struct {
	Year    int                    `json:"year" example:"2024"`
	Filter  string                 `json:"filter" example:"semua"`
	Entries []LedgerEntryResponse  `json:"entries"`
	Empty   bool                   `json:"empty"`
	Summary *LedgerSummaryResponse `json:"summary,omitempty"`
	Notice  []string               `json:"notice,omitempty"`
}

// FeeEntryResponse is one ledger row in the admin listing
type FeeEntryResponse struct {
	ID        uint       `json:"id" example:"42"`
	ProfileID string     `json:"profile_id" example:"3f6c2a0e-5b7a-4c1e-9d1b-2f1a7e9c0b11"`
	FullName  string     `json:"full_name" example:"Ahmad Bin Ali"`
	HouseNo   string     `json:"house_no" example:"12A"`
	Year      int        `json:"year" example:"2024"`
	Month     int        `json:"month" example:"6"`
	MonthName string     `json:"month_name" example:"Jun"`
	Amount    int64      `json:"amount" example:"100"`
	Status    string     `json:"status" example:"tertunggak"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

// BulkFeeResponse summarises a bulk creation of ledger entries
type BulkFeeResponse struct {
	Month     int   `json:"month" example:"6"`
	Year      int   `json:"year" example:"2024"`
	Requested int   `json:"requested" example:"120"`
	Created   int64 `json:"created" example:"118"`
	Skipped   int64 `json:"skipped" example:"2"`
}

// ConfirmFeeResponse reports how many entries were marked paid
type ConfirmFeeResponse struct {
	Confirmed int64 `json:"confirmed" example:"3"`
}
