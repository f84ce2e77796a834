package response

import "time"

// ModerationStatsResponse represents the moderation counters shown on the admin dashboard
type ModerationStatsResponse struct {
	Pending       int   `json:"pending" example:"5"`
	Approved      int   `json:"approved" example:"120"`
	Rejected      int   `json:"rejected" example:"3"`
	Announcements int64 `json:"announcements" example:"8"`
}

// MemberSummaryResponse is one row of the moderation listing
type MemberSummaryResponse struct {
	ID          string    `json:"id" example:"3f6c2a0e-5b7a-4c1e-9d1b-2f1a7e9c0b11"`
	FullName    string    `json:"full_name" example:"Ahmad Bin Ali"`
	Email       string    `json:"email" example:"ahmad@example.com"`
	Phone       string    `json:"phone" example:"0123456789"`
	HouseNo     string    `json:"house_no" example:"12A"`
	Status      string    `json:"status" example:"pending"`
	Verified    bool      `json:"verified" example:"false"`
	HasDocument bool      `json:"has_document" example:"true"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardResponse represents the admin dashboard payload
type DashboardResponse struct {
	Stats               ModerationStatsResponse `json:"stats"`
	RecentRegistrations []MemberSummaryResponse `json:"recent_registrations"`
}

// ModerationSnapshotResponse is returned after every moderation transition
type ModerationSnapshotResponse struct {
	Stats   ModerationStatsResponse `json:"stats"`
	Members []MemberSummaryResponse `json:"members"`
}

// DocumentEntryResponse is one entry of the document registry
type DocumentEntryResponse struct {
	ProfileID  string    `json:"profile_id" example:"3f6c2a0e-5b7a-4c1e-9d1b-2f1a7e9c0b11"`
	FullName   string    `json:"full_name" example:"Ahmad Bin Ali"`
	Email      string    `json:"email" example:"ahmad@example.com"`
	FileName   string    `json:"file_name" example:"bil_air.pdf"`
	URL        string    `json:"url" example:"/uploads/documents/3f6c.../bil_air.pdf"`
	MimeType   string    `json:"mime_type" example:"application/pdf"`
	Icon       string    `json:"icon" example:"file-pdf"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ImportSkipResponse explains why one spreadsheet row was not imported
type ImportSkipResponse struct {
	Row    int    `json:"row" example:"4"`
	Email  string `json:"email" example:"ahmad@example.com"`
	Reason string `json:"reason" example:"Email telah didaftarkan"`
}

// MemberImportResponse summarises a legacy member import
type MemberImportResponse struct {
	Created int                  `json:"created" example:"25"`
	Skipped []ImportSkipResponse `json:"skipped"`
}
