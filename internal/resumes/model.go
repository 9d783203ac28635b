package resumes

import "jobboard-backend/internal/shared/ids"

// ResumeID identifies a persisted resume.
type ResumeID int32

// Resume is a resume row.
type Resume struct {
	ID       *ResumeID  `json:"id,omitempty"`
	UserID   ids.UserID `json:"user_id"`
	Email    string     `json:"email"`
	URL      string     `json:"url"`
	IsDelete bool       `json:"is_delete"`
}

// ResumeInfo carries the fields written on create and update.
type ResumeInfo struct {
	UserID ids.UserID `json:"user_id"`
	Email  string     `json:"email"`
	URL    string     `json:"url"`
}
