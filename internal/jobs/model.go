package jobs

import "jobboard-backend/internal/shared/ids"

// JobID identifies a persisted job posting.
type JobID int32

// Job is a job posting row.
type Job struct {
	ID          *JobID        `json:"id,omitempty"`
	JobName     string        `json:"job_name"`
	CompanyID   ids.CompanyID `json:"company_id"`
	Location    string        `json:"location"`
	Quantity    int32         `json:"quantity"`
	Salary      int32         `json:"salary"`
	JobLevel    string        `json:"job_level"`
	Description string        `json:"description"`
	IsDelete    bool          `json:"is_delete"`
}

// NewJob carries the fields required to create a job posting.
type NewJob struct {
	JobName     string        `json:"job_name"`
	CompanyID   ids.CompanyID `json:"company_id"`
	Location    string        `json:"location"`
	Quantity    int32         `json:"quantity"`
	Salary      int32         `json:"salary"`
	JobLevel    string        `json:"job_level"`
	Description string        `json:"description"`
}

// Persisted returns the job as stored right after creation.
func (n NewJob) Persisted(id JobID) Job {
	return Job{
		ID:          &id,
		JobName:     n.JobName,
		CompanyID:   n.CompanyID,
		Location:    n.Location,
		Quantity:    n.Quantity,
		Salary:      n.Salary,
		JobLevel:    n.JobLevel,
		Description: n.Description,
	}
}
