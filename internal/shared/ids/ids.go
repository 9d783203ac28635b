// Package ids declares identifiers of entities owned by other services.
package ids

// UserID identifies a user account.
type UserID int32

// CompanyID identifies a company posting jobs.
type CompanyID int32
