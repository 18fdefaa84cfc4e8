package domain

import "time"

// MemberStatus is the activity state of a member account.
type MemberStatus string

const (
	MemberActive   MemberStatus = "ACTIVE"
	MemberInactive MemberStatus = "INACTIVE"
)

// Member represents a registered merchant account.
type Member struct {
	MemberID       string       `json:"memberID"` // Primary Key (UUID)
	LoginID        string       `json:"loginID"`  // Unique login identifier
	PasswordHash   string       `json:"-"`
	Name           string       `json:"name"`
	PhoneNumber    string       `json:"phoneNumber"`
	Email          string       `json:"email"`
	IdentityNumber string       `json:"-"` // Encrypted at rest
	Status         MemberStatus `json:"status"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// IsActive reports whether the member may log in.
func (m Member) IsActive() bool {
	return m.Status == MemberActive
}
