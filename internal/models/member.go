package models

import "time"

// Member is the row shape of the members table.
type Member struct {
	MemberID       string `db:"member_id"`
	LoginID        string `db:"login_id"`
	PasswordHash   string `db:"password_hash"`
	Name           string `db:"name"`
	PhoneNumber    string `db:"phone_number"`
	Email          string `db:"email"`
	IdentityNumber string `db:"identity_number"` // AES-GCM ciphertext, base64
	Status         string `db:"status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
