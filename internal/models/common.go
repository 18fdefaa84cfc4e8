package models

import "time"

// AuditFields holds the timestamp columns shared by mutable tables.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
