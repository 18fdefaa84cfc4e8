package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessRegistration is the row shape of business_registrations.
type BusinessRegistration struct {
	RegistrationID     string `db:"registration_id"`
	MemberID           string `db:"member_id"`
	BusinessNumber     string `db:"business_number"`
	BusinessName       string `db:"business_name"`
	RepresentativeName string `db:"representative_name"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// Pos is the row shape of the pos table.
type Pos struct {
	PosID          string `db:"pos_id"`
	RegistrationID string `db:"registration_id"`
	Name           string `db:"name"`
	AuditFields
}

// PosSale is the row shape of pos_sales. Rows are never updated.
type PosSale struct {
	SaleID      string          `db:"sale_id"`
	PosID       string          `db:"pos_id"`
	SaleDate    time.Time       `db:"sale_date"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	PaymentType string          `db:"payment_type"`
	CreatedAt   time.Time       `db:"created_at"`
}
