package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType is the settlement method of a sale.
type PaymentType string

const (
	PaymentCard PaymentType = "CARD"
	PaymentCash PaymentType = "CASH"
)

// IsValid reports whether p is a known payment type.
func (p PaymentType) IsValid() bool {
	return p == PaymentCard || p == PaymentCash
}

// BusinessRegistration links a member to the point-of-sale units it operates.
type BusinessRegistration struct {
	RegistrationID     string `json:"registrationID"`
	MemberID           string `json:"memberID"` // FK -> members.member_id
	BusinessNumber     string `json:"businessNumber"`
	BusinessName       string `json:"businessName"`
	RepresentativeName string `json:"representativeName"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Pos is a point-of-sale register. Its owner is the member behind its registration.
type Pos struct {
	PosID          string `json:"posID"`
	RegistrationID string `json:"registrationID"` // FK -> business_registrations.registration_id
	Name           string `json:"name"`
	AuditFields
}

// PosSale is an immutable record of a single sale.
type PosSale struct {
	SaleID      string          `json:"saleID"`
	PosID       string          `json:"posID"`
	SaleDate    time.Time       `json:"saleDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaymentType PaymentType     `json:"paymentType"`
	CreatedAt   time.Time       `json:"createdAt"`
}
