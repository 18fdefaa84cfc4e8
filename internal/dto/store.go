package dto

import (
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBusinessRegistrationRequest registers a business for the calling member.
type CreateBusinessRegistrationRequest struct {
	BusinessNumber     string `json:"businessNumber" binding:"required,numeric,len=10"`
	BusinessName       string `json:"businessName" binding:"required,max=100"`
	RepresentativeName string `json:"representativeName" binding:"required,max=100"`
}

// BusinessRegistrationResponse is the public view of a registration.
type BusinessRegistrationResponse struct {
	RegistrationID     string    `json:"registrationID"`
	BusinessNumber     string    `json:"businessNumber"`
	BusinessName       string    `json:"businessName"`
	RepresentativeName string    `json:"representativeName"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CreatePosRequest adds a register under a registration.
type CreatePosRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// PosResponse is the public view of a register.
type PosResponse struct {
	PosID          string    `json:"posID"`
	RegistrationID string    `json:"registrationID"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListPosResponse wraps the registers owned by a member.
type ListPosResponse struct {
	Pos []PosResponse `json:"pos"`
}

// RecordSaleRequest records one sale on a register.
// SaleDate defaults to the time the request is processed.
type RecordSaleRequest struct {
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	PaymentType domain.PaymentType `json:"paymentType" binding:"required,oneof=CARD CASH"`
	SaleDate    *time.Time         `json:"saleDate,omitempty"`
}

// SaleResponse is the stored sale.
type SaleResponse struct {
	SaleID      string             `json:"saleID"`
	PosID       string             `json:"posID"`
	SaleDate    time.Time          `json:"saleDate"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	PaymentType domain.PaymentType `json:"paymentType"`
}

// ToBusinessRegistrationResponse converts a domain registration to a DTO
func ToBusinessRegistrationResponse(reg *domain.BusinessRegistration) BusinessRegistrationResponse {
	return BusinessRegistrationResponse{
		RegistrationID:     reg.RegistrationID,
		BusinessNumber:     reg.BusinessNumber,
		BusinessName:       reg.BusinessName,
		RepresentativeName: reg.RepresentativeName,
		CreatedAt:          reg.CreatedAt,
	}
}

// ToPosResponse converts a domain Pos to a DTO
func ToPosResponse(p *domain.Pos) PosResponse {
	return PosResponse{
		PosID:          p.PosID,
		RegistrationID: p.RegistrationID,
		Name:           p.Name,
		CreatedAt:      p.CreatedAt,
	}
}

// ToListPosResponse converts a slice of domain Pos to ListPosResponse
func ToListPosResponse(pos []domain.Pos) ListPosResponse {
	resp := ListPosResponse{Pos: make([]PosResponse, len(pos))}
	for i := range pos {
		resp.Pos[i] = ToPosResponse(&pos[i])
	}
	return resp
}

// ToSaleResponse converts a domain sale to a DTO
func ToSaleResponse(s *domain.PosSale) SaleResponse {
	return SaleResponse{
		SaleID:      s.SaleID,
		PosID:       s.PosID,
		SaleDate:    s.SaleDate,
		TotalAmount: s.TotalAmount,
		PaymentType: s.PaymentType,
	}
}
