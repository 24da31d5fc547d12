package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// CreateBookingRequest is a customer reservation from the booking wizard.
// Price is intentionally absent: the server prices the car from the
// tenant-effective catalog.
type CreateBookingRequest struct {
	CarID           string    `json:"carID" binding:"required"`
	Category        string    `json:"category" binding:"required,oneof=transfer rental"`
	CustomerName    string    `json:"customerName" binding:"required"`
	CustomerEmail   string    `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string    `json:"customerPhone" binding:"required"`
	LicenseNumber   string    `json:"licenseNumber"`
	LicenseCountry  string    `json:"licenseCountry" binding:"omitempty,uppercase,len=2"`
	PickupLocation  string    `json:"pickupLocation" binding:"required"`
	DropoffLocation string    `json:"dropoffLocation"`
	PickupTime      time.Time `json:"pickupTime" binding:"required"`
	DropoffTime     time.Time `json:"dropoffTime"`
	RentalDays      int       `json:"rentalDays" binding:"omitempty,gt=0"`
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	BookingID       string          `json:"bookingID"`
	CarID           string          `json:"carID"`
	Category        string          `json:"category"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation,omitempty"`
	PickupTime      time.Time       `json:"pickupTime"`
	DropoffTime     time.Time       `json:"dropoffTime,omitempty"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CurrencyCode    string          `json:"currencyCode"`
	Status          string          `json:"status"`
	PaymentRef      string          `json:"paymentRef,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// BookingCreatedResponse pairs the pending booking with the payment approval
// handle the wizard redirects to.
type BookingCreatedResponse struct {
	Booking     BookingResponse `json:"booking"`
	OrderID     string          `json:"orderID"`
	ApprovalURL string          `json:"approvalURL,omitempty"`
}

// ToBookingResponse converts a domain Booking to a BookingResponse DTO
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:       b.BookingID,
		CarID:           b.CarID,
		Category:        string(b.Category),
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLoc,
		PickupTime:      b.PickupTime,
		DropoffTime:     b.DropoffTime,
		TotalPrice:      b.TotalPrice,
		CurrencyCode:    b.CurrencyCode,
		Status:          string(b.Status),
		PaymentRef:      b.PaymentRef,
		CreatedAt:       b.CreatedAt,
	}
}
