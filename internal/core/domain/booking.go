package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus tracks the payment lifecycle of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingFailed    BookingStatus = "failed"
)

// Booking is a customer reservation for a transfer or rental. TotalPrice is
// always computed server-side from the tenant-effective catalog, never taken
// from the client.
type Booking struct {
	BookingID      string          `json:"bookingID"`
	TenantID       string          `json:"tenantID"`
	CarID          string          `json:"carID"`
	Category       CarCategory     `json:"category"`
	CustomerName   string          `json:"customerName"`
	CustomerEmail  string          `json:"customerEmail"`
	CustomerPhone  string          `json:"customerPhone"`
	LicenseNumber  string          `json:"licenseNumber,omitempty"`
	LicenseCountry string          `json:"licenseCountry,omitempty"`
	PickupLocation string          `json:"pickupLocation"`
	DropoffLoc     string          `json:"dropoffLocation"`
	PickupTime     time.Time       `json:"pickupTime"`
	DropoffTime    time.Time       `json:"dropoffTime,omitempty"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	CurrencyCode   string          `json:"currencyCode"`
	Status         BookingStatus   `json:"status"`
	PaymentOrderID string          `json:"paymentOrderID,omitempty"`
	PaymentRef     string          `json:"paymentRef,omitempty"`
	AuditFields
}
