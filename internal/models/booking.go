package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents a row in the bookings table.
type Booking struct {
	BookingID       string          `json:"bookingID"`
	TenantID        string          `json:"tenantID"`
	CarID           string          `json:"carID"`
	Category        string          `json:"category"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	LicenseNumber   string          `json:"licenseNumber"`
	LicenseCountry  string          `json:"licenseCountry"`
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation"`
	PickupTime      time.Time       `json:"pickupTime"`
	DropoffTime     time.Time       `json:"dropoffTime"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CurrencyCode    string          `json:"currencyCode"`
	Status          string          `json:"status"`
	PaymentOrderID  string          `json:"paymentOrderID"`
	PaymentRef      string          `json:"paymentRef"`
	AuditFields
}
