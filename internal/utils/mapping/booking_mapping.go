package mapping

import (
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/models"
)

// ToModelBooking converts a domain Booking to a model Booking
func ToModelBooking(d domain.Booking) models.Booking {
	return models.Booking{
		BookingID:       d.BookingID,
		TenantID:        d.TenantID,
		CarID:           d.CarID,
		Category:        string(d.Category),
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
		LicenseNumber:   d.LicenseNumber,
		LicenseCountry:  d.LicenseCountry,
		PickupLocation:  d.PickupLocation,
		DropoffLocation: d.DropoffLoc,
		PickupTime:      d.PickupTime,
		DropoffTime:     d.DropoffTime,
		TotalPrice:      d.TotalPrice,
		CurrencyCode:    d.CurrencyCode,
		Status:          string(d.Status),
		PaymentOrderID:  d.PaymentOrderID,
		PaymentRef:      d.PaymentRef,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBooking converts a model Booking to a domain Booking
func ToDomainBooking(m models.Booking) domain.Booking {
	return domain.Booking{
		BookingID:      m.BookingID,
		TenantID:       m.TenantID,
		CarID:          m.CarID,
		Category:       domain.CarCategory(m.Category),
		CustomerName:   m.CustomerName,
		CustomerEmail:  m.CustomerEmail,
		CustomerPhone:  m.CustomerPhone,
		LicenseNumber:  m.LicenseNumber,
		LicenseCountry: m.LicenseCountry,
		PickupLocation: m.PickupLocation,
		DropoffLoc:     m.DropoffLocation,
		PickupTime:     m.PickupTime,
		DropoffTime:    m.DropoffTime,
		TotalPrice:     m.TotalPrice,
		CurrencyCode:   m.CurrencyCode,
		Status:         domain.BookingStatus(m.Status),
		PaymentOrderID: m.PaymentOrderID,
		PaymentRef:     m.PaymentRef,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBookingSlice converts a slice of model Bookings to domain Bookings
func ToDomainBookingSlice(ms []models.Booking) []domain.Booking {
	ds := make([]domain.Booking, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBooking(m)
	}
	return ds
}
