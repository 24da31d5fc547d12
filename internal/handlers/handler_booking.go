package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
	"github.com/carvoy/carvoy_backend/internal/middleware"
)

// bookingHandler serves the public booking wizard endpoints.
type bookingHandler struct {
	tenantService  portssvc.TenantSvcFacade
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(ts portssvc.TenantSvcFacade, bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{tenantService: ts, bookingService: bs}
}

// registerBookingRoutes registers the public booking routes.
func registerBookingRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(tenantService, bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("/:id", h.getBooking)
		bookings.POST("/:id/confirm", h.confirmBooking)
	}
}

// createBooking godoc
// @Summary Create a booking
// @Description Creates a pending booking priced from the tenant-effective catalog and opens a payment order. The client never supplies a price.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingCreatedResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Car not bookable on this domain"
// @Failure 503 {object} map[string]string "No active tenant for this domain"
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenant, err := h.tenantService.ResolveTenant(c.Request.Context(), tenantRequestFromContext(c))
	if err != nil {
		respondTenantError(c, err)
		return
	}

	resp, err := h.bookingService.CreateBooking(c.Request.Context(), tenant, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Car is not available for booking on this domain"})
		case errors.Is(err, apperrors.ErrTenantUnavailable):
			respondTenantError(c, err)
		default:
			logger.Error("Failed to create booking", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	logger.Info("Booking created",
		slog.String("booking_id", resp.Booking.BookingID),
		slog.String("domain_key", tenant.DomainKey),
	)
	c.JSON(http.StatusCreated, resp)
}

// getBooking godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Router /bookings/{id} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// confirmBooking godoc
// @Summary Confirm a booking after payment approval
// @Description Captures the payment order and transitions the booking to confirmed. A declined capture marks it failed.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 402 {object} map[string]string "Payment capture failed"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 409 {object} map[string]string "Booking already settled"
// @Router /bookings/{id}/confirm [post]
func (h *bookingHandler) confirmBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("id")

	booking, err := h.bookingService.ConfirmBooking(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is already settled"})
		default:
			logger.Warn("Booking confirmation failed", slog.String("booking_id", bookingID), slog.String("error", err.Error()))
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment could not be captured"})
		}
		return
	}

	logger.Info("Booking confirmed", slog.String("booking_id", bookingID))
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
