package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// licenseHandler serves driver-license format validation for the booking form.
type licenseHandler struct {
	licenseService portssvc.LicenseSvcFacade
}

func newLicenseHandler(ls portssvc.LicenseSvcFacade) *licenseHandler {
	return &licenseHandler{licenseService: ls}
}

// registerLicenseRoutes registers the public license validation route.
func registerLicenseRoutes(rg *gin.RouterGroup, licenseService portssvc.LicenseSvcFacade) {
	h := newLicenseHandler(licenseService)
	rg.POST("/license/validate", h.validateLicense)
}

// validateLicense godoc
// @Summary Validate a driver-license number format
// @Description Checks the number against the country's length rule. A failing check is a 200 with isValid=false: it is a field-level validation result, not an error.
// @Tags license
// @Accept json
// @Produce json
// @Param license body dto.ValidateLicenseRequest true "License to validate"
// @Success 200 {object} dto.ValidateLicenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /license/validate [post]
func (h *licenseHandler) validateLicense(c *gin.Context) {
	var req dto.ValidateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result := h.licenseService.Validate(req.LicenseNumber, req.CountryCode)
	c.JSON(http.StatusOK, dto.ToValidateLicenseResponse(result))
}
