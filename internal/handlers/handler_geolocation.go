package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// geoLocationHandler serves visitor defaults from IP geolocation.
type geoLocationHandler struct {
	geoService portssvc.GeoLocationSvcFacade
}

func newGeoLocationHandler(gs portssvc.GeoLocationSvcFacade) *geoLocationHandler {
	return &geoLocationHandler{geoService: gs}
}

// registerGeoLocationRoutes registers the public geolocation route.
func registerGeoLocationRoutes(rg *gin.RouterGroup, geoService portssvc.GeoLocationSvcFacade) {
	h := newGeoLocationHandler(geoService)
	rg.GET("/geo", h.getGeoLocation)
}

// getGeoLocation godoc
// @Summary Get visitor defaults from IP geolocation
// @Description Resolves the client IP through the provider chain. Never fails: when every provider is down a fixed US default is returned.
// @Tags geo
// @Produce json
// @Success 200 {object} dto.GeoLocationResponse
// @Router /geo [get]
func (h *geoLocationHandler) getGeoLocation(c *gin.Context) {
	location := h.geoService.Resolve(c.Request.Context(), c.ClientIP())
	c.JSON(http.StatusOK, dto.ToGeoLocationResponse(location))
}
