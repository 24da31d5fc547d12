package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
	"github.com/carvoy/carvoy_backend/internal/middleware"
)

// currencyHandler serves live rates and conversions.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers the public currency routes.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	rg.GET("/rates", h.getRates)
	rg.GET("/currencies", h.listCurrencies)
	rg.POST("/currency/convert", h.convert)
}

// getRates godoc
// @Summary Get the live rate table
// @Description Returns the cached live exchange rates for a base currency (USD by default).
// @Tags currency
// @Produce json
// @Param base query string false "Base currency code" default(USD)
// @Success 200 {object} dto.RatesResponse
// @Failure 503 {object} map[string]string "Rate feed unavailable"
// @Router /rates [get]
func (h *currencyHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	base := strings.ToUpper(c.DefaultQuery("base", domain.BaseCurrencyCode))
	table, err := h.currencyService.GetRates(c.Request.Context(), base)
	if err != nil {
		if errors.Is(err, apperrors.ErrRatesUnavailable) {
			logger.Warn("Rate feed unavailable", slog.String("base", base))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Currency rates are temporarily unavailable"})
			return
		}
		logger.Error("Failed to fetch rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(table))
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the static metadata table of currencies the site can display.
// @Tags currency
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies()
	out := make([]dto.CurrencyResponse, len(currencies))
	for i := range currencies {
		out[i] = dto.ToCurrencyResponse(&currencies[i])
	}
	c.JSON(http.StatusOK, out)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts using the live rate table. When the rate feed is down the source amount is echoed back with converted=false so the UI keeps rendering.
// @Tags currency
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /currency/convert [post]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	converted, err := h.currencyService.ConvertAmount(c.Request.Context(), req.Amount, req.FromCode, req.ToCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Degrade instead of failing: the price is still correct in its source
		// currency.
		logger.Warn("Conversion unavailable, echoing source amount",
			slog.String("from", req.FromCode),
			slog.String("to", req.ToCode),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusOK, dto.ConvertResponse{
			Amount:       req.Amount,
			CurrencyCode: req.FromCode,
			Converted:    false,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:       converted,
		CurrencyCode: req.ToCode,
		Converted:    true,
	})
}
