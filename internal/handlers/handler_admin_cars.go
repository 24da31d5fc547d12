package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
	"github.com/carvoy/carvoy_backend/internal/middleware"
)

const defaultCarPageSize = 25

// adminCarHandler handles the back-office catalog CRUD.
type adminCarHandler struct {
	carService portssvc.CarSvcFacade
}

func newAdminCarHandler(cs portssvc.CarSvcFacade) *adminCarHandler {
	return &adminCarHandler{carService: cs}
}

// registerAdminCarRoutes registers routes related to catalog administration.
func registerAdminCarRoutes(rg *gin.RouterGroup, carService portssvc.CarSvcFacade) {
	h := newAdminCarHandler(carService)

	cars := rg.Group("/cars")
	{
		cars.POST("", h.createCar)
		cars.GET("", h.listCars)
		cars.GET("/:id", h.getCar)
		cars.PUT("/:id", h.updateCar)
		cars.DELETE("/:id", h.deleteCar)
	}
}

// createCar godoc
// @Summary Add a car to the catalog
// @Tags admin-cars
// @Accept json
// @Produce json
// @Param car body dto.CreateCarRequest true "Car details"
// @Success 201 {object} dto.CarResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/cars [post]
func (h *adminCarHandler) createCar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	car, err := h.carService.CreateCar(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create car", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car"})
		}
		return
	}

	logger.Info("Car created", slog.String("car_id", car.CarID))
	c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

// listCars godoc
// @Summary List catalog cars
// @Description Returns one page of the global catalog. Pass the returned nextToken to fetch the following page.
// @Tags admin-cars
// @Produce json
// @Param category query string false "Filter by category (transfer|rental)"
// @Param limit query int false "Page size" default(25)
// @Param after query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListCarsResponse
// @Failure 400 {object} map[string]string "Invalid filter or token"
// @Security BearerAuth
// @Router /admin/cars [get]
func (h *adminCarHandler) listCars(c *gin.Context) {
	limit := defaultCarPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	cars, nextToken, err := h.carService.ListCars(c.Request.Context(), c.Query("category"), limit, c.Query("after"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list cars", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cars"})
		return
	}

	out := make([]dto.CarResponse, len(cars))
	for i := range cars {
		out[i] = dto.ToCarResponse(&cars[i])
	}
	c.JSON(http.StatusOK, dto.ListCarsResponse{Cars: out, NextToken: nextToken})
}

// getCar godoc
// @Summary Get a catalog car
// @Tags admin-cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} dto.CarResponse
// @Failure 404 {object} map[string]string "Car not found"
// @Security BearerAuth
// @Router /admin/cars/{id} [get]
func (h *adminCarHandler) getCar(c *gin.Context) {
	car, err := h.carService.GetCarByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve car"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

// updateCar godoc
// @Summary Update a catalog car
// @Tags admin-cars
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param car body dto.UpdateCarRequest true "Fields to update"
// @Success 200 {object} dto.CarResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Car not found"
// @Security BearerAuth
// @Router /admin/cars/{id} [put]
func (h *adminCarHandler) updateCar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	car, err := h.carService.UpdateCar(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update car", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCarResponse(car))
}

// deleteCar godoc
// @Summary Remove a car from the catalog
// @Tags admin-cars
// @Param id path string true "Car ID"
// @Success 204
// @Failure 404 {object} map[string]string "Car not found"
// @Failure 409 {object} map[string]string "Car is referenced"
// @Security BearerAuth
// @Router /admin/cars/{id} [delete]
func (h *adminCarHandler) deleteCar(c *gin.Context) {
	if err := h.carService.DeleteCar(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusConflict, gin.H{"error": "Car is referenced by tenant overrides or bookings"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
