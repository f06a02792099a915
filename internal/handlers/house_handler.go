package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentbook/internal/errors"
	"rentbook/internal/models"
	"rentbook/internal/services"
)

// HouseHandler handles house management requests.
type HouseHandler struct {
	houses services.HouseServicer
}

// NewHouseHandler creates a new HouseHandler.
func NewHouseHandler(houses services.HouseServicer) *HouseHandler {
	return &HouseHandler{houses: houses}
}

// HouseRequest represents the create/update payload for a house.
type HouseRequest struct {
	Name       string   `json:"name" binding:"required,max=100"`
	Monthly    float64  `json:"monthly" binding:"gte=0"`
	ElectRate  *float64 `json:"elect_rate" binding:"omitempty,gte=0"`
	WaterRate  *float64 `json:"water_rate" binding:"omitempty,gte=0"`
	BillingDay int      `json:"billing_day" binding:"required,min=1,max=31"`
}

func (r *HouseRequest) model() *models.House {
	return &models.House{
		Name:       r.Name,
		Monthly:    r.Monthly,
		ElectRate:  r.ElectRate,
		WaterRate:  r.WaterRate,
		BillingDay: r.BillingDay,
	}
}

// List returns all houses
// @Summary     List houses
// @Tags        houses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.House "Houses ordered by name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /houses [get]
func (h *HouseHandler) List(c *gin.Context) {
	houses, err := h.houses.List()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, houses)
}

// Create stores a new house
// @Summary     Create a house
// @Tags        houses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body HouseRequest true "House details"
// @Success     201 {object} models.House "House created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /houses [post]
func (h *HouseHandler) Create(c *gin.Context) {
	var req HouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid inputs."))
		return
	}

	house, err := h.houses.Create(req.model())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, house)
}

// Update replaces an existing house
// @Summary     Update a house
// @Tags        houses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int          true "House ID"
// @Param       request body HouseRequest true "House details"
// @Success     200 {object} models.House "House updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /houses/{id} [put]
func (h *HouseHandler) Update(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid inputs."))
		return
	}

	house, err := h.houses.Update(id, req.model())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, house)
}

// Delete removes a house
// @Summary     Delete a house
// @Tags        houses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "House ID"
// @Success     200 {boolean} bool "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "House has renters"
// @Router      /houses/{id} [delete]
func (h *HouseHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.houses.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
