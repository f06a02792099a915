package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rentbook/internal/errors"
	"rentbook/internal/models"
	"rentbook/internal/services"
)

// RenterHandler handles renter management requests.
type RenterHandler struct {
	renters services.RenterServicer
}

// NewRenterHandler creates a new RenterHandler.
func NewRenterHandler(renters services.RenterServicer) *RenterHandler {
	return &RenterHandler{renters: renters}
}

// RenterRequest represents the create/update payload for a renter.
type RenterRequest struct {
	Name      string     `json:"name" binding:"required,max=100"`
	HouseID   uint       `json:"houseId" binding:"required"`
	PIN       string     `json:"pin_hash" binding:"required,renter_pin"`
	Active    *bool      `json:"active"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func (r *RenterRequest) model() *models.Renter {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &models.Renter{
		Name:      r.Name,
		HouseID:   r.HouseID,
		PIN:       r.PIN,
		Active:    active,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// List returns all renters
// @Summary     List renters
// @Tags        renters
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Renter "Renters with their houses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /renters [get]
func (h *RenterHandler) List(c *gin.Context) {
	renters, err := h.renters.List()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, renters)
}

// Create stores a new renter
// @Summary     Create a renter
// @Tags        renters
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RenterRequest true "Renter details"
// @Success     201 {object} models.Renter "Renter created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "PIN already in use"
// @Router      /renters [post]
func (h *RenterHandler) Create(c *gin.Context) {
	var req RenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid inputs."))
		return
	}

	renter, err := h.renters.Create(req.model())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renter)
}

// Update replaces an existing renter
// @Summary     Update a renter
// @Tags        renters
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int           true "Renter ID"
// @Param       request body RenterRequest true "Renter details"
// @Success     200 {object} models.Renter "Renter updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /renters/{id} [put]
func (h *RenterHandler) Update(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid inputs."))
		return
	}

	renter, err := h.renters.Update(id, req.model())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, renter)
}

// Delete removes a renter
// @Summary     Delete a renter
// @Tags        renters
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Renter ID"
// @Success     200 {boolean} bool "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "Renter has bills"
// @Router      /renters/{id} [delete]
func (h *RenterHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.renters.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
