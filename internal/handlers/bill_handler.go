package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rentbook/internal/errors"
	"rentbook/internal/models"
	"rentbook/internal/pagination"
	"rentbook/internal/services"
)

// BillHandler handles bill management requests.
type BillHandler struct {
	bills services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(bills services.BillServicer) *BillHandler {
	return &BillHandler{bills: bills}
}

// BillRequest represents the create/update payload for a bill. Totals are
// not accepted; the server derives them from the readings and rates.
type BillRequest struct {
	RenterID uint      `json:"renterId" binding:"required"`
	Month    time.Time `json:"month" binding:"required"`

	Rent float64 `json:"rent" binding:"gte=0"`

	RateElectricity *float64 `json:"rate_electricity" binding:"omitempty,gte=0"`
	PrevElectricity *float64 `json:"prev_electricity" binding:"omitempty,gte=0"`
	CurrElectricity *float64 `json:"curr_electricity" binding:"omitempty,gte=0"`

	RateWater *float64 `json:"rate_water" binding:"omitempty,gte=0"`
	PrevWater *float64 `json:"prev_water" binding:"omitempty,gte=0"`
	CurrWater *float64 `json:"curr_water" binding:"omitempty,gte=0"`

	Others float64           `json:"others"`
	Status models.BillStatus `json:"status" binding:"omitempty,bill_status"`
}

func (r *BillRequest) model() *models.Bill {
	return &models.Bill{
		RenterID:        r.RenterID,
		Month:           r.Month,
		Rent:            r.Rent,
		RateElectricity: r.RateElectricity,
		PrevElectricity: r.PrevElectricity,
		CurrElectricity: r.CurrElectricity,
		RateWater:       r.RateWater,
		PrevWater:       r.PrevWater,
		CurrWater:       r.CurrWater,
		Others:          r.Others,
		Status:          r.Status,
	}
}

// List returns bills, newest month first
// @Summary     List bills
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       page     query int false "Page number"     default(1)
// @Param       per_page query int false "Results per page" default(25)
// @Success     200 {object} pagination.Page[models.Bill] "Bills ordered by month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /bills [get]
func (h *BillHandler) List(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid pagination parameters."))
		return
	}

	page, err := h.bills.List(params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Defaults returns a prefilled bill for a renter's next month
// @Summary     Prefill the next bill for a renter
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       renter_id query int true "Renter ID"
// @Success     200 {object} models.Bill "Suggested bill values"
// @Failure     404 {object} ErrorResponse "Renter not found"
// @Router      /bills/defaults [get]
func (h *BillHandler) Defaults(c *gin.Context) {
	raw := c.Query("renter_id")
	renterID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || renterID == 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "renter_id is not a valid input."))
		return
	}

	bill, err := h.bills.Defaults(uint(renterID))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

// Create stores a new bill with server-computed totals
// @Summary     Create a bill
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BillRequest true "Bill details"
// @Success     201 {object} models.Bill "Bill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Renter not found"
// @Router      /bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid inputs."))
		return
	}

	bill, err := h.bills.Create(req.model())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// Update replaces an existing bill and recomputes its totals
// @Summary     Update a bill
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int         true "Bill ID"
// @Param       request body BillRequest true "Bill details"
// @Success     200 {object} models.Bill "Bill updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /bills/{id} [put]
func (h *BillHandler) Update(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid inputs."))
		return
	}

	bill, err := h.bills.Update(id, req.model())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

// Delete removes a bill
// @Summary     Delete a bill
// @Tags        bills
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Bill ID"
// @Success     200 {boolean} bool "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /bills/{id} [delete]
func (h *BillHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.bills.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, true)
}
