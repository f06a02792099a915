package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentbook/internal/errors"
	"rentbook/internal/middleware"
	"rentbook/internal/services"
)

// PortalHandler serves the renter-facing read endpoints. Everything here is
// scoped to the authenticated renter; the renter ID always comes from the
// token, never from the request.
type PortalHandler struct {
	houses services.HouseServicer
	bills  services.BillServicer
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(houses services.HouseServicer, bills services.BillServicer) *PortalHandler {
	return &PortalHandler{houses: houses, bills: bills}
}

// Resources lists house names for the login picker
// @Summary     List house resources
// @Tags        portal
// @Produce     json
// @Success     200 {array} models.HouseResource "House IDs and names"
// @Router      /renter/auth/resource [get]
func (h *PortalHandler) Resources(c *gin.Context) {
	resources, err := h.houses.Resources()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// Bills returns the authenticated renter's bill history
// @Summary     List own bills
// @Tags        portal
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Bill "Bills ordered by month, newest first"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /renter/bills [get]
func (h *PortalHandler) Bills(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	bills, err := h.bills.ListForRenter(p.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

// Usage returns the authenticated renter's utility consumption history
// @Summary     Utility usage history
// @Tags        portal
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} billing.UsagePoint "Per-month consumption"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /renter/usage [get]
func (h *PortalHandler) Usage(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		respondWithError(c, apperrors.ErrUnauthorized)
		return
	}

	usage, err := h.bills.UsageForRenter(p.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, usage)
}
