package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rentbook/internal/errors"
	"rentbook/internal/middleware"
	"rentbook/internal/services"
	"rentbook/internal/throttle"
)

// AuthHandler handles the two login flows: admin username/password and
// renter PIN. Both run the same pipeline: throttle check, input validation,
// credential lookup, artificial delay on failure, token issuance.
type AuthHandler struct {
	admins    services.AdminServicer
	renters   services.RenterServicer
	limiter   throttle.Limiter
	failDelay time.Duration
}

// NewAuthHandler creates a new AuthHandler. failDelay is the fixed pause
// applied before every credential rejection so response timing does not
// reveal whether the subject exists; tests pass zero.
func NewAuthHandler(admins services.AdminServicer, renters services.RenterServicer, limiter throttle.Limiter, failDelay time.Duration) *AuthHandler {
	return &AuthHandler{admins: admins, renters: renters, limiter: limiter, failDelay: failDelay}
}

// AdminLoginRequest represents the admin login payload.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,max=100"`
}

// RenterAuthRequest represents the renter PIN login payload. The field is
// named pin_hash for compatibility with existing clients, although it
// carries the PIN itself.
type RenterAuthRequest struct {
	PIN string `json:"pin_hash" binding:"required,max=50"`
}

// AdminLoginResponse is the successful admin login body.
type AdminLoginResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Type        int    `json:"type"`
	AccessToken string `json:"accessToken"`
}

// RenterAuthResponse is the successful renter login body.
type RenterAuthResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	HouseID     uint   `json:"houseId"`
	AccessToken string `json:"accessToken"`
}

// AdminLogin authenticates an admin and issues a bearer token
// @Summary     Admin login
// @Description Authenticate an admin with username and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body AdminLoginRequest true "Admin credentials"
// @Success     200 {object} AdminLoginResponse "Authenticated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     429 {object} ErrorResponse "Too many attempts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	key := c.ClientIP()
	if !h.limiter.Allow(key) {
		respondWithError(c, apperrors.ErrTooManyAttempts)
		return
	}

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid username or password format."))
		return
	}

	admin, err := h.admins.GetByUsername(req.Username)
	if err != nil {
		h.rejectCredentials(c, err)
		return
	}

	if !h.admins.VerifyPassword(admin, req.Password) {
		h.rejectCredentials(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateAdminToken(admin)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.limiter.Reset(key)
	c.JSON(http.StatusOK, AdminLoginResponse{
		ID:          admin.ID,
		Name:        admin.Username,
		Type:        admin.Type,
		AccessToken: token,
	})
}

// RenterAuth authenticates a renter by PIN and issues a bearer token
// @Summary     Renter login
// @Description Authenticate a renter with their PIN
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RenterAuthRequest true "Renter PIN"
// @Success     200 {object} RenterAuthResponse "Authenticated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     429 {object} ErrorResponse "Too many attempts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /renter/auth [post]
func (h *AuthHandler) RenterAuth(c *gin.Context) {
	key := c.ClientIP()
	if !h.limiter.Allow(key) {
		respondWithError(c, apperrors.ErrTooManyAttempts)
		return
	}

	var req RenterAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid PIN format."))
		return
	}

	renter, err := h.renters.GetByPIN(req.PIN)
	if err != nil {
		h.rejectCredentials(c, err)
		return
	}

	token, err := middleware.GenerateRenterToken(renter)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.limiter.Reset(key)
	c.JSON(http.StatusOK, RenterAuthResponse{
		ID:          renter.ID,
		Name:        renter.Name,
		HouseID:     renter.HouseID,
		AccessToken: token,
	})
}

// rejectCredentials applies the artificial failure delay and responds.
// Unknown-subject and wrong-secret failures arrive here with the same
// sentinel, so callers cannot tell which factor failed. The delay is a
// plain timed suspension on the request goroutine; no lock is held, so
// unrelated requests are not serialized behind it.
func (h *AuthHandler) rejectCredentials(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if ok := asAppError(err, &appErr); ok && appErr.StatusCode == http.StatusUnauthorized {
		time.Sleep(h.failDelay)
	}
	respondWithError(c, err)
}
