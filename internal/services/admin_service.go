package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "rentbook/internal/errors"
	"rentbook/internal/models"
)

// adminService handles admin credential logic.
type adminService struct {
	db *gorm.DB
}

// NewAdminService creates a new AdminServicer.
func NewAdminService(db *gorm.DB) AdminServicer {
	return &adminService{db: db}
}

// GetByUsername retrieves an admin by username.
func (s *adminService) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &admin, nil
}

// VerifyPassword checks the submitted password against the stored bcrypt hash.
func (s *adminService) VerifyPassword(admin *models.Admin, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	return err == nil
}

// Create registers a new admin with a bcrypt-hashed password. Used by the
// seed-admin command; there is no self-service registration endpoint.
func (s *adminService) Create(username, password string) (*models.Admin, error) {
	if username == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Type:         models.AdminTypeOwner,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return admin, nil
}
