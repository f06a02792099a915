package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "rentbook/internal/errors"
	"rentbook/internal/models"
)

// renterService handles renter management and PIN lookup.
type renterService struct {
	db *gorm.DB
}

// NewRenterService creates a new RenterServicer.
func NewRenterService(db *gorm.DB) RenterServicer {
	return &renterService{db: db}
}

// List returns all renters with their house preloaded, ordered by name.
func (s *renterService) List() ([]models.Renter, error) {
	var renters []models.Renter
	if err := s.db.Preload("House").Order("name asc").Find(&renters).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return renters, nil
}

// GetByID retrieves a renter with its house preloaded.
func (s *renterService) GetByID(id uint) (*models.Renter, error) {
	var renter models.Renter
	if err := s.db.Preload("House").First(&renter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRenterNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &renter, nil
}

// GetByPIN looks up an active renter by PIN alone; PINs are globally unique
// so no house discriminator is needed. The submitted PIN is normalized to
// uppercase before the lookup.
func (s *renterService) GetByPIN(pin string) (*models.Renter, error) {
	var renter models.Renter
	normalized := strings.ToUpper(pin)
	if err := s.db.Where("pin_hash = ? AND active = ?", normalized, true).First(&renter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidPIN
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &renter, nil
}

// Create stores a new renter. The PIN is normalized to uppercase; a
// duplicate PIN is rejected so global PIN lookup stays unambiguous.
func (s *renterService) Create(renter *models.Renter) (*models.Renter, error) {
	renter.PIN = strings.ToUpper(renter.PIN)

	if err := s.ensurePINFree(renter.PIN, 0); err != nil {
		return nil, err
	}
	if err := s.db.Create(renter).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return renter, nil
}

// Update replaces the editable fields of an existing renter.
func (s *renterService) Update(id uint, renter *models.Renter) (*models.Renter, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	pin := strings.ToUpper(renter.PIN)
	if err := s.ensurePINFree(pin, id); err != nil {
		return nil, err
	}

	existing.Name = renter.Name
	existing.HouseID = renter.HouseID
	existing.PIN = pin
	existing.Active = renter.Active
	existing.StartDate = renter.StartDate
	existing.EndDate = renter.EndDate
	existing.House = nil

	if err := s.db.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetByID(id)
}

// Delete removes a renter. Renters with bills on record cannot be deleted;
// move-out is recorded by setting end_date and clearing the active flag.
func (s *renterService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	var bills int64
	if err := s.db.Model(&models.Bill{}).Where("renter_id = ?", id).Count(&bills).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if bills > 0 {
		return apperrors.ErrRenterHasBills
	}

	if err := s.db.Delete(&models.Renter{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *renterService) ensurePINFree(pin string, selfID uint) error {
	var count int64
	q := s.db.Model(&models.Renter{}).Where("pin_hash = ?", pin)
	if selfID != 0 {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicatePIN
	}
	return nil
}
