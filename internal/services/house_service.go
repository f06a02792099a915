package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "rentbook/internal/errors"
	"rentbook/internal/models"
)

// houseService handles house management logic.
type houseService struct {
	db *gorm.DB
}

// NewHouseService creates a new HouseServicer.
func NewHouseService(db *gorm.DB) HouseServicer {
	return &houseService{db: db}
}

// List returns all houses ordered by name.
func (s *houseService) List() ([]models.House, error) {
	var houses []models.House
	if err := s.db.Order("name asc").Find(&houses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return houses, nil
}

// Resources returns the trimmed id/name list shown on the login surface.
func (s *houseService) Resources() ([]models.HouseResource, error) {
	var houses []models.House
	if err := s.db.Order("name asc").Find(&houses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	resources := make([]models.HouseResource, 0, len(houses))
	for _, h := range houses {
		resources = append(resources, models.HouseResource{ID: h.ID, Name: h.Name})
	}
	return resources, nil
}

// GetByID retrieves a house by ID.
func (s *houseService) GetByID(id uint) (*models.House, error) {
	var house models.House
	if err := s.db.First(&house, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHouseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &house, nil
}

// Create stores a new house.
func (s *houseService) Create(house *models.House) (*models.House, error) {
	if err := s.db.Create(house).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return house, nil
}

// Update replaces the editable fields of an existing house.
func (s *houseService) Update(id uint, house *models.House) (*models.House, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = house.Name
	existing.Monthly = house.Monthly
	existing.ElectRate = house.ElectRate
	existing.WaterRate = house.WaterRate
	existing.BillingDay = house.BillingDay

	if err := s.db.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return existing, nil
}

// Delete removes a house. Houses with renters assigned cannot be deleted.
func (s *houseService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	var renters int64
	if err := s.db.Model(&models.Renter{}).Where("house_id = ?", id).Count(&renters).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if renters > 0 {
		return apperrors.ErrHouseHasRenter
	}

	if err := s.db.Delete(&models.House{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
