package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"rentbook/internal/billing"
	apperrors "rentbook/internal/errors"
	"rentbook/internal/logger"
	"rentbook/internal/models"
	"rentbook/internal/pagination"
)

// billService handles bill management. All derived fields are recomputed
// server-side before any write; submitted totals are ignored.
type billService struct {
	db      *gorm.DB
	renters RenterServicer
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB, renters RenterServicer) BillServicer {
	return &billService{db: db, renters: renters}
}

// List returns one page of bills, newest billing month first, with the
// renter preloaded for display.
func (s *billService) List(params pagination.Params) (*pagination.Page[models.Bill], error) {
	params.Normalize()

	var total int64
	if err := s.db.Model(&models.Bill{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bills []models.Bill
	err := s.db.Preload("Renter").
		Order("month desc").
		Scopes(pagination.Apply(params)).
		Find(&bills).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	page := pagination.NewPage(bills, params, total)
	return &page, nil
}

// GetByID retrieves a bill with its renter preloaded.
func (s *billService) GetByID(id uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Preload("Renter").First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// Create recomputes the derived fields and stores a new bill.
func (s *billService) Create(bill *models.Bill) (*models.Bill, error) {
	if _, err := s.renters.GetByID(bill.RenterID); err != nil {
		return nil, err
	}
	if bill.Status == "" {
		bill.Status = models.BillStatusPending
	}

	s.recompute(bill)

	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// Update replaces the user-entered fields of an existing bill and
// recomputes the derived ones, mirroring Create exactly.
func (s *billService) Update(id uint, bill *models.Bill) (*models.Bill, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill.RenterID != existing.RenterID {
		if _, err := s.renters.GetByID(bill.RenterID); err != nil {
			return nil, err
		}
	}

	existing.RenterID = bill.RenterID
	existing.Month = bill.Month
	existing.Rent = bill.Rent
	existing.RateElectricity = bill.RateElectricity
	existing.PrevElectricity = bill.PrevElectricity
	existing.CurrElectricity = bill.CurrElectricity
	existing.RateWater = bill.RateWater
	existing.PrevWater = bill.PrevWater
	existing.CurrWater = bill.CurrWater
	existing.Others = bill.Others
	if bill.Status != "" {
		existing.Status = bill.Status
	}
	existing.Renter = nil

	s.recompute(existing)

	if err := s.db.Save(existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetByID(id)
}

// Delete removes a bill.
func (s *billService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.db.Delete(&models.Bill{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Defaults builds the prefilled starting point for a renter's next bill
// from the house configuration and the renter's most recent bill.
func (s *billService) Defaults(renterID uint) (*models.Bill, error) {
	renter, err := s.renters.GetByID(renterID)
	if err != nil {
		return nil, err
	}
	if renter.House == nil {
		return nil, apperrors.ErrHouseNotFound
	}

	latest, err := s.LatestForRenter(renterID)
	if err != nil && !errors.Is(err, apperrors.ErrBillNotFound) {
		return nil, err
	}

	bill := billing.NewBillDefaults(renter.House, latest, time.Now())
	bill.RenterID = renterID
	return &bill, nil
}

// LatestForRenter returns the renter's most recent bill by billing month.
func (s *billService) LatestForRenter(renterID uint) (*models.Bill, error) {
	var bill models.Bill
	err := s.db.Where("renter_id = ?", renterID).Order("month desc").First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// ListForRenter returns all of a renter's bills, newest month first.
func (s *billService) ListForRenter(renterID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := s.db.Where("renter_id = ?", renterID).Order("month desc").Find(&bills).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bills, nil
}

// UsageForRenter returns the renter's metered consumption per billing
// month, newest first, for the portal's usage trend.
func (s *billService) UsageForRenter(renterID uint) ([]billing.UsagePoint, error) {
	bills, err := s.ListForRenter(renterID)
	if err != nil {
		return nil, err
	}
	return billing.UsageHistory(bills), nil
}

func (s *billService) recompute(bill *models.Bill) {
	billing.Recompute(bill)

	// Meter rollback is accepted, not rejected: the negative charge makes
	// the data-entry error visible on the bill itself.
	if bill.TotalElectricity != nil && *bill.TotalElectricity < 0 {
		logger.Get().Warnw("negative electricity total", "renter_id", bill.RenterID, "total", *bill.TotalElectricity)
	}
	if bill.TotalWater != nil && *bill.TotalWater < 0 {
		logger.Get().Warnw("negative water total", "renter_id", bill.RenterID, "total", *bill.TotalWater)
	}
}
