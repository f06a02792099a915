package services

import (
	"rentbook/internal/billing"
	"rentbook/internal/models"
	"rentbook/internal/pagination"
)

// AdminServicer defines the contract for admin credential logic.
type AdminServicer interface {
	GetByUsername(username string) (*models.Admin, error)
	VerifyPassword(admin *models.Admin, password string) bool
	Create(username, password string) (*models.Admin, error)
}

// HouseServicer defines the contract for house management.
type HouseServicer interface {
	List() ([]models.House, error)
	Resources() ([]models.HouseResource, error)
	GetByID(id uint) (*models.House, error)
	Create(house *models.House) (*models.House, error)
	Update(id uint, house *models.House) (*models.House, error)
	Delete(id uint) error
}

// RenterServicer defines the contract for renter management and PIN lookup.
type RenterServicer interface {
	List() ([]models.Renter, error)
	GetByID(id uint) (*models.Renter, error)
	GetByPIN(pin string) (*models.Renter, error)
	Create(renter *models.Renter) (*models.Renter, error)
	Update(id uint, renter *models.Renter) (*models.Renter, error)
	Delete(id uint) error
}

// BillServicer defines the contract for bill management. Create and Update
// recompute all derived fields before touching storage; clients never
// submit totals directly.
type BillServicer interface {
	List(params pagination.Params) (*pagination.Page[models.Bill], error)
	GetByID(id uint) (*models.Bill, error)
	Create(bill *models.Bill) (*models.Bill, error)
	Update(id uint, bill *models.Bill) (*models.Bill, error)
	Delete(id uint) error
	Defaults(renterID uint) (*models.Bill, error)
	LatestForRenter(renterID uint) (*models.Bill, error)
	ListForRenter(renterID uint) ([]models.Bill, error)
	UsageForRenter(renterID uint) ([]billing.UsagePoint, error)
}
