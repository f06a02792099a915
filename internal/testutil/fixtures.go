package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"rentbook/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Float returns a pointer to v, for optional reading/rate fields.
func Float(v float64) *float64 {
	return &v
}

// CreateTestAdmin creates an admin whose password is "password123".
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	admin := &models.Admin{
		Username:     fmt.Sprintf("admin%d", nextID()),
		PasswordHash: string(hash),
		Type:         models.AdminTypeOwner,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create test admin: %v", err)
	}
	return admin
}

// CreateTestHouse creates a house with standard rates and billing day 15.
func CreateTestHouse(t *testing.T, db *gorm.DB) *models.House {
	t.Helper()

	house := &models.House{
		Name:       fmt.Sprintf("Unit %d", nextID()),
		Monthly:    5000,
		ElectRate:  Float(12.50),
		WaterRate:  Float(10.50),
		BillingDay: 15,
	}
	if err := db.Create(house).Error; err != nil {
		t.Fatalf("failed to create test house: %v", err)
	}
	return house
}

// CreateTestRenter creates an active renter of the given house with a unique PIN.
func CreateTestRenter(t *testing.T, db *gorm.DB, houseID uint) *models.Renter {
	t.Helper()
	return CreateTestRenterWithPIN(t, db, houseID, fmt.Sprintf("PIN%04d", nextID()))
}

// CreateTestRenterWithPIN creates an active renter with the given PIN.
func CreateTestRenterWithPIN(t *testing.T, db *gorm.DB, houseID uint, pin string) *models.Renter {
	t.Helper()

	start := time.Now().AddDate(0, -6, 0)
	renter := &models.Renter{
		Name:      fmt.Sprintf("Renter %d", nextID()),
		HouseID:   houseID,
		PIN:       pin,
		Active:    true,
		StartDate: &start,
	}
	if err := db.Create(renter).Error; err != nil {
		t.Fatalf("failed to create test renter: %v", err)
	}
	return renter
}

// CreateTestBill creates a fully computed bill for the given renter and month.
func CreateTestBill(t *testing.T, db *gorm.DB, renterID uint, month time.Time) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		RenterID:         renterID,
		Month:            month,
		Rent:             5000,
		RateElectricity:  Float(12.50),
		PrevElectricity:  Float(100),
		CurrElectricity:  Float(150),
		TotalElectricity: Float(625.00),
		RateWater:        Float(10.50),
		PrevWater:        Float(60),
		CurrWater:        Float(80),
		TotalWater:       Float(210.00),
		Others:           150,
		Total:            5985.00,
		Status:           models.BillStatusPending,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}
