package models

// AdminTypeOwner is the only admin type issued today; the column exists so
// future roles (caretaker, accountant) can reuse the same table.
const AdminTypeOwner = 1

// Admin represents a landlord account that manages houses, renters and bills.
type Admin struct {
	Base
	Username     string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Type         int    `gorm:"default:1" json:"type"`
}
