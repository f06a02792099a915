package models

import "time"

// Renter represents a tenant of a house. The PIN is the renter's portal
// credential: a short alphanumeric code stored uppercase and looked up
// globally, so it carries a unique index.
type Renter struct {
	Base
	Name      string     `gorm:"not null" json:"name"`
	HouseID   uint       `gorm:"column:house_id;not null" json:"houseId"`
	House     *House     `gorm:"foreignKey:HouseID" json:"house,omitempty"`
	PIN       string     `gorm:"column:pin_hash;uniqueIndex;size:50;not null" json:"pin_hash"`
	Active    bool       `gorm:"default:true" json:"active"`
	StartDate *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`

	Bills []Bill `gorm:"foreignKey:RenterID" json:"bills,omitempty"`
}
