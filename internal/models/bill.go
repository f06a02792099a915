package models

import "time"

// BillStatus represents the payment state of a bill.
type BillStatus string

const (
	BillStatusPending   BillStatus = "PENDING"
	BillStatusPartial   BillStatus = "PARTIAL"
	BillStatusPaid      BillStatus = "PAID"
	BillStatusOverdue   BillStatus = "OVERDUE"
	BillStatusCancelled BillStatus = "CANCELLED"
)

// ValidBillStatus reports whether s is one of the known bill statuses.
func ValidBillStatus(s BillStatus) bool {
	switch s {
	case BillStatusPending, BillStatusPartial, BillStatusPaid, BillStatusOverdue, BillStatusCancelled:
		return true
	}
	return false
}

// Bill is one renter's charge record for a billing month. Meter readings and
// rates are nullable: a utility total stays unset until the rate and both
// readings are present, so an incomplete bill never silently charges zero.
// Totals are derived by the billing package, never entered directly.
type Bill struct {
	Base
	RenterID uint      `gorm:"column:renter_id;not null" json:"renterId"`
	Renter   *Renter   `gorm:"foreignKey:RenterID" json:"renter,omitempty"`
	Month    time.Time `gorm:"not null" json:"month"`

	Rent float64 `gorm:"not null;default:0" json:"rent"`

	RateElectricity  *float64 `gorm:"column:rate_electricity" json:"rate_electricity"`
	PrevElectricity  *float64 `gorm:"column:prev_electricity" json:"prev_electricity"`
	CurrElectricity  *float64 `gorm:"column:curr_electricity" json:"curr_electricity"`
	TotalElectricity *float64 `gorm:"column:total_electricity" json:"total_electricity"`

	RateWater  *float64 `gorm:"column:rate_water" json:"rate_water"`
	PrevWater  *float64 `gorm:"column:prev_water" json:"prev_water"`
	CurrWater  *float64 `gorm:"column:curr_water" json:"curr_water"`
	TotalWater *float64 `gorm:"column:total_water" json:"total_water"`

	Others float64    `gorm:"not null;default:0" json:"others"`
	Total  float64    `gorm:"not null;default:0" json:"total"`
	Status BillStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
}
