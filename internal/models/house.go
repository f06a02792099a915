package models

// House represents a rental unit and its billing configuration.
// Monthly is the base rent; the two rates are the per-unit utility prices
// used to prefill new bills for renters of this house.
type House struct {
	Base
	Name       string   `gorm:"not null" json:"name"`
	Monthly    float64  `gorm:"not null;default:0" json:"monthly"`
	ElectRate  *float64 `gorm:"column:elect_rate" json:"elect_rate"`
	WaterRate  *float64 `gorm:"column:water_rate" json:"water_rate"`
	BillingDay int      `gorm:"not null;default:1" json:"billing_day"`

	Renters []Renter `gorm:"foreignKey:HouseID" json:"renters,omitempty"`
}

// HouseResource is the trimmed house shape exposed on the public login surface.
type HouseResource struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
