// Package billing derives the computed fields of a bill from meter readings
// and rates. Everything here is pure: no I/O, no shared state, safe to call
// concurrently. Callers are expected to run Recompute before handing a bill
// to storage.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"rentbook/internal/models"
)

// UtilityTotal computes the charge for one utility:
//
//	round2((curr - prev) * rate)
//
// rounded half-up to two decimals. It returns nil when the rate or either
// reading is missing, so an incomplete bill stays uncomputed instead of
// silently charging zero. No lower bound is enforced: curr < prev yields a
// negative charge, surfacing the data-entry error rather than hiding it.
func UtilityTotal(prev, curr, rate *float64) *float64 {
	if prev == nil || curr == nil || rate == nil {
		return nil
	}
	total := decimal.NewFromFloat(*curr).
		Sub(decimal.NewFromFloat(*prev)).
		Mul(decimal.NewFromFloat(*rate)).
		Round(2).
		InexactFloat64()
	return &total
}

// GrandTotal sums rent, the two utility totals and other charges. Each part
// is treated as 0 when absent. The utility totals must already be rounded:
// the grand total is a sum of rounded parts, never a rounding of the raw
// sum, to stay bit-for-bit compatible with previously stored bills.
func GrandTotal(rent float64, electricity, water *float64, others float64) float64 {
	sum := decimal.NewFromFloat(rent).Add(decimal.NewFromFloat(others))
	if electricity != nil {
		sum = sum.Add(decimal.NewFromFloat(*electricity))
	}
	if water != nil {
		sum = sum.Add(decimal.NewFromFloat(*water))
	}
	return sum.InexactFloat64()
}

// Recompute derives both utility totals and the grand total on b in place.
// It is idempotent: recomputing an already-computed bill changes nothing.
func Recompute(b *models.Bill) {
	b.TotalElectricity = UtilityTotal(b.PrevElectricity, b.CurrElectricity, b.RateElectricity)
	b.TotalWater = UtilityTotal(b.PrevWater, b.CurrWater, b.RateWater)
	b.Total = GrandTotal(b.Rent, b.TotalElectricity, b.TotalWater, b.Others)
}

// NewBillDefaults builds the prefilled starting point for a renter's next
// bill: rent and rates from the house configuration, the billing month set
// to the next occurrence of the house's billing day, and previous readings
// carried over from the renter's most recent bill so the meter chain stays
// continuous. When latest is nil the readings are left unset for manual
// entry.
func NewBillDefaults(house *models.House, latest *models.Bill, now time.Time) models.Bill {
	b := models.Bill{
		Rent:            house.Monthly,
		RateElectricity: cloneFloat(house.ElectRate),
		RateWater:       cloneFloat(house.WaterRate),
		Month:           NextBillingDate(house.BillingDay, now),
		Status:          models.BillStatusPending,
	}
	if latest != nil {
		b.PrevElectricity = cloneFloat(latest.CurrElectricity)
		b.PrevWater = cloneFloat(latest.CurrWater)
	}
	return b
}

// NextBillingDate returns the next occurrence of the given day-of-month on
// or after now's date. Days beyond the end of a month are clamped to its
// last day, so billing_day=31 bills on Feb 28 rather than spilling into
// March.
func NextBillingDate(day int, now time.Time) time.Time {
	year, month, _ := now.Date()

	d := clampDay(day, year, month)
	candidate := time.Date(year, month, d, 0, 0, 0, 0, now.Location())
	if candidate.Before(time.Date(year, month, now.Day(), 0, 0, 0, 0, now.Location())) {
		year, month = nextMonth(year, month)
		candidate = time.Date(year, month, clampDay(day, year, month), 0, 0, 0, 0, now.Location())
	}
	return candidate
}

// UsagePoint is one month's metered consumption, used for tenant-facing
// usage trends. A nil value means that bill's readings were incomplete.
type UsagePoint struct {
	Month       time.Time `json:"month"`
	Electricity *float64  `json:"electricity"`
	Water       *float64  `json:"water"`
}

// Usage returns the consumption recorded on a single bill.
func Usage(b models.Bill) UsagePoint {
	return UsagePoint{
		Month:       b.Month,
		Electricity: consumption(b.PrevElectricity, b.CurrElectricity),
		Water:       consumption(b.PrevWater, b.CurrWater),
	}
}

// UsageHistory maps each bill to its consumption, preserving order.
func UsageHistory(bills []models.Bill) []UsagePoint {
	points := make([]UsagePoint, 0, len(bills))
	for _, b := range bills {
		points = append(points, Usage(b))
	}
	return points
}

func consumption(prev, curr *float64) *float64 {
	if prev == nil || curr == nil {
		return nil
	}
	used := decimal.NewFromFloat(*curr).Sub(decimal.NewFromFloat(*prev)).InexactFloat64()
	return &used
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func clampDay(day, year int, month time.Month) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	if day < 1 {
		return 1
	}
	return day
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
