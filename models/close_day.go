package models

import "time"

type CloseStatus string

const (
	CloseBalance  CloseStatus = "BALANCE"
	CloseExcess   CloseStatus = "EXCESS"
	CloseShortage CloseStatus = "SHORTAGE"
)

// CloseDay is the end-of-day reconciliation snapshot, one per calendar date.
// Breakdown columns hold JSON-encoded rows; the ledger writes them once and
// nothing ever updates the record.
type CloseDay struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"uniqueIndex;size:10;not null" json:"date"` // YYYY-MM-DD

	DeclaredCash   float64 `json:"declared_cash"`
	DeclaredCard   float64 `json:"declared_card"`
	DeclaredMobile float64 `json:"declared_mobile"`
	DeclaredTotal  float64 `json:"declared_total"`

	CollectedCash   float64 `json:"collected_cash"`
	CollectedCard   float64 `json:"collected_card"`
	CollectedMobile float64 `json:"collected_mobile"`

	PaidTotal        float64 `json:"paid_total"`
	SignedTotal      float64 `json:"signed_total"`
	TotalSales       float64 `json:"total_sales"`
	ExpensesTotal    float64 `json:"expenses_total"`
	DeclaredExpenses float64 `json:"declared_expenses"`
	TotalCollections float64 `json:"total_collections"`
	TotalDifference  float64 `json:"total_difference"`

	Status CloseStatus `gorm:"size:12;not null" json:"status"`
	Notes  string      `gorm:"size:500" json:"notes"`

	StoreBreakdown     string `gorm:"type:text" json:"store_breakdown"`
	ItemBreakdown      string `gorm:"type:text" json:"item_breakdown"`
	AttendantBreakdown string `gorm:"type:text" json:"attendant_breakdown"`

	ClosedByID uint      `gorm:"not null" json:"closed_by_id"`
	CreatedAt  time.Time `json:"created_at"`
}
