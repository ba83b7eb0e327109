package models

import "time"

// Expense is an operational cash outflow (gas bottle, market run). The JSON
// routes keep the historical "expences" spelling of the client contract.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Amount      float64   `gorm:"not null" json:"amount"`
	StoreID     *uint     `gorm:"index" json:"store_id"`
	CreatedByID uint      `gorm:"not null" json:"created_by_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}
