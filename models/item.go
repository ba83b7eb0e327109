package models

import "time"

type Item struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:200;not null" json:"name"`
	Barcode    string    `gorm:"uniqueIndex;size:100" json:"barcode"`
	StoreID    uint      `gorm:"index;not null" json:"store_id"`
	Store      Store     `json:"store"`
	CategoryID uint      `gorm:"index;not null" json:"category_id"`
	Category   Category  `json:"category"`
	Price      float64   `gorm:"not null" json:"price"`
	Stock      int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StockAdjustment is an audit row for manual stock edits (restock, breakage
// counts). Order operations move stock through the order engine instead.
type StockAdjustment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ItemID      uint      `gorm:"index;not null" json:"item_id"`
	OldStock    int       `json:"old_stock"`
	NewStock    int       `json:"new_stock"`
	Delta       int       `json:"delta"`
	Reason      string    `gorm:"size:255" json:"reason"`
	CreatedByID uint      `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}
