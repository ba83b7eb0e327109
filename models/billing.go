package models

import "time"

// Discount is append-only. The latest row for an order is the "active" one;
// any later line-item edit voids it (the order total is recomputed raw) but
// the row stays for audit.
type Discount struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"index;not null" json:"order_id"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	Percentage int       `gorm:"not null" json:"percentage"`
	Amount     float64   `gorm:"not null" json:"amount"`
	NewTotal   float64   `gorm:"not null" json:"new_total"`
	CreatedAt  time.Time `json:"created_at"`
}

// Cancellation snapshots the line as it was before the cancel, one row per
// processed cancellation request. Item name is denormalized on purpose: the
// catalog row may be renamed or removed later.
type Cancellation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ItemName      string    `gorm:"size:200;not null" json:"item_name"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	UnitPrice     float64   `gorm:"not null" json:"unit_price"`
	TotalPrice    float64   `gorm:"not null" json:"total_price"`
	CancelledByID uint      `gorm:"not null" json:"cancelled_by_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:180;not null" json:"name"`
	Phone     string    `gorm:"size:60" json:"phone"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignedBill is the receivable created by a credit sale: the named client
// owes the sale amount.
type SignedBill struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SaleID      uint      `gorm:"index;not null" json:"sale_id"`
	ClientID    uint      `gorm:"index;not null" json:"client_id"`
	Client      Client    `json:"client"`
	AttendantID uint      `gorm:"not null" json:"attendant_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}
