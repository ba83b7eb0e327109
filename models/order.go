package models

import "time"

type OrderStatus string

const (
	OrderPending OrderStatus = "PENDING"
)

// Order is an open tab. It only ever leaves PENDING by becoming a Sale
// (pay/sign) or by being hard-deleted when its last line is cancelled.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	AttendantID uint        `gorm:"index;not null" json:"attendant_id"`
	Attendant   User        `json:"attendant"`
	TableID     *uint       `gorm:"index" json:"table_id"`
	Status      OrderStatus `gorm:"size:12;not null;default:PENDING" json:"status"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Items       []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem carries the catalog price frozen at add time, so later price
// edits never move historical totals. Quantity is always > 0; a line that
// would reach zero is deleted instead.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index;not null" json:"order_id"`
	ItemID   uint    `gorm:"index;not null" json:"item_id"`
	Item     Item    `json:"item"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}
