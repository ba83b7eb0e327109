package models

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	TableOccupied  TableStatus = "OCCUPIED"
)

// Table is a physical seat. Status and CurrentOrderID move together: a table
// is OCCUPIED iff it references an open order, and only inside the same
// transaction that touches the order.
type Table struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	Number         int         `gorm:"uniqueIndex;not null" json:"number"`
	Status         TableStatus `gorm:"size:12;not null;default:AVAILABLE" json:"status"`
	CurrentOrderID *uint       `gorm:"index" json:"current_order_id"`
	AttendantID    *uint       `json:"attendant_id"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
