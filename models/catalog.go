package models

import "time"

// Printer is a thermal printer reachable over the network (host:port,
// usually port 9100). Tickets for a store are dispatched to its printer.
type Printer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:120" json:"name"`
	Address   string    `gorm:"size:120" json:"address"` // host:port
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a fulfillment branch ("Kitchen", "Bar"), not the company itself.
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:120" json:"name"`
	PrinterID *uint     `json:"printer_id"`
	Printer   *Printer  `json:"printer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:120" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
