package models

import "time"

type SaleStatus string

const (
	SalePaid   SaleStatus = "PAID"
	SaleSigned SaleStatus = "SIGNED"
)

type PaymentMethod string

const (
	PayCash   PaymentMethod = "CASH"
	PayCard   PaymentMethod = "CARD"
	PayMobile PaymentMethod = "MOBILE"
)

// Sale is the immutable record an order turns into when it is paid or
// signed. All reporting and the end-of-day close read Sales, never Orders.
type Sale struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	InvoiceNo      string        `gorm:"uniqueIndex;size:40" json:"invoice_no"`
	AttendantID    uint          `gorm:"index;not null" json:"attendant_id"`
	Attendant      User          `json:"attendant"`
	TableNumber    int           `json:"table_number"`
	TotalAmount    float64       `gorm:"not null" json:"total_amount"`
	Status         SaleStatus    `gorm:"size:12;index;not null" json:"status"`
	PaymentMethod  PaymentMethod `gorm:"size:12" json:"payment_method"`
	AmountReceived float64       `json:"amount_received"`
	Change         float64       `json:"change"`
	Items          []SaleItem    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	CreatedAt      time.Time     `gorm:"index" json:"created_at"`
}

// SaleItem snapshots name and store so breakdowns survive catalog edits.
type SaleItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	SaleID   uint    `gorm:"index;not null" json:"sale_id"`
	ItemID   uint    `gorm:"index;not null" json:"item_id"`
	ItemName string  `gorm:"size:200;not null" json:"item_name"`
	StoreID  uint    `gorm:"index;not null" json:"store_id"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}
