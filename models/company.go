package models

import "time"

// Company holds the subscription gate. Expired subscription blocks mutating
// routes; no billing logic lives here.
type Company struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:180;not null" json:"name"`
	Address         string    `gorm:"size:255" json:"address"`
	Phone           string    `gorm:"size:60" json:"phone"`
	SubscriptionEnd time.Time `gorm:"not null" json:"subscription_end"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
