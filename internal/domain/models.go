// Package domain defines the persistence models for orders, contact
// messages, and the key/value slots that back the client's fallback store.
// These types are mapped with GORM.
package domain

import (
	"fmt"
	"time"
)

// Order statuses.
const (
	StatusPending = "pending"
)

// Order is a water delivery order placed through the order form.
//
// Fields:
//   - ID: autoincrement primary key; the public id is derived from it.
//   - Email, Notes: optional, stored as "" when absent.
//   - Quantity: number of units, always >= 1.
//   - Status: lifecycle marker, "pending" on creation.
//   - CreatedAt: set by GORM.
type Order struct {
	ID           uint      `json:"-"             gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name"          gorm:"type:text;not null"`
	Mobile       string    `json:"mobile"        gorm:"type:text;not null"`
	Email        string    `json:"email"         gorm:"type:text"`
	Address      string    `json:"address"       gorm:"type:text;not null"`
	ProductType  string    `json:"product_type"  gorm:"type:text;not null"`
	Quantity     int       `json:"quantity"      gorm:"not null;check:quantity >= 1"`
	DeliveryTime string    `json:"delivery_time" gorm:"type:text;not null"`
	DeliveryDate string    `json:"delivery_date" gorm:"type:text;not null"`
	Notes        string    `json:"notes"         gorm:"type:text"`
	Status       string    `json:"status"        gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt    time.Time `json:"created_at"    gorm:"index:idx_orders_created"`
}

// TableName returns the database table name for Order.
func (Order) TableName() string { return "orders" }

// PublicID formats the id shown to customers, e.g. "AQB-00000042".
func (o Order) PublicID() string { return fmt.Sprintf("AQB-%08d", o.ID) }

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"type:text;not null"`
	Email     string    `json:"email"      gorm:"type:text;not null"`
	Phone     string    `json:"phone"      gorm:"type:text;not null"`
	Subject   string    `json:"subject"    gorm:"type:text;not null"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_contact_created"`
}

// TableName returns the database table name for ContactMessage.
func (ContactMessage) TableName() string { return "contact_messages" }

// Slot is one named value of the client-side fallback store. Each form
// owns a slot whose value is a JSON array of records.
type Slot struct {
	Key       string    `gorm:"column:slot_key;type:varchar(128);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName returns the database table name for Slot.
func (Slot) TableName() string { return "local_slots" }
