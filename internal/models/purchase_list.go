package models

import (
	"time"
)

// PurchaseListDB represents a shopping-list entry. ItemName is free
// text and is not required to match an existing item. PurchasedAt is
// null exactly while IsPurchased is false.
type PurchaseListDB struct {
	PurchaseID  int64      `json:"purchase_id" db:"purchase_id"`   // Primary key
	UserID      int64      `json:"user_id" db:"user_id"`           // Owning user
	ItemName    string     `json:"item_name" db:"item_name"`       // What to buy
	CategoryID  int64      `json:"category_id" db:"category_id"`   // Category reference
	IsPurchased bool       `json:"is_purchased" db:"is_purchased"` // One-way flag
	AddedAt     time.Time  `json:"added_at" db:"added_at"`         // When the entry was added
	PurchasedAt *time.Time `json:"purchased_at" db:"purchased_at"` // Set when IsPurchased flips to true
}
