package models

// Item status values
const (
	StatusFresh   = "fresh"
	StatusWarning = "warning"
	StatusExpired = "expired"
)

// ValidStatus reports whether s is one of the known item statuses.
func ValidStatus(s string) bool {
	return s == StatusFresh || s == StatusWarning || s == StatusExpired
}

// ItemDB represents a food item row. An item is only visible to and
// mutable by the user recorded in UserID.
type ItemDB struct {
	ItemID         int64  `json:"item_id" db:"item_id"`                 // Primary key
	UserID         int64  `json:"user_id" db:"user_id"`                 // Owning user
	CategoryID     int64  `json:"category_id" db:"category_id"`         // Category reference
	ItemName       string `json:"item_name" db:"item_name"`             // Display name
	ExpiryDate     Date   `json:"expiry_date" db:"expiry_date"`         // Best-before date
	Status         string `json:"status" db:"status"`                   // fresh, warning or expired
	PurchaseDate   *Date  `json:"purchase_date" db:"purchase_date"`     // Optional purchase date
	AutoRepurchase bool   `json:"auto_repurchase" db:"auto_repurchase"` // Re-add to purchase list when expired
}

// ItemPatch is a partial update of an item. Nil fields are left
// untouched when the patch is applied.
type ItemPatch struct {
	CategoryID     *int64  `json:"category_id"`
	ItemName       *string `json:"item_name"`
	ExpiryDate     *Date   `json:"expiry_date"`
	Status         *string `json:"status"`
	PurchaseDate   *Date   `json:"purchase_date"`
	AutoRepurchase *bool   `json:"auto_repurchase"`
}
