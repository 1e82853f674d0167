package models

// CategoryDB represents a food category row. Categories are global:
// they carry no owner and are visible to every authenticated user.
type CategoryDB struct {
	CategoryID   int64   `json:"category_id" db:"category_id"`   // Primary key
	CategoryName string  `json:"category_name" db:"category_name"` // Display name
	Description  *string `json:"description" db:"description"`   // Optional free text
}
