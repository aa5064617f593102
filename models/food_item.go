package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A pantry inventory entry. ID and CreatedAt are assigned by the store and
// never change after creation; CreatedAt is the default list ordering key.
type FoodItem struct {
	ID         string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Category   *string    `gorm:"size:100" json:"category"`
	Quantity   float64    `json:"quantity"`
	Unit       *string    `gorm:"size:50" json:"unit"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Notes      *string    `gorm:"size:1000" json:"notes"`
	ImageURL   *string    `json:"image_url"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Fixed sets offered by the form. Not enforced by the store.
var (
	Categories = []string{
		"Fruits", "Vegetables", "Dairy", "Meat", "Seafood",
		"Grains", "Bakery", "Frozen", "Beverages", "Snacks", "Other",
	}
	Units = []string{
		"pieces", "kg", "g", "liters", "ml", "packs", "cans", "bottles",
	}
)

// IsExpired reports whether the item's expiry date is strictly in the past.
// Items without an expiry date never expire.
func (f *FoodItem) IsExpired(now time.Time) bool {
	if f.ExpiryDate == nil {
		return false
	}
	return f.ExpiryDate.Before(now)
}

// IsExpiringSoon reports whether the item expires within the next 7 whole
// days. Whole days are the ceiling of the remaining duration, so an item due
// in 6 days and 1 hour counts as 7 days out.
func (f *FoodItem) IsExpiringSoon(now time.Time) bool {
	if f.ExpiryDate == nil {
		return false
	}
	days := int(math.Ceil(f.ExpiryDate.Sub(now).Hours() / 24))
	return days >= 0 && days <= 7
}

// Status collapses the two checks into a single display state. Expired wins
// over expiring_soon.
func (f *FoodItem) Status(now time.Time) string {
	switch {
	case f.IsExpired(now):
		return "expired"
	case f.IsExpiringSoon(now):
		return "expiring_soon"
	default:
		return "fresh"
	}
}
