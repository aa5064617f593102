package services

import (
	"strings"
	"unicode/utf8"
)

// FoodItemInput is a candidate record as submitted by the form or the API.
// Quantity is a pointer so "not provided" and "0" stay distinguishable;
// ExpiryDate is the raw "YYYY-MM-DD" string, empty meaning no date.
type FoodItemInput struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Quantity   *float64 `json:"quantity"`
	Unit       string   `json:"unit"`
	ExpiryDate string   `json:"expiry_date"`
	Notes      string   `json:"notes"`
}

// ValidateItem runs every field check and accumulates the messages; it never
// stops at the first failure. An empty result means the record is valid.
// Lengths count characters, not bytes.
func ValidateItem(in FoodItemInput) []string {
	var errs []string

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, "Name is required")
	}
	if utf8.RuneCountInString(name) > 255 {
		errs = append(errs, "Name must be less than 255 characters")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		errs = append(errs, "Quantity cannot be negative")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Category)) > 100 {
		errs = append(errs, "Category must be less than 100 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Notes)) > 1000 {
		errs = append(errs, "Notes must be less than 1000 characters")
	}

	return errs
}
