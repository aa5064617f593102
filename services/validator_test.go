package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name string
		in   FoodItemInput
		want []string
	}{
		{
			name: "valid record",
			in:   FoodItemInput{Name: "Milk", Quantity: f64(2), Category: "Dairy"},
			want: nil,
		},
		{
			name: "empty name",
			in:   FoodItemInput{Name: ""},
			want: []string{"Name is required"},
		},
		{
			name: "whitespace name",
			in:   FoodItemInput{Name: "   \t "},
			want: []string{"Name is required"},
		},
		{
			name: "name too long",
			in:   FoodItemInput{Name: strings.Repeat("a", 256)},
			want: []string{"Name must be less than 255 characters"},
		},
		{
			name: "name at limit is fine",
			in:   FoodItemInput{Name: strings.Repeat("a", 255)},
			want: nil,
		},
		{
			name: "multibyte name counts runes not bytes",
			in:   FoodItemInput{Name: strings.Repeat("å", 255)},
			want: nil,
		},
		{
			name: "negative quantity",
			in:   FoodItemInput{Name: "Milk", Quantity: f64(-1)},
			want: []string{"Quantity cannot be negative"},
		},
		{
			name: "missing quantity is fine",
			in:   FoodItemInput{Name: "Milk"},
			want: nil,
		},
		{
			name: "category too long",
			in:   FoodItemInput{Name: "Milk", Category: strings.Repeat("c", 101)},
			want: []string{"Category must be less than 100 characters"},
		},
		{
			name: "notes too long",
			in:   FoodItemInput{Name: "Milk", Notes: strings.Repeat("n", 1001)},
			want: []string{"Notes must be less than 1000 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateItem(tt.in))
		})
	}
}

func TestValidateItemAccumulatesAllErrors(t *testing.T) {
	in := FoodItemInput{
		Name:     " ",
		Quantity: f64(-5),
		Category: strings.Repeat("c", 101),
		Notes:    strings.Repeat("n", 1001),
	}

	errs := ValidateItem(in)

	assert.Equal(t, []string{
		"Name is required",
		"Quantity cannot be negative",
		"Category must be less than 100 characters",
		"Notes must be less than 1000 characters",
	}, errs)
}
