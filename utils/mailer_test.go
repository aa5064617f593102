package utils

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildExpiryDigestBody(t *testing.T) {
	unit := "liters"
	due := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	expired := []models.FoodItem{
		{Name: "Old cheese", Quantity: 1, ExpiryDate: &due},
	}
	expiring := []models.FoodItem{
		{Name: "Milk", Quantity: 2, Unit: &unit, ExpiryDate: &due},
		{Name: "Salt", Quantity: 1}, // undated items still render
	}

	body := BuildExpiryDigestBody(expired, expiring)

	assert.Contains(t, body, "Expired items:")
	assert.Contains(t, body, "- Old cheese (1), expires 2026-08-27")
	assert.Contains(t, body, "Expiring within 7 days:")
	assert.Contains(t, body, "- Milk (2 liters), expires 2026-08-27")
	assert.Contains(t, body, "- Salt (1), expires no date")
}

func TestSendWithoutInitFails(t *testing.T) {
	err := SendExpiryDigest("user@example.com", nil, nil)
	assert.Error(t, err)
}
