package controllers

import (
	"testing"
	"time"

	"backend/models"
	"backend/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSessionService(t *testing.T, limiter *services.RateLimiter) *services.ItemService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FoodItem{}))
	if limiter == nil {
		limiter = services.NewRateLimiter(1000, time.Minute)
	}
	return services.NewItemService(db, limiter)
}

func TestSessionLoad(t *testing.T) {
	svc := newSessionService(t, nil)
	_, err := svc.Create(services.FoodItemInput{Name: "Milk"})
	require.NoError(t, err)

	s := NewListSession(svc)
	s.Load()

	assert.False(t, s.Loading)
	assert.Empty(t, s.LastError)
	require.Len(t, s.Items, 1)
	assert.Equal(t, "Milk", s.Items[0].Name)
}

func TestSessionSetFieldStripsScripts(t *testing.T) {
	s := NewListSession(newSessionService(t, nil))
	s.OpenForm()

	s.SetField("name", "<script>alert(1)</script>Eggs")
	s.SetField("notes", "<SCRIPT>x</SCRIPT>fresh")
	s.SetField("quantity", "3")

	assert.Equal(t, "Eggs", s.Form.Name)
	assert.Equal(t, "fresh", s.Form.Notes)
	assert.Equal(t, "3", s.Form.Quantity)
}

func TestSessionSubmitCreatePrependsToCache(t *testing.T) {
	s := NewListSession(newSessionService(t, nil))
	s.Load()

	s.OpenForm()
	s.SetField("name", "Milk")
	s.SetField("quantity", "2")
	require.True(t, s.Submit())

	assert.False(t, s.FormOpen, "successful submit closes the form")
	assert.Empty(t, s.LastError)
	require.Len(t, s.Items, 1)
	assert.Equal(t, "Milk", s.Items[0].Name)
	assert.Equal(t, 2.0, s.Items[0].Quantity)
	assert.NotEmpty(t, s.Items[0].ID)

	// Newest first: a second create lands at the top of the cache.
	s.OpenForm()
	s.SetField("name", "Eggs")
	require.True(t, s.Submit())
	require.Len(t, s.Items, 2)
	assert.Equal(t, "Eggs", s.Items[0].Name)
}

func TestSessionSubmitInvalidKeepsFormOpen(t *testing.T) {
	s := NewListSession(newSessionService(t, nil))

	s.OpenForm()
	s.SetField("name", "   ")
	assert.False(t, s.Submit())

	assert.True(t, s.FormOpen, "failed submit leaves the form open")
	assert.Contains(t, s.LastError, "Name is required")
	assert.Empty(t, s.Items, "cache is untouched by a failed operation")
}

func TestSessionSubmitEditReplacesInCache(t *testing.T) {
	s := NewListSession(newSessionService(t, nil))

	s.OpenForm()
	s.SetField("name", "Milk")
	require.True(t, s.Submit())
	id := s.Items[0].ID

	s.EditItem(id)
	assert.True(t, s.FormOpen)
	assert.Equal(t, "Milk", s.Form.Name)

	s.SetField("name", "Oat milk")
	require.True(t, s.Submit())

	require.Len(t, s.Items, 1)
	assert.Equal(t, id, s.Items[0].ID, "edit replaces in place, never duplicates")
	assert.Equal(t, "Oat milk", s.Items[0].Name)
}

func TestSessionDeleteRequiresConfirmation(t *testing.T) {
	s := NewListSession(newSessionService(t, nil))

	s.OpenForm()
	s.SetField("name", "Milk")
	require.True(t, s.Submit())
	id := s.Items[0].ID

	assert.False(t, s.Delete(id, false), "unconfirmed delete is a no-op")
	require.Len(t, s.Items, 1)

	assert.True(t, s.Delete(id, true))
	assert.Empty(t, s.Items)

	s.Load()
	assert.Empty(t, s.Items, "delete reached the store, not just the cache")
}

func TestSessionRateLimitSurfacesError(t *testing.T) {
	svc := newSessionService(t, services.NewRateLimiter(1, time.Minute))
	s := NewListSession(svc)

	s.OpenForm()
	s.SetField("name", "Milk")
	require.True(t, s.Submit())

	s.OpenForm()
	s.SetField("name", "Eggs")
	assert.False(t, s.Submit())
	assert.Equal(t, services.ErrRateLimited.Error(), s.LastError)
	require.Len(t, s.Items, 1)
}
