package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var (
	ErrRateLimited  = errors.New("too many requests, please wait before trying again")
	ErrItemNotFound = errors.New("item not found")
)

// ValidationError carries every field error for one submission.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// ItemService is the data-access layer: every mutation runs the rate limiter,
// then validation, then sanitization, and only then touches the store. The
// limiter is injected so callers control its scope (one per session).
type ItemService struct {
	db      *gorm.DB
	limiter *RateLimiter
}

func NewItemService(db *gorm.DB, limiter *RateLimiter) *ItemService {
	return &ItemService{db: db, limiter: limiter}
}

// List returns all items, newest first. An empty store is not an error.
func (s *ItemService) List() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}
	return items, nil
}

func (s *ItemService) Create(in FoodItemInput) (*models.FoodItem, error) {
	if !s.limiter.Allow() {
		return nil, ErrRateLimited
	}
	in = stripScripts(in)
	if errs := ValidateItem(in); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	item := sanitize(in)
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return &item, nil
}

// Update replaces every mutable field of the item; ID and CreatedAt stay as
// the store assigned them.
func (s *ItemService) Update(id string, in FoodItemInput) (*models.FoodItem, error) {
	if !s.limiter.Allow() {
		return nil, ErrRateLimited
	}
	in = stripScripts(in)
	if errs := ValidateItem(in); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	var existing models.FoodItem
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("loading item: %w", err)
	}

	clean := sanitize(in)
	existing.Name = clean.Name
	existing.Category = clean.Category
	existing.Quantity = clean.Quantity
	existing.Unit = clean.Unit
	existing.ExpiryDate = clean.ExpiryDate
	existing.Notes = clean.Notes

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	return &existing, nil
}

// Delete hard-deletes by id. Deleting an id that is already gone reports
// ErrItemNotFound so the caller's cached list never drifts silently.
func (s *ItemService) Delete(id string) error {
	if !s.limiter.Allow() {
		return ErrRateLimited
	}

	res := s.db.Delete(&models.FoodItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// AttachImage uploads a base64 photo to S3 and stores its public URL on the
// item. Mutating, so it is rate limited like any other write.
func (s *ItemService) AttachImage(id, base64Image string) (*models.FoodItem, error) {
	if !s.limiter.Allow() {
		return nil, ErrRateLimited
	}

	var item models.FoodItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("loading item: %w", err)
	}

	url, err := utils.UploadBase64ImageToS3(base64Image, "item-photos/"+item.ID)
	if err != nil {
		return nil, err
	}

	item.ImageURL = &url
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("saving image url: %w", err)
	}
	return &item, nil
}

// stripScripts removes <script> payloads from the free-text fields. Runs
// before validation so a name that is nothing but a script tag fails the
// name-required check instead of slipping through as an empty string.
func stripScripts(in FoodItemInput) FoodItemInput {
	in.Name = utils.StripScriptTags(in.Name)
	in.Category = utils.StripScriptTags(in.Category)
	in.Notes = utils.StripScriptTags(in.Notes)
	return in
}

// sanitize maps validated, script-stripped input onto a storable record:
// free text is trimmed, empty optionals become NULL, a missing or negative
// quantity becomes 0, an empty date becomes NULL.
func sanitize(in FoodItemInput) models.FoodItem {
	item := models.FoodItem{
		Name:     strings.TrimSpace(in.Name),
		Category: utils.TrimToNil(in.Category),
		Unit:     utils.TrimToNil(in.Unit),
		Notes:    utils.TrimToNil(in.Notes),
	}

	if in.Quantity != nil && *in.Quantity > 0 {
		item.Quantity = *in.Quantity
	}

	if d := strings.TrimSpace(in.ExpiryDate); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			item.ExpiryDate = &t
		}
	}

	return item
}
