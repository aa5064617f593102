package controllers

import (
	"backend/models"
	"backend/services"
	"backend/utils"
)

// FormValues are the raw string field values as typed into the form.
type FormValues struct {
	Name       string
	Category   string
	Quantity   string
	Unit       string
	ExpiryDate string
	Notes      string
}

// ListSession drives the inventory screen without knowing how it is
// rendered: it owns the cached item list, the loading flag, the last error
// message, and the modal form state, and exposes one command per user
// action. The cache is touched only after a confirmed success, so a failed
// operation never corrupts it.
type ListSession struct {
	svc *services.ItemService

	Items     []models.FoodItem
	Loading   bool
	LastError string
	FormOpen  bool
	EditingID string
	Form      FormValues
}

func NewListSession(svc *services.ItemService) *ListSession {
	return &ListSession{svc: svc}
}

// Load fetches the full list, newest first. Called once on mount; failures
// are surfaced, not retried.
func (s *ListSession) Load() {
	s.Loading = true
	items, err := s.svc.List()
	s.Loading = false

	if err != nil {
		s.LastError = err.Error()
		return
	}
	s.Items = items
	s.LastError = ""
}

// OpenForm opens a blank create form.
func (s *ListSession) OpenForm() {
	s.FormOpen = true
	s.EditingID = ""
	s.Form = FormValues{}
}

// EditItem opens the form prefilled from the cached item. Unknown ids are
// ignored.
func (s *ListSession) EditItem(id string) {
	for _, it := range s.Items {
		if it.ID != id {
			continue
		}
		s.FormOpen = true
		s.EditingID = id
		s.Form = formFromItem(it)
		return
	}
}

// SetField records a single keystroke-level change. Free-text fields are
// stripped of <script> payloads before they ever reach session state.
func (s *ListSession) SetField(field, value string) {
	switch field {
	case "name":
		s.Form.Name = utils.StripScriptTags(value)
	case "category":
		s.Form.Category = utils.StripScriptTags(value)
	case "quantity":
		s.Form.Quantity = value
	case "unit":
		s.Form.Unit = value
	case "expiry_date":
		s.Form.ExpiryDate = value
	case "notes":
		s.Form.Notes = utils.StripScriptTags(value)
	}
}

// Submit routes to update when editing, create otherwise. Success closes the
// form, clears the error, and applies the result to the cache; failure keeps
// the form open with the message displayed.
func (s *ListSession) Submit() bool {
	in := s.inputFromForm()

	var (
		item *models.FoodItem
		err  error
	)
	if s.EditingID != "" {
		item, err = s.svc.Update(s.EditingID, in)
	} else {
		item, err = s.svc.Create(in)
	}

	if err != nil {
		s.LastError = err.Error()
		return false
	}

	if s.EditingID != "" {
		s.replaceItem(*item)
	} else {
		s.Items = append([]models.FoodItem{*item}, s.Items...)
	}

	s.CloseForm()
	s.LastError = ""
	return true
}

// Delete removes an item. It does nothing unless the caller passes the
// user's explicit confirmation.
func (s *ListSession) Delete(id string, confirmed bool) bool {
	if !confirmed {
		return false
	}

	if err := s.svc.Delete(id); err != nil {
		s.LastError = err.Error()
		return false
	}

	kept := s.Items[:0]
	for _, it := range s.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.Items = kept
	s.LastError = ""
	return true
}

func (s *ListSession) CloseForm() {
	s.FormOpen = false
	s.EditingID = ""
	s.Form = FormValues{}
}

func (s *ListSession) replaceItem(item models.FoodItem) {
	for i := range s.Items {
		if s.Items[i].ID == item.ID {
			s.Items[i] = item
			return
		}
	}
}

func (s *ListSession) inputFromForm() services.FoodItemInput {
	qty := utils.CoerceQuantity(s.Form.Quantity)
	return services.FoodItemInput{
		Name:       s.Form.Name,
		Category:   s.Form.Category,
		Quantity:   &qty,
		Unit:       s.Form.Unit,
		ExpiryDate: s.Form.ExpiryDate,
		Notes:      s.Form.Notes,
	}
}

func formFromItem(it models.FoodItem) FormValues {
	f := FormValues{Name: it.Name}
	if it.Category != nil {
		f.Category = *it.Category
	}
	f.Quantity = utils.FormatQuantity(it.Quantity)
	if it.Unit != nil {
		f.Unit = *it.Unit
	}
	if it.ExpiryDate != nil {
		f.ExpiryDate = it.ExpiryDate.Format("2006-01-02")
	}
	if it.Notes != nil {
		f.Notes = *it.Notes
	}
	return f
}
