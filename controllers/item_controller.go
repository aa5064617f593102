package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	svc *services.ItemService
}

func NewItemController(svc *services.ItemService) *ItemController {
	return &ItemController{svc: svc}
}

// itemResponse decorates a stored item with its derived expiry status.
type itemResponse struct {
	models.FoodItem
	Status string `json:"status"`
}

func withStatus(items []models.FoodItem, now time.Time) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, itemResponse{FoodItem: it, Status: it.Status(now)})
	}
	return out
}

// GET /api/items
func (ic *ItemController) ListItems(c *gin.Context) {
	items, err := ic.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withStatus(items, time.Now()))
}

// POST /api/items
func (ic *ItemController) CreateItem(c *gin.Context) {
	var in services.FoodItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	item, err := ic.svc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, itemResponse{FoodItem: *item, Status: item.Status(time.Now())})
}

// PUT /api/items/:id
func (ic *ItemController) UpdateItem(c *gin.Context) {
	var in services.FoodItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	item, err := ic.svc.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemResponse{FoodItem: *item, Status: item.Status(time.Now())})
}

// DELETE /api/items/:id
func (ic *ItemController) DeleteItem(c *gin.Context) {
	if err := ic.svc.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/items/:id/image  { "image_base64": "data:…" }
func (ic *ItemController) UploadItemImage(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	item, err := ic.svc.AttachImage(c.Param("id"), req.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemResponse{FoodItem: *item, Status: item.Status(time.Now())})
}

// POST /api/items/digest  { "email": "someone@example.com" }
func (ic *ItemController) SendExpiryDigest(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}

	if err := ic.svc.SendExpiryDigest(req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/meta — the fixed category/unit sets the form offers.
func (ic *ItemController) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": models.Categories,
		"units":      models.Units,
	})
}

func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "errors": verr.Errors})
	case errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNothingToReport):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
