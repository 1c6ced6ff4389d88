package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apollo1008/donnie-marketplace/internal/models"
	"github.com/apollo1008/donnie-marketplace/internal/store"
)

// createListingBody is the JSON body of POST /api/listings.
type createListingBody struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	SellerEmail string  `json:"seller_email"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// ListingHandler handles listing requests for the dev server.
type ListingHandler struct {
	store store.IStore
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(st store.IStore) *ListingHandler {
	return &ListingHandler{store: st}
}

// CreateListing handles POST /api/listings.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var body createListingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.store.CreateListing(models.Listing{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		Price:       body.Price,
		Category:    models.Category(body.Category),
		SellerEmail: body.SellerEmail,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetListings handles GET /api/listings?id=. The response is always a
// sequence; a miss is an empty one, not a 404.
func (h *ListingHandler) GetListings(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id parameter"})
		return
	}

	c.JSON(http.StatusOK, h.store.FindListingsByID(id))
}
