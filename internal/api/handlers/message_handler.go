package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apollo1008/donnie-marketplace/internal/models"
	"github.com/apollo1008/donnie-marketplace/internal/store"
)

// createMessageBody is the JSON body of POST /api/messages.
type createMessageBody struct {
	ListingID   string `json:"listing_id"`
	Message     string `json:"message"`
	BuyerEmail  string `json:"buyer_email"`
	SellerEmail string `json:"seller_email"`
}

// MessageHandler handles message requests for the dev server.
type MessageHandler struct {
	store store.IStore
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(st store.IStore) *MessageHandler {
	return &MessageHandler{store: st}
}

// CreateMessage handles POST /api/messages.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var body createMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.store.CreateMessage(models.Message{
		ListingID:   body.ListingID,
		Message:     body.Message,
		BuyerEmail:  body.BuyerEmail,
		SellerEmail: body.SellerEmail,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}
