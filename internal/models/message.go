package models

import (
	"time"
)

// Message represents a single buyer-to-seller message about a listing.
// SellerEmail is copied from the fetched listing, never user-entered.
// The sender gets no identifier back, only a sent/not-sent outcome.
type Message struct {
	ListingID   string    `json:"listing_id"`
	Message     string    `json:"message"`
	BuyerEmail  string    `json:"buyer_email"`
	SellerEmail string    `json:"seller_email"`
	CreatedAt   time.Time `json:"created_at"`
	Sent        bool      `json:"sent"`
}
