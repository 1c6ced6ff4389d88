// Package store is the in-memory backing store for the dev API server.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apollo1008/donnie-marketplace/internal/models"
	"github.com/apollo1008/donnie-marketplace/internal/utils"
)

// IStore defines the interface for dev server storage operations.
type IStore interface {
	CreateListing(listing models.Listing) (*models.Listing, error)
	FindListingsByID(id string) []models.Listing
	CreateMessage(msg models.Message) (*models.Message, error)
	SaveImage(filename string, data []byte) string
	GetImage(key string) ([]byte, bool)
}

// memoryStore implements IStore. Everything lives in process memory and
// is gone on restart.
type memoryStore struct {
	mu       sync.Mutex
	listings map[string]models.Listing
	messages []models.Message
	images   map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() IStore {
	return &memoryStore{
		listings: make(map[string]models.Listing),
		images:   make(map[string][]byte),
	}
}

// CreateListing assigns an id and creation time and stores the listing.
// Category and price are enforced here too; the client validates first,
// but the store is the contract's last line.
func (s *memoryStore) CreateListing(listing models.Listing) (*models.Listing, error) {
	if listing.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if listing.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than zero")
	}
	if _, err := models.ParseCategory(string(listing.Category)); err != nil {
		return nil, err
	}

	listing.ID = utils.NewSixID().String()
	listing.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.listings[listing.ID] = listing
	s.mu.Unlock()

	return &listing, nil
}

// FindListingsByID returns a slice of zero or one listings, matching the
// sequence shape of GET /api/listings?id=.
func (s *memoryStore) FindListingsByID(id string) []models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	if listing, ok := s.listings[id]; ok {
		return []models.Listing{listing}
	}
	return []models.Listing{}
}

// CreateMessage stores a buyer-to-seller message.
func (s *memoryStore) CreateMessage(msg models.Message) (*models.Message, error) {
	if msg.ListingID == "" || msg.Message == "" || msg.BuyerEmail == "" || msg.SellerEmail == "" {
		return nil, fmt.Errorf("listing_id, message, buyer_email and seller_email are required")
	}

	msg.CreatedAt = time.Now().UTC()
	msg.Sent = true

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	return &msg, nil
}

// SaveImage stores the raw bytes under a fresh object key and returns it.
func (s *memoryStore) SaveImage(filename string, data []byte) string {
	key := fmt.Sprintf("%s_%s", uuid.NewString(), filename)

	s.mu.Lock()
	s.images[key] = data
	s.mu.Unlock()

	return key
}

// GetImage returns the stored bytes for a key.
func (s *memoryStore) GetImage(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.images[key]
	return data, ok
}
