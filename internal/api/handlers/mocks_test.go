package handlers_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/apollo1008/donnie-marketplace/internal/models"
)

// --- Mocks ---

// MockStore is a testify mock of store.IStore.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateListing(listing models.Listing) (*models.Listing, error) {
	args := m.Called(listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockStore) FindListingsByID(id string) []models.Listing {
	args := m.Called(id)
	return args.Get(0).([]models.Listing)
}

func (m *MockStore) CreateMessage(msg models.Message) (*models.Message, error) {
	args := m.Called(msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockStore) SaveImage(filename string, data []byte) string {
	args := m.Called(filename, data)
	return args.String(0)
}

func (m *MockStore) GetImage(key string) ([]byte, bool) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]byte), args.Bool(1)
}
