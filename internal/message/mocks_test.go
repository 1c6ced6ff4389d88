package message

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/apollo1008/donnie-marketplace/internal/api"
	"github.com/apollo1008/donnie-marketplace/internal/models"
)

// MockClient is a testify mock of api.IClient.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	args := m.Called(ctx, filename, file)
	return args.String(0), args.Error(1)
}

func (m *MockClient) CreateListing(ctx context.Context, req api.CreateListingRequest) (*models.Listing, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockClient) FetchListings(ctx context.Context, id string) ([]models.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}

func (m *MockClient) SendMessage(ctx context.Context, req api.SendMessageRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
