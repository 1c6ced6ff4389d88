package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/apollo1008/donnie-marketplace/internal/config"
	"github.com/apollo1008/donnie-marketplace/internal/models"
)

// IClient defines the interface for calls to the marketplace API. The
// controllers depend on this interface so tests can count and stub calls.
type IClient interface {
	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)
	CreateListing(ctx context.Context, req CreateListingRequest) (*models.Listing, error)
	FetchListings(ctx context.Context, id string) ([]models.Listing, error)
	SendMessage(ctx context.Context, req SendMessageRequest) error
}

// CreateListingRequest is the JSON body for POST /api/listings.
type CreateListingRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	SellerEmail string  `json:"seller_email"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// SendMessageRequest is the JSON body for POST /api/messages.
type SendMessageRequest struct {
	ListingID   string `json:"listing_id"`
	Message     string `json:"message"`
	BuyerEmail  string `json:"buyer_email"`
	SellerEmail string `json:"seller_email"`
}

// uploadResponse is the success body of POST /api/upload.
type uploadResponse struct {
	URL string `json:"url"`
}

// errorResponse is the failure body shared by all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// client implements IClient against a base URL.
type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an API client for the configured base URL.
func NewClient(cfg *config.Config) IClient {
	return &client{
		baseURL:    cfg.ApiBaseURL,
		httpClient: &http.Client{Timeout: cfg.ClientTimeout},
	}
}

// UploadImage posts the raw file as multipart field "file" and returns the
// hosted URL.
func (c *client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read file payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result uploadResponse
	if err := c.do(req, &result); err != nil {
		return "", err
	}
	return result.URL, nil
}

// CreateListing posts the draft and returns the created listing.
func (c *client) CreateListing(ctx context.Context, createReq CreateListingRequest) (*models.Listing, error) {
	body, err := json.Marshal(createReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/listings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create listing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var listing models.Listing
	if err := c.do(req, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// FetchListings retrieves the sequence of listings matching the id. The
// caller decides what an empty sequence means.
func (c *client) FetchListings(ctx context.Context, id string) ([]models.Listing, error) {
	reqURL := c.baseURL + "/api/listings?id=" + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch request: %w", err)
	}

	var listings []models.Listing
	if err := c.do(req, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// SendMessage posts a buyer-to-seller message.
func (c *client) SendMessage(ctx context.Context, sendReq SendMessageRequest) error {
	body, err := json.Marshal(sendReq)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create message request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

// do executes the request, decodes a success body into out (when non-nil)
// and turns a non-2xx response into an error carrying the server's
// {error} string. No retries; retry is always user-initiated.
func (c *client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s returned status %d: %s", req.URL.Path, resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("%s returned status %d", req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", req.URL.Path, err)
	}
	return nil
}
