// Package listing retrieves a single listing by id for the item detail
// page and feeds the message controller its seller email.
package listing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/apollo1008/donnie-marketplace/internal/api"
	"github.com/apollo1008/donnie-marketplace/internal/models"
)

// NotFoundText is the affordance rendered for both a missing listing and
// a failed fetch. The two stay distinguishable via errors.Is.
const NotFoundText = "Listing not found."

var (
	// ErrNotFound means the lookup succeeded but returned no listing.
	ErrNotFound = errors.New("listing not found")
	// ErrFetchFailed means the lookup itself failed. Terminal for the
	// current view, same as not-found; no retry is attempted.
	ErrFetchFailed = errors.New("listing fetch failed")
)

// Fetcher loads "the" listing for an id: the first element of whatever
// sequence the API returns.
type Fetcher struct {
	client api.IClient

	mu      sync.Mutex
	listing *models.Listing
	err     error
	loaded  bool
}

// NewFetcher creates a listing fetcher.
func NewFetcher(client api.IClient) *Fetcher {
	return &Fetcher{client: client}
}

// Load fetches the listing. An empty result is ErrNotFound; a transport
// failure is logged and wrapped in ErrFetchFailed. Both are terminal for
// the page.
func (f *Fetcher) Load(ctx context.Context, id string) (*models.Listing, error) {
	listings, err := f.client.FetchListings(ctx, id)

	f.mu.Lock()
	defer f.mu.Unlock()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	f.loaded = true

	if err != nil {
		log.Printf("Fetch error: %v", err)
		f.err = fmt.Errorf("%w: %v", ErrFetchFailed, err)
		return nil, f.err
	}
	if len(listings) == 0 {
		f.err = ErrNotFound
		return nil, f.err
	}

	f.listing = &listings[0]
	f.err = nil
	return f.listing, nil
}

// Listing returns the loaded listing, or nil.
func (f *Fetcher) Listing() *models.Listing {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listing
}

// SellerEmail returns the loaded listing's seller email, or "" while the
// fetch has not completed successfully.
func (f *Fetcher) SellerEmail() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listing == nil {
		return ""
	}
	return f.listing.SellerEmail
}

// Loaded reports whether a fetch attempt has completed, in any outcome.
func (f *Fetcher) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded
}

// Err returns the terminal fetch error, or nil after a successful load.
func (f *Fetcher) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
