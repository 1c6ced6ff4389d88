// Package message holds the buyer-to-seller message send controller for
// the item detail page.
package message

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/apollo1008/donnie-marketplace/internal/api"
)

// PreconditionNotice is shown when strict precondition surfacing is on.
const PreconditionNotice = "Enter your email and a message first."

var (
	// ErrPreconditions is returned when the message, the buyer email or
	// the fetched listing's seller email is missing. No network call is
	// made. By default nothing is surfaced, matching the historical
	// silent no-op; WithStrictPreconditions turns it into a visible notice.
	ErrPreconditions = errors.New("message preconditions not met")
	// ErrSendInFlight is returned while a previous send is outstanding.
	ErrSendInFlight = errors.New("a send is already in progress")
)

// Controller owns the message form state for one listing page.
type Controller struct {
	client api.IClient
	strict bool

	mu          sync.Mutex
	listingID   string
	sellerEmail string // copied from the fetched listing, never typed
	buyerEmail  string
	message     string
	notice      string
	sending     bool
	sent        bool
}

// Option configures a message controller.
type Option func(*Controller)

// WithStrictPreconditions makes a failed precondition check surface
// PreconditionNotice instead of staying silent.
func WithStrictPreconditions() Option {
	return func(c *Controller) { c.strict = true }
}

// NewController creates a message controller for the given listing. The
// seller email must come from a completed listing fetch; pass "" while the
// fetch is outstanding and sends will refuse to fire.
func NewController(client api.IClient, listingID, sellerEmail string, opts ...Option) *Controller {
	c := &Controller{
		client:      client,
		listingID:   listingID,
		sellerEmail: sellerEmail,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) SetBuyerEmail(v string) { c.mu.Lock(); c.buyerEmail = v; c.mu.Unlock() }

func (c *Controller) SetMessage(v string) { c.mu.Lock(); c.message = v; c.mu.Unlock() }

// Message returns the typed message; preserved across failed sends.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Sent reports whether a message has been sent on this page.
func (c *Controller) Sent() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sent
}

// Sending reports whether a send is outstanding.
func (c *Controller) Sending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}

// Notice returns the current user-visible notice, or "".
func (c *Controller) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// Send posts the message to the seller. Missing preconditions make it
// return ErrPreconditions without any network call. On success the message
// field is cleared and Sent flips true; the page is not left. On failure
// the typed message is preserved so the user can retry.
func (c *Controller) Send(ctx context.Context) error {
	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return ErrSendInFlight
	}
	if c.message == "" || c.buyerEmail == "" || c.sellerEmail == "" {
		if c.strict {
			c.notice = PreconditionNotice
		}
		c.mu.Unlock()
		return ErrPreconditions
	}

	req := api.SendMessageRequest{
		ListingID:   c.listingID,
		Message:     c.message,
		BuyerEmail:  c.buyerEmail,
		SellerEmail: c.sellerEmail,
	}
	c.sending = true
	c.notice = ""
	c.mu.Unlock()

	err := c.client.SendMessage(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sending = false

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err != nil {
		log.Printf("Message error: %v", err)
		return err
	}

	c.message = ""
	c.sent = true
	return nil
}
