// Package form holds the listing-creation form controller: a state
// machine that coordinates validation, the image upload pipeline and the
// create-listing call.
package form

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"
	"sync"

	"github.com/apollo1008/donnie-marketplace/internal/api"
	"github.com/apollo1008/donnie-marketplace/internal/upload"
	"github.com/apollo1008/donnie-marketplace/internal/validate"
)

// FailureNotice is the generic notice shown when submission fails. Field
// errors never use it; transport errors never get field attribution.
const FailureNotice = "An error occurred. Please try again."

var (
	// ErrInvalid is returned when validation blocks a submission. Field
	// errors carry the detail.
	ErrInvalid = errors.New("form is invalid")
	// ErrBusy is returned while an upload or a previous submission is
	// outstanding. It guards against duplicate create calls.
	ErrBusy = errors.New("a request is already in progress")
)

// NavigateFunc is the injected navigation capability invoked on success.
type NavigateFunc func(path string)

// Controller owns the per-form state bundle: field values, the error map,
// the image asset and the in-flight flag. One controller per form
// instance; state is mutated only through its methods.
type Controller struct {
	client   api.IClient
	pipeline *upload.Pipeline
	navigate NavigateFunc

	mu         sync.Mutex
	fields     validate.Fields
	desc       string
	location   string
	errors     map[string]string
	notice     string
	submitting bool
}

// NewController creates a listing form controller. navigate is called with
// the index path after a successful submission.
func NewController(client api.IClient, navigate NavigateFunc) *Controller {
	return &Controller{
		client:   client,
		pipeline: upload.NewPipeline(client),
		navigate: navigate,
		errors:   map[string]string{},
	}
}

// Field setters. Entered values survive any failure so the user never
// re-enters data.

func (c *Controller) SetTitle(v string) { c.mu.Lock(); c.fields.Title = v; c.mu.Unlock() }

func (c *Controller) SetDescription(v string) { c.mu.Lock(); c.desc = v; c.mu.Unlock() }

func (c *Controller) SetLocation(v string) { c.mu.Lock(); c.location = v; c.mu.Unlock() }

func (c *Controller) SetPrice(v string) { c.mu.Lock(); c.fields.Price = v; c.mu.Unlock() }

func (c *Controller) SetEmail(v string) { c.mu.Lock(); c.fields.Email = v; c.mu.Unlock() }

func (c *Controller) SetCategory(v string) { c.mu.Lock(); c.fields.Category = v; c.mu.Unlock() }

// Fields returns a copy of the current validated field values.
func (c *Controller) Fields() validate.Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// Errors returns the current per-field error map.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Notice returns the generic failure notice, or "".
func (c *Controller) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// Submitting reports whether a create call is outstanding.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// ImageURL returns the uploaded asset URL, "" until an upload completes.
func (c *Controller) ImageURL() string {
	return c.pipeline.Asset()
}

// Uploading reports whether an image upload is in flight.
func (c *Controller) Uploading() bool {
	return c.pipeline.InFlight()
}

// AttachImage feeds a selected or dropped file into the upload pipeline.
func (c *Controller) AttachImage(ctx context.Context, filename string, file io.Reader) error {
	return c.pipeline.Start(ctx, filename, file)
}

// Submit runs validation and, when it passes, serializes the draft and
// issues the create-listing call. Submission is disabled while an upload
// is in flight or a previous submission is outstanding. On success the
// injected navigate capability is handed the index path; on failure the
// generic notice is set and every entered value is preserved for retry.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting || c.pipeline.InFlight() {
		c.mu.Unlock()
		return ErrBusy
	}

	result := validate.Check(c.fields)
	c.errors = result.Errors
	if !result.Valid() {
		c.mu.Unlock()
		return ErrInvalid
	}

	// Price parsed already by validation; coerce for the wire.
	price, _ := strconv.ParseFloat(c.fields.Price, 64)
	req := api.CreateListingRequest{
		Title:       c.fields.Title,
		Description: c.desc,
		Location:    c.location,
		Price:       price,
		SellerEmail: c.fields.Email,
		Category:    c.fields.Category,
		ImageURL:    c.pipeline.Asset(),
	}
	c.submitting = true
	c.notice = ""
	c.mu.Unlock()

	_, err := c.client.CreateListing(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	// Teardown mid-request: drop the late update entirely.
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err != nil {
		log.Printf("Submission error: %v", err)
		c.notice = FailureNotice
		return err
	}

	if c.navigate != nil {
		c.navigate("/")
	}
	return nil
}
