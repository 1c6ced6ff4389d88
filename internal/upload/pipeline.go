// Package upload turns a selected or dropped file into a hosted image URL.
package upload

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"github.com/apollo1008/donnie-marketplace/internal/api"
)

// Status is the tagged upload state. There is never more than one upload
// in flight per pipeline.
type Status int

const (
	StatusIdle Status = iota
	StatusUploading
	StatusDone
	StatusFailed
)

var (
	// ErrNoFile is returned when a drop or selection event carries no file.
	ErrNoFile = errors.New("no file provided")
	// ErrUploadInFlight is returned when an upload is requested while a
	// previous one is still outstanding.
	ErrUploadInFlight = errors.New("an upload is already in progress")
)

// Pipeline owns the transient asset produced by an image upload. It is
// owned by a single form instance.
type Pipeline struct {
	client api.IClient

	mu     sync.Mutex
	status Status
	asset  string // hosted URL; survives a later failed re-upload
	err    error
}

// NewPipeline creates an upload pipeline backed by the given API client.
func NewPipeline(client api.IClient) *Pipeline {
	return &Pipeline{client: client}
}

// Start uploads the file and stores the resulting URL as the current
// asset. A second call while uploading is rejected with ErrUploadInFlight;
// an event with no file is rejected with ErrNoFile and leaves all state
// untouched. On failure the previous asset, if any, is preserved and the
// user must re-trigger; nothing retries automatically.
func (p *Pipeline) Start(ctx context.Context, filename string, file io.Reader) error {
	if filename == "" || file == nil {
		return ErrNoFile
	}

	p.mu.Lock()
	if p.status == StatusUploading {
		p.mu.Unlock()
		return ErrUploadInFlight
	}
	p.status = StatusUploading
	p.err = nil
	p.mu.Unlock()

	url, err := p.client.UploadImage(ctx, filename, file)

	p.mu.Lock()
	defer p.mu.Unlock()

	// Teardown mid-request: a canceled context suppresses the late update.
	if ctx.Err() != nil {
		p.status = StatusIdle
		return ctx.Err()
	}

	if err != nil {
		log.Printf("Upload error: %v", err)
		p.status = StatusFailed
		p.err = err
		return err
	}

	p.status = StatusDone
	p.asset = url
	return nil
}

// Status returns the current upload state.
func (p *Pipeline) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// InFlight reports whether an upload is currently outstanding.
func (p *Pipeline) InFlight() bool {
	return p.Status() == StatusUploading
}

// Asset returns the hosted URL of the last successful upload, or "" if
// none has completed. The form's image preview derives from this value.
func (p *Pipeline) Asset() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.asset
}

// Err returns the failure from the most recent attempt, or nil.
func (p *Pipeline) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
