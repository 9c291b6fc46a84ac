package imaging

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Notice titles used for one-shot user notifications
const (
	TitlePermission = "Permission Required"
	TitleInvalid    = "Invalid Image"
	TitleLimit      = "Limit Reached"
	TitleFailed     = "Upload Failed"
	TitleBusy       = "Upload in Progress"
)

// Collector accumulates up to maxImages validated candidates from a
// picker source. Accepted images keep their acceptance order. Failures
// never propagate to the caller: every failure path is surfaced through
// the notifier, so callers need no error handling around acquisitions.
type Collector struct {
	mu        sync.Mutex
	source    Source
	notifier  Notifier
	maxImages int
	maxSize   int64
	accepted  []Candidate
	lastErr   string
	acquiring bool
}

// NewCollector creates a collector with the given limits. Zero limits
// fall back to the defaults (5 images, 5MB each).
func NewCollector(source Source, notifier Notifier, maxImages int, maxSize int64) *Collector {
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Collector{
		source:    source,
		notifier:  notifier,
		maxImages: maxImages,
		maxSize:   maxSize,
	}
}

// NewLogoCollector creates a single-image collector with the store-logo
// size limit of 2MB
func NewLogoCollector(source Source, notifier Notifier) *Collector {
	return NewCollector(source, notifier, 1, LogoMaxImageSize)
}

// PickFromGallery acquires candidates from the gallery multi-select
// picker, validating each and appending the accepted ones in return order
func (c *Collector) PickFromGallery(ctx context.Context) {
	if !c.begin() {
		return
	}
	defer c.end()

	if !c.permitted(ctx) {
		return
	}

	candidates, err := c.source.PickMultiple(ctx)
	if err != nil {
		c.sourceFailed(err)
		return
	}
	c.accept(candidates)
}

// CaptureFromCamera acquires at most one candidate from the camera. When
// the collector is already full the camera is never invoked.
func (c *Collector) CaptureFromCamera(ctx context.Context) {
	if !c.begin() {
		return
	}
	defer c.end()

	c.mu.Lock()
	full := len(c.accepted) >= c.maxImages
	c.mu.Unlock()
	if full {
		c.notifyLimit()
		return
	}

	if !c.permitted(ctx) {
		return
	}

	candidate, err := c.source.CaptureOne(ctx)
	if err != nil {
		c.sourceFailed(err)
		return
	}
	if candidate == nil {
		return
	}
	c.accept([]Candidate{candidate})
}

// PickFromDevice acquires candidates from the generic device file picker,
// with the same validation and capacity-trim semantics as the gallery.
// The file picker carries its own platform dialog and needs no media
// permission.
func (c *Collector) PickFromDevice(ctx context.Context) {
	if !c.begin() {
		return
	}
	defer c.end()

	candidates, err := c.source.PickFiles(ctx)
	if err != nil {
		c.sourceFailed(err)
		return
	}
	c.accept(candidates)
}

// RemoveImage removes the accepted image at the given position.
// Out-of-range indexes are a no-op.
func (c *Collector) RemoveImage(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.accepted) {
		return
	}
	c.accepted = append(c.accepted[:index], c.accepted[index+1:]...)
}

// ClearImages empties the accepted list and clears any current error
func (c *Collector) ClearImages() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accepted = nil
	c.lastErr = ""
}

// Images returns the accepted images in acceptance order
func (c *Collector) Images() []Candidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.accepted)
}

// Count returns the number of accepted images
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.accepted)
}

// Err returns the most recent validation failure reason, or "" when the
// last processed candidate was accepted or the error was cleared
func (c *Collector) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Acquiring reports whether an acquisition is currently in flight
func (c *Collector) Acquiring() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acquiring
}

// begin marks an acquisition as in flight. A second acquisition while one
// is running is refused with a notice instead of racing.
func (c *Collector) begin() bool {
	c.mu.Lock()
	if c.acquiring {
		c.mu.Unlock()
		c.notifier.Notify(TitleBusy, "Please wait for the current upload to finish")
		return false
	}
	c.acquiring = true
	c.mu.Unlock()
	return true
}

// end releases the acquisition flag. Deferred by every acquisition so the
// flag is reset regardless of outcome.
func (c *Collector) end() {
	c.mu.Lock()
	c.acquiring = false
	c.mu.Unlock()
}

func (c *Collector) permitted(ctx context.Context) bool {
	granted, err := c.source.RequestPermission(ctx)
	if err != nil || !granted {
		c.notifier.Notify(TitlePermission, "Allow media access to add images")
		return false
	}
	return true
}

// sourceFailed handles a picker error. User cancellation is a silent
// no-op; anything else is surfaced as a notice.
func (c *Collector) sourceFailed(err error) {
	if errors.Is(err, ErrCancelled) {
		return
	}
	c.notifier.Notify(TitleFailed, "Could not read the selected images")
}

// accept runs each candidate through validation in return order and
// appends the valid ones until capacity is reached. Excess candidates are
// dropped with a one-shot limit notice that is never stored as the
// persistent error.
func (c *Collector) accept(candidates []Candidate) {
	var notices []string
	var overLimit bool

	c.mu.Lock()
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		if len(c.accepted) >= c.maxImages {
			overLimit = true
			continue
		}
		res := Validate(candidate, c.maxSize)
		if !res.OK {
			c.lastErr = res.Reason
			notices = append(notices, res.Reason)
			continue
		}
		c.accepted = append(c.accepted, candidate)
		c.lastErr = ""
	}
	c.mu.Unlock()

	for _, reason := range notices {
		c.notifier.Notify(TitleInvalid, reason)
	}
	if overLimit {
		c.notifyLimit()
	}
}

func (c *Collector) notifyLimit() {
	c.notifier.Notify(TitleLimit,
		fmt.Sprintf("You can upload up to %d images", c.maxImages))
}
