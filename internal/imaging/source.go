package imaging

import (
	"context"
	"errors"
)

// ErrCancelled is returned by a Source when the user dismissed the picker.
// The collector resolves it as a silent no-op, distinct from failures.
var ErrCancelled = errors.New("imaging: acquisition cancelled")

// Source is the platform picker capability the pipeline acquires
// candidates from. Picker dialogs are user-controlled and may block
// indefinitely; implementations should honor context cancellation.
type Source interface {
	// RequestPermission asks the platform for media access
	RequestPermission(ctx context.Context) (bool, error)

	// PickMultiple opens the gallery multi-select picker
	PickMultiple(ctx context.Context) ([]Candidate, error)

	// CaptureOne opens the camera and captures at most one asset
	CaptureOne(ctx context.Context) (Candidate, error)

	// PickFiles opens the generic device file picker
	PickFiles(ctx context.Context) ([]Candidate, error)
}

// Notifier presents one-shot user-facing notices for validation failures
// and limit-reached events
type Notifier interface {
	Notify(title, message string)
}

// NopNotifier discards all notices
type NopNotifier struct{}

func (NopNotifier) Notify(title, message string) {}
