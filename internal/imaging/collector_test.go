package imaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	granted      bool
	permErr      error
	multi        []Candidate
	multiErr     error
	one          Candidate
	oneErr       error
	captureCalls int
	pickCalls    int
	block        chan struct{}
}

func (s *fakeSource) RequestPermission(ctx context.Context) (bool, error) {
	return s.granted, s.permErr
}

func (s *fakeSource) PickMultiple(ctx context.Context) ([]Candidate, error) {
	s.pickCalls++
	if s.block != nil {
		<-s.block
	}
	return s.multi, s.multiErr
}

func (s *fakeSource) CaptureOne(ctx context.Context) (Candidate, error) {
	s.captureCalls++
	return s.one, s.oneErr
}

func (s *fakeSource) PickFiles(ctx context.Context) ([]Candidate, error) {
	return s.PickMultiple(ctx)
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []notice
}

type notice struct {
	title   string
	message string
}

func (n *fakeNotifier) Notify(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{title, message})
}

func (n *fakeNotifier) titles() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.notices))
	for i, v := range n.notices {
		out[i] = v.title
	}
	return out
}

func validJPEG(name string) WebFile {
	return WebFile{Name: name, Size: 1024, Type: "image/jpeg"}
}

func TestCollectorGallery(t *testing.T) {
	ctx := context.Background()

	t.Run("AcceptsValidInOrder", func(t *testing.T) {
		src := &fakeSource{granted: true, multi: []Candidate{
			validJPEG("a.jpg"), validJPEG("b.jpg"),
		}}
		notifier := &fakeNotifier{}
		col := NewCollector(src, notifier, 5, 0)

		col.PickFromGallery(ctx)

		images := col.Images()
		require.Len(t, images, 2)
		assert.Equal(t, "a.jpg", images[0].FileInfo().Name)
		assert.Equal(t, "b.jpg", images[1].FileInfo().Name)
		assert.Empty(t, notifier.titles())
		assert.Empty(t, col.Err())
	})

	t.Run("CapacityTrimEmitsLimitNotice", func(t *testing.T) {
		src := &fakeSource{granted: true, multi: []Candidate{
			validJPEG("a.jpg"), validJPEG("b.jpg"),
		}}
		notifier := &fakeNotifier{}
		col := NewCollector(src, notifier, 1, 0)

		col.PickFromGallery(ctx)

		assert.Equal(t, 1, col.Count())
		assert.Equal(t, []string{"Limit Reached"}, notifier.titles())
		// The limit notice is never stored as the persistent error
		assert.Empty(t, col.Err())
	})

	t.Run("InvalidCandidateSetsError", func(t *testing.T) {
		src := &fakeSource{granted: true, multi: []Candidate{
			WebFile{Name: "anim.gif", Size: 100, Type: "image/gif"},
		}}
		notifier := &fakeNotifier{}
		col := NewCollector(src, notifier, 5, 0)

		col.PickFromGallery(ctx)

		assert.Zero(t, col.Count())
		assert.Equal(t, "Only JPEG and PNG images are allowed", col.Err())
		assert.Equal(t, []string{"Invalid Image"}, notifier.titles())
	})

	t.Run("ErrorClearedOnAcceptance", func(t *testing.T) {
		src := &fakeSource{granted: true, multi: []Candidate{
			WebFile{Name: "anim.gif", Size: 100, Type: "image/gif"},
		}}
		col := NewCollector(src, &fakeNotifier{}, 5, 0)

		col.PickFromGallery(ctx)
		require.NotEmpty(t, col.Err())

		src.multi = []Candidate{validJPEG("ok.jpg")}
		col.PickFromGallery(ctx)

		assert.Empty(t, col.Err())
		assert.Equal(t, 1, col.Count())
	})

	t.Run("PermissionDenied", func(t *testing.T) {
		src := &fakeSource{granted: false}
		notifier := &fakeNotifier{}
		col := NewCollector(src, notifier, 5, 0)

		col.PickFromGallery(ctx)

		assert.Zero(t, col.Count())
		assert.Zero(t, src.pickCalls)
		assert.Equal(t, []string{"Permission Required"}, notifier.titles())
		assert.False(t, col.Acquiring())
	})

	t.Run("CancelledIsSilentNoOp", func(t *testing.T) {
		src := &fakeSource{granted: true, multiErr: ErrCancelled}
		notifier := &fakeNotifier{}
		col := NewCollector(src, notifier, 5, 0)

		col.PickFromGallery(ctx)

		assert.Zero(t, col.Count())
		assert.Empty(t, notifier.titles())
		assert.Empty(t, col.Err())
		assert.False(t, col.Acquiring())
	})

	t.Run("SourceFailureNotifies", func(t *testing.T) {
		src := &fakeSource{granted: true, multiErr: errors.New("read failed")}
		notifier := &fakeNotifier{}
		col := NewCollector(src, notifier, 5, 0)

		col.PickFromGallery(ctx)

		assert.Equal(t, []string{"Upload Failed"}, notifier.titles())
		assert.False(t, col.Acquiring())
	})
}

func TestCollectorCamera(t *testing.T) {
	ctx := context.Background()

	t.Run("AcceptsOne", func(t *testing.T) {
		src := &fakeSource{granted: true, one: validJPEG("shot.jpg")}
		col := NewCollector(src, &fakeNotifier{}, 5, 0)

		col.CaptureFromCamera(ctx)

		assert.Equal(t, 1, col.Count())
	})

	t.Run("RefusedUpFrontAtCapacity", func(t *testing.T) {
		src := &fakeSource{
			granted: true,
			multi:   []Candidate{validJPEG("a.jpg")},
			one:     validJPEG("shot.jpg"),
		}
		notifier := &fakeNotifier{}
		col := NewCollector(src, notifier, 1, 0)

		col.PickFromGallery(ctx)
		require.Equal(t, 1, col.Count())

		col.CaptureFromCamera(ctx)

		// The camera is never invoked once the collector is full
		assert.Zero(t, src.captureCalls)
		assert.Equal(t, 1, col.Count())
		assert.Contains(t, notifier.titles(), "Limit Reached")
	})
}

func TestCollectorMutations(t *testing.T) {
	ctx := context.Background()

	newFilled := func(t *testing.T) *Collector {
		t.Helper()
		src := &fakeSource{granted: true, multi: []Candidate{
			validJPEG("a.jpg"), validJPEG("b.jpg"), validJPEG("c.jpg"),
		}}
		col := NewCollector(src, &fakeNotifier{}, 5, 0)
		col.PickFromGallery(ctx)
		require.Equal(t, 3, col.Count())
		return col
	}

	t.Run("RemoveImage", func(t *testing.T) {
		col := newFilled(t)

		col.RemoveImage(1)

		images := col.Images()
		require.Len(t, images, 2)
		assert.Equal(t, "a.jpg", images[0].FileInfo().Name)
		assert.Equal(t, "c.jpg", images[1].FileInfo().Name)
	})

	t.Run("RemoveOutOfRangeIsNoOp", func(t *testing.T) {
		col := newFilled(t)

		col.RemoveImage(-1)
		col.RemoveImage(3)

		assert.Equal(t, 3, col.Count())
	})

	t.Run("ClearImages", func(t *testing.T) {
		src := &fakeSource{granted: true, multi: []Candidate{
			WebFile{Name: "anim.gif", Size: 100, Type: "image/gif"},
			validJPEG("a.jpg"),
		}}
		col := NewCollector(src, &fakeNotifier{}, 5, 0)
		col.PickFromGallery(ctx)

		col.ClearImages()

		assert.Zero(t, col.Count())
		assert.Empty(t, col.Err())
	})

	t.Run("CapacityInvariantAcrossOperations", func(t *testing.T) {
		src := &fakeSource{granted: true, multi: []Candidate{
			validJPEG("a.jpg"), validJPEG("b.jpg"), validJPEG("c.jpg"),
		}}
		col := NewCollector(src, &fakeNotifier{}, 2, 0)

		for i := 0; i < 3; i++ {
			col.PickFromGallery(ctx)
			assert.LessOrEqual(t, col.Count(), 2)
		}
		col.RemoveImage(0)
		assert.LessOrEqual(t, col.Count(), 2)
		col.PickFromGallery(ctx)
		assert.LessOrEqual(t, col.Count(), 2)
	})
}

func TestCollectorReentrancy(t *testing.T) {
	ctx := context.Background()

	src := &fakeSource{
		granted: true,
		multi:   []Candidate{validJPEG("a.jpg")},
		block:   make(chan struct{}),
	}
	notifier := &fakeNotifier{}
	col := NewCollector(src, notifier, 5, 0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		col.PickFromGallery(ctx)
	}()

	// Wait until the first acquisition holds the picker open
	for !col.Acquiring() {
		time.Sleep(time.Millisecond)
	}

	// A second acquisition while one is in flight is refused with a notice
	col.PickFromDevice(ctx)
	assert.Contains(t, notifier.titles(), "Upload in Progress")

	close(src.block)
	wg.Wait()

	assert.Equal(t, 1, col.Count())
	assert.False(t, col.Acquiring())
}
