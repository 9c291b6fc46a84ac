package imaging

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
)

// MultipartSource adapts the file parts of a multipart upload request to
// the Source interface, so HTTP submissions flow through the same
// validation pipeline as platform pickers. An upload carrying no files is
// reported as a cancellation.
type MultipartSource struct {
	files []*multipart.FileHeader
}

// NewMultipartSource creates a source over the given file headers
func NewMultipartSource(files []*multipart.FileHeader) *MultipartSource {
	return &MultipartSource{files: files}
}

// RequestPermission always grants: the user already chose the files
func (s *MultipartSource) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

// PickMultiple reads every file part into a WebFile candidate
func (s *MultipartSource) PickMultiple(ctx context.Context) ([]Candidate, error) {
	if len(s.files) == 0 {
		return nil, ErrCancelled
	}

	candidates := make([]Candidate, 0, len(s.files))
	for _, fh := range s.files {
		candidate, err := readFileHeader(fh)
		if err != nil {
			return nil, fmt.Errorf("read upload %q: %w", fh.Filename, err)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// CaptureOne reads the first file part only
func (s *MultipartSource) CaptureOne(ctx context.Context) (Candidate, error) {
	if len(s.files) == 0 {
		return nil, ErrCancelled
	}
	return readFileHeader(s.files[0])
}

// PickFiles behaves exactly like PickMultiple
func (s *MultipartSource) PickFiles(ctx context.Context) ([]Candidate, error) {
	return s.PickMultiple(ctx)
}

func readFileHeader(fh *multipart.FileHeader) (Candidate, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return WebFile{
		Name: fh.Filename,
		Type: fh.Header.Get("Content-Type"),
		Size: fh.Size,
		Data: data,
	}, nil
}
