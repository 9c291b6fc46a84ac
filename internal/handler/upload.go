package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"storefront-service/internal/imaging"
	"storefront-service/internal/model"
	"storefront-service/pkg/config"
	"storefront-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var uploadCfg config.UploadConfig

// Init configures the handler package with upload limits and storage path
func Init(cfg *config.Config) {
	uploadCfg = cfg.Upload
}

// notice is a one-shot user-facing message produced by the image pipeline
type notice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// noticeRecorder implements imaging.Notifier by accumulating notices for
// the HTTP response body
type noticeRecorder struct {
	notices []notice
}

func (r *noticeRecorder) Notify(title, message string) {
	r.notices = append(r.notices, notice{Title: title, Message: message})
	if title == imaging.TitleInvalid {
		prometheus.ImagesRejectedCounter.WithLabelValues(message).Inc()
	}
}

// Notices returns the accumulated notices, never nil so the JSON field
// encodes as an empty array
func (r *noticeRecorder) Notices() []notice {
	if r.notices == nil {
		return []notice{}
	}
	return r.notices
}

// newRequestSource builds a pipeline source over the named multipart file
// field of the request. A request without files behaves like a dismissed
// picker.
func newRequestSource(c echo.Context, field string) *imaging.MultipartSource {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return imaging.NewMultipartSource(nil)
	}
	return imaging.NewMultipartSource(form.File[field])
}

// storeImage writes an accepted candidate to the upload directory and
// returns its public URL. Only WebFile candidates carry contents; native
// assets already live on the device and keep their URI.
func storeImage(candidate imaging.Candidate) (string, error) {
	info := candidate.FileInfo()

	wf, ok := candidate.(imaging.WebFile)
	if !ok {
		return info.URI, nil
	}

	ext := filepath.Ext(wf.Name)
	name := uuid.New().String() + ext

	if err := os.MkdirAll(uploadCfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(uploadCfg.Dir, name), wf.Data, 0o644); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	return "/uploads/" + name, nil
}

// storeProductImages persists every accepted image in acceptance order
func storeProductImages(productID uint, accepted []imaging.Candidate) ([]model.ProductImage, error) {
	rows := make([]model.ProductImage, 0, len(accepted))
	for i, candidate := range accepted {
		url, err := storeImage(candidate)
		if err != nil {
			return nil, err
		}
		info := candidate.FileInfo()
		rows = append(rows, model.ProductImage{
			ProductID:   productID,
			FileName:    info.Name,
			ContentType: info.Type,
			Size:        info.Size,
			URL:         url,
			Position:    i,
		})
		prometheus.ImagesAcceptedCounter.Inc()
	}
	return rows, nil
}
