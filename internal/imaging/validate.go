package imaging

import (
	"fmt"
	"strings"
)

// Default upload limits
const (
	DefaultMaxImages    = 5
	DefaultMaxImageSize = 5 * 1024 * 1024
	LogoMaxImageSize    = 2 * 1024 * 1024
)

// Allowed image file extensions
var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// Allowed image content types
var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/jpg":  true,
}

const typeReason = "Only JPEG and PNG images are allowed"

// Result is the outcome of validating a single candidate
type Result struct {
	OK     bool
	Reason string
}

// Validate checks a candidate against the size, extension and MIME-type
// rules. Candidates carrying no size, extension or type information pass:
// pickers are trusted to have produced an image, and tightening this would
// reject platform assets that omit metadata.
func Validate(c Candidate, maxSize int64) Result {
	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
	}
	info := c.FileInfo()

	if info.Size > 0 && info.Size > maxSize {
		return Result{Reason: sizeReason(maxSize)}
	}

	if ext := extension(info.Name); ext != "" && !allowedExtensions[ext] {
		return Result{Reason: typeReason}
	}

	if info.Type != "" && !allowedMIMETypes[strings.ToLower(info.Type)] {
		return Result{Reason: typeReason}
	}

	return Result{OK: true}
}

// sizeReason renders the size limit in whole megabytes, so the default
// limit produces "Image size must be less than 5MB"
func sizeReason(maxSize int64) string {
	return fmt.Sprintf("Image size must be less than %dMB", maxSize/(1024*1024))
}

// extension returns the lower-cased filename extension without the dot,
// or "" when the name carries none
func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
