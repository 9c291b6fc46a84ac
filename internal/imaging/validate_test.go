package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("ValidJPEG", func(t *testing.T) {
		res := Validate(WebFile{Name: "photo.jpg", Size: 1000, Type: "image/jpeg"}, DefaultMaxImageSize)

		assert.True(t, res.OK)
		assert.Empty(t, res.Reason)
	})

	t.Run("ValidPNGNativeAsset", func(t *testing.T) {
		res := Validate(NativeAsset{
			URI:      "file:///tmp/pic.png",
			FileName: "pic.png",
			MIMEType: "image/png",
			FileSize: 2048,
		}, DefaultMaxImageSize)

		assert.True(t, res.OK)
	})

	t.Run("WrongExtensionAndType", func(t *testing.T) {
		res := Validate(WebFile{Name: "photo.gif", Size: 1000, Type: "image/gif"}, DefaultMaxImageSize)

		assert.False(t, res.OK)
		assert.Equal(t, "Only JPEG and PNG images are allowed", res.Reason)
	})

	t.Run("TooLarge", func(t *testing.T) {
		res := Validate(WebFile{Name: "photo.jpg", Size: 6 * 1024 * 1024, Type: "image/jpeg"}, DefaultMaxImageSize)

		assert.False(t, res.OK)
		assert.Equal(t, "Image size must be less than 5MB", res.Reason)
	})

	t.Run("LogoLimitMessage", func(t *testing.T) {
		res := Validate(WebFile{Name: "logo.png", Size: 3 * 1024 * 1024, Type: "image/png"}, LogoMaxImageSize)

		assert.False(t, res.OK)
		assert.Equal(t, "Image size must be less than 2MB", res.Reason)
	})

	t.Run("WrongMIMEWithValidExtension", func(t *testing.T) {
		res := Validate(WebFile{Name: "photo.jpg", Size: 100, Type: "application/pdf"}, DefaultMaxImageSize)

		assert.False(t, res.OK)
		assert.Equal(t, "Only JPEG and PNG images are allowed", res.Reason)
	})

	t.Run("ExtensionCaseInsensitive", func(t *testing.T) {
		res := Validate(WebFile{Name: "PHOTO.JPG", Size: 100, Type: "image/jpeg"}, DefaultMaxImageSize)

		assert.True(t, res.OK)
	})

	t.Run("NoMetadataPasses", func(t *testing.T) {
		// Candidates with no size, extension or type information pass
		res := Validate(WebFile{Name: "photo"}, DefaultMaxImageSize)

		assert.True(t, res.OK)
	})

	t.Run("Deterministic", func(t *testing.T) {
		candidate := WebFile{Name: "photo.gif", Size: 1000, Type: "image/gif"}

		first := Validate(candidate, DefaultMaxImageSize)
		second := Validate(candidate, DefaultMaxImageSize)

		assert.Equal(t, first, second)
	})

	t.Run("ZeroMaxSizeUsesDefault", func(t *testing.T) {
		res := Validate(WebFile{Name: "photo.jpg", Size: 4 * 1024 * 1024, Type: "image/jpeg"}, 0)

		assert.True(t, res.OK)
	})
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "jpg", extension("a.jpg"))
	assert.Equal(t, "png", extension("archive.tar.PNG"))
	assert.Equal(t, "", extension("noext"))
	assert.Equal(t, "", extension("trailingdot."))
}
