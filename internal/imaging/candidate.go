// Package imaging implements the image acquisition pipeline: candidates
// obtained from a picker source are validated against size, extension and
// MIME-type rules and collected into a capacity-bounded list ready for
// submission.
package imaging

// FileInfo is the common validation shape every candidate normalizes to
type FileInfo struct {
	Name string
	URI  string
	Type string
	Size int64
}

// Candidate is an unvalidated image reference obtained from a picker.
// The two concrete variants are NativeAsset and WebFile.
type Candidate interface {
	FileInfo() FileInfo
}

// NativeAsset is a gallery or camera asset descriptor
type NativeAsset struct {
	URI      string
	MIMEType string
	FileName string
	FileSize int64
}

// FileInfo normalizes the asset to the common validation shape
func (a NativeAsset) FileInfo() FileInfo {
	return FileInfo{
		Name: a.FileName,
		URI:  a.URI,
		Type: a.MIMEType,
		Size: a.FileSize,
	}
}

// WebFile is a generic file handle carrying its binary contents
type WebFile struct {
	Name string
	Type string
	Size int64
	Data []byte
}

// FileInfo normalizes the file to the common validation shape
func (f WebFile) FileInfo() FileInfo {
	return FileInfo{
		Name: f.Name,
		Type: f.Type,
		Size: f.Size,
	}
}
