package form

import (
	"encoding/base64"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gabriel-vasile/mimetype"
)

// MaxLogoBytes is the upload ceiling for clinic logos.
const MaxLogoBytes = 5 * 1024 * 1024

// allowedLogoMIMEs are the image types a clinic logo may use. Matching is
// done on sniffed content, never on the client-declared type alone.
var allowedLogoMIMEs = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var (
	ErrLogoTooLarge = errors.New("File size cannot exceed 5MB.")
	ErrLogoBadType  = errors.New("Please upload a valid image file (JPEG, PNG, GIF, or WebP).")
)

// Preview is an accepted logo rendered as an inline data URL. Nothing is
// stored or forwarded; the preview lives only in the response.
type Preview struct {
	DataURL string `json:"preview"`
	MIME    string `json:"mime"`
	Size    int64  `json:"size"`
	Seq     uint64 `json:"seq"`
}

// LogoGuard screens logo uploads and builds inline previews. Each selection
// gets a monotonically increasing sequence number so a decode finishing after
// a newer selection cannot surface a stale preview.
type LogoGuard struct {
	maxBytes int64
	seq      atomic.Uint64
}

// NewLogoGuard creates a guard; non-positive ceilings fall back to the
// default 5 MiB.
func NewLogoGuard(maxBytes int64) *LogoGuard {
	if maxBytes <= 0 {
		maxBytes = MaxLogoBytes
	}
	return &LogoGuard{maxBytes: maxBytes}
}

// MaxBytes returns the configured size ceiling.
func (g *LogoGuard) MaxBytes() int64 { return g.maxBytes }

// Select registers a new file selection and returns its sequence number.
// Previews built for earlier sequences are stale from this point on.
func (g *LogoGuard) Select() uint64 { return g.seq.Add(1) }

// Current reports whether seq still identifies the latest selection.
func (g *LogoGuard) Current(seq uint64) bool { return g.seq.Load() == seq }

// Check validates size and sniffed content type and returns the detected
// MIME type on success.
func (g *LogoGuard) Check(data []byte) (string, error) {
	if int64(len(data)) > g.maxBytes {
		return "", ErrLogoTooLarge
	}
	detected := mimetype.Detect(data)
	for _, allowed := range allowedLogoMIMEs {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}
	return "", ErrLogoBadType
}

// Decode validates data and renders the inline preview for selection seq.
// A nil preview with a nil error means the selection was superseded while
// the decode ran and the result must be discarded.
func (g *LogoGuard) Decode(seq uint64, data []byte) (*Preview, error) {
	mime, err := g.Check(data)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	if !g.Current(seq) {
		return nil, nil
	}
	return &Preview{
		DataURL: fmt.Sprintf("data:%s;base64,%s", mime, encoded),
		MIME:    mime,
		Size:    int64(len(data)),
		Seq:     seq,
	}, nil
}
