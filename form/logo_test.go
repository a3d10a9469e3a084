package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func fakeImage(header []byte, size int) []byte {
	data := make([]byte, size)
	copy(data, header)
	return data
}

func TestLogoGuardRejectsOversizedFile(t *testing.T) {
	g := NewLogoGuard(0)

	_, err := g.Check(fakeImage(pngHeader, 6*1024*1024))
	assert.ErrorIs(t, err, ErrLogoTooLarge)
}

func TestLogoGuardRejectsDisallowedType(t *testing.T) {
	g := NewLogoGuard(0)

	bmp := fakeImage([]byte("BM"), 1024*1024)
	_, err := g.Check(bmp)
	assert.ErrorIs(t, err, ErrLogoBadType)

	// Plain text disguised with an image extension is still text.
	_, err = g.Check([]byte(strings.Repeat("definitely not an image ", 10)))
	assert.ErrorIs(t, err, ErrLogoBadType)
}

func TestLogoGuardAcceptsAllowedTypes(t *testing.T) {
	g := NewLogoGuard(0)

	tests := []struct {
		name   string
		header []byte
		want   string
	}{
		{"png", pngHeader, "image/png"},
		{"gif", []byte("GIF89a"), "image/gif"},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, "image/jpeg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mime, err := g.Check(fakeImage(tc.header, 1024*1024))
			require.NoError(t, err)
			assert.Equal(t, tc.want, mime)
		})
	}
}

func TestLogoGuardDecodeBuildsDataURL(t *testing.T) {
	g := NewLogoGuard(0)

	seq := g.Select()
	preview, err := g.Decode(seq, fakeImage(pngHeader, 64))
	require.NoError(t, err)
	require.NotNil(t, preview)
	assert.True(t, strings.HasPrefix(preview.DataURL, "data:image/png;base64,"))
	assert.Equal(t, int64(64), preview.Size)
	assert.Equal(t, seq, preview.Seq)
}

func TestLogoGuardDiscardsStalePreview(t *testing.T) {
	g := NewLogoGuard(0)

	stale := g.Select()
	fresh := g.Select()

	preview, err := g.Decode(stale, fakeImage(pngHeader, 64))
	require.NoError(t, err)
	assert.Nil(t, preview, "decode for a superseded selection must be discarded")

	preview, err = g.Decode(fresh, fakeImage(pngHeader, 64))
	require.NoError(t, err)
	assert.NotNil(t, preview)
}
