package cis2

import (
	"bytes"
	"errors"
	"net/url"

	"github.com/minio/sha256-simd"

	"github.com/blockberries/ciscodec/pkg/serial"
)

// ChecksumSize is the size of a metadata checksum.
const ChecksumSize = sha256.Size

var (
	// ErrNoChecksum indicates metadata without a checksum.
	ErrNoChecksum = errors.New("cis2: metadata has no checksum")

	// ErrChecksumMismatch indicates metadata content that does not hash to
	// the advertised checksum.
	ErrChecksumMismatch = errors.New("cis2: metadata checksum mismatch")
)

// TokenMetadataUrl locates the metadata of a token. Checksum, when set, is
// the SHA-256 of the document at URL.
type TokenMetadataUrl struct {
	URL      string
	Checksum *[ChecksumSize]byte
}

// NewTokenMetadataUrl creates a TokenMetadataUrl with a checksum computed
// over content, or without one when content is nil.
func NewTokenMetadataUrl(rawURL string, content []byte) TokenMetadataUrl {
	m := TokenMetadataUrl{URL: rawURL}
	if content != nil {
		sum := sha256.Sum256(content)
		m.Checksum = &sum
	}
	return m
}

// Parse parses URL.
func (m TokenMetadataUrl) Parse() (*url.URL, error) {
	return url.Parse(m.URL)
}

// VerifyChecksum checks content against the checksum. It fails with
// ErrNoChecksum when there is none.
func (m TokenMetadataUrl) VerifyChecksum(content []byte) error {
	if m.Checksum == nil {
		return ErrNoChecksum
	}
	sum := sha256.Sum256(content)
	if !bytes.Equal(sum[:], m.Checksum[:]) {
		return ErrChecksumMismatch
	}
	return nil
}

// Serialize writes the URL with a 2-byte length prefix, then a presence
// flag and the checksum if present.
func (m TokenMetadataUrl) Serialize(w *serial.Writer) {
	w.WriteString(m.URL, serial.Prefix16)
	w.WriteBool(m.Checksum != nil)
	if m.Checksum != nil {
		w.WriteRaw(m.Checksum[:])
	}
}

// ReadTokenMetadataUrl reads a TokenMetadataUrl.
func ReadTokenMetadataUrl(r *serial.Reader) TokenMetadataUrl {
	var m TokenMetadataUrl
	m.URL = r.ReadString(serial.Prefix16)
	if !r.ReadBool() {
		return m
	}
	var sum [ChecksumSize]byte
	if n := copy(sum[:], r.ReadRaw(ChecksumSize)); n == ChecksumSize {
		m.Checksum = &sum
	}
	return m
}
