package chain

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
)

// ErrInvalidChecksum indicates a base58check string whose checksum does not
// match its payload.
var ErrInvalidChecksum = errors.New("chain: invalid base58check checksum")

const checksumSize = 4

func checksum(versioned []byte) []byte {
	first := sha256.Sum256(versioned)
	second := sha256.Sum256(first[:])
	return second[:checksumSize]
}

// EncodeBase58Check encodes version||payload followed by the first four
// bytes of its double SHA-256.
func EncodeBase58Check(version byte, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload)+checksumSize)
	buf = append(buf, version)
	buf = append(buf, payload...)
	buf = append(buf, checksum(buf)...)
	return base58.Encode(buf)
}

// DecodeBase58Check decodes a base58check string into its version byte and
// payload, verifying the checksum.
func DecodeBase58Check(s string) (byte, []byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return 0, nil, fmt.Errorf("chain: invalid base58 string: %w", err)
	}
	if len(raw) < 1+checksumSize {
		return 0, nil, fmt.Errorf("chain: base58check string too short (%d bytes)", len(raw))
	}
	body, sum := raw[:len(raw)-checksumSize], raw[len(raw)-checksumSize:]
	if !bytes.Equal(checksum(body), sum) {
		return 0, nil, ErrInvalidChecksum
	}
	return body[0], body[1:], nil
}
