package serial

import "fmt"

// PrefixWidth is the byte width of a little-endian length or count prefix.
// The width is fixed per field by the standard that defines the message.
type PrefixWidth uint8

// Prefix widths used by the CIS standards.
const (
	Prefix8  PrefixWidth = 1
	Prefix16 PrefixWidth = 2
	Prefix32 PrefixWidth = 4
)

// Max returns the largest length representable by the prefix.
func (p PrefixWidth) Max() uint64 {
	switch p {
	case Prefix8:
		return 0xFF
	case Prefix16:
		return 0xFFFF
	case Prefix32:
		return 0xFFFFFFFF
	default:
		return 0
	}
}

// IsValid returns true if the prefix width is known.
func (p PrefixWidth) IsValid() bool {
	switch p {
	case Prefix8, Prefix16, Prefix32:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the prefix width.
func (p PrefixWidth) String() string {
	switch p {
	case Prefix8:
		return "u8"
	case Prefix16:
		return "u16"
	case Prefix32:
		return "u32"
	default:
		return fmt.Sprintf("PrefixWidth(%d)", uint8(p))
	}
}

// Limits defines resource limits for decoding untrusted input.
// Wire-format bounds (a u16 count never exceeds 65535) always apply;
// these limits can only tighten them.
type Limits struct {
	// MaxMessageSize is the maximum total message size in bytes.
	// A value of 0 means no limit.
	MaxMessageSize int

	// MaxListLength is the maximum number of elements in a decoded list.
	// A value of 0 means no limit.
	MaxListLength int

	// MaxBytesLength is the maximum length of a decoded byte string.
	// A value of 0 means no limit.
	MaxBytesLength int
}

// DefaultLimits allow every message the wire format can express.
var DefaultLimits = Limits{
	MaxMessageSize: 16 * 1024 * 1024, // 16 MB
}

// SecureLimits are conservative limits for responses from untrusted nodes.
var SecureLimits = Limits{
	MaxMessageSize: 1024 * 1024, // 1 MB
	MaxListLength:  4096,
	MaxBytesLength: 64 * 1024,
}

// NoLimits disables all resource limits.
var NoLimits = Limits{}

// Options configures encoding/decoding behavior.
type Options struct {
	// Limits specifies resource limits.
	Limits Limits

	// ValidateUTF8 validates that decoded strings are valid UTF-8.
	ValidateUTF8 bool
}

// DefaultOptions are the default encoding/decoding options.
var DefaultOptions = Options{
	Limits:       DefaultLimits,
	ValidateUTF8: true,
}

// SecureOptions are conservative options for untrusted input.
var SecureOptions = Options{
	Limits:       SecureLimits,
	ValidateUTF8: true,
}

// Version information, set by ldflags at build time.
var (
	// Version is the semantic version of the library.
	Version = "dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"
)

// VersionInfo returns a formatted version string.
func VersionInfo() string {
	return Version + " (" + GitCommit + ")"
}
