// Package digest provides a checksum representation.
package digest

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Algorithm describes the digest algorithm.
type Algorithm int

const (
	_ Algorithm = iota
	// SHA256 is the sha256 algorithm
	SHA256
)

// String returns the textual representation.
func (t Algorithm) String() string {
	switch t {
	case SHA256:
		return "sha256"
	default:
		return "undefined"
	}
}

// Digest contains a checksum.
type Digest struct {
	Sum       []byte
	Algorithm Algorithm
}

// String returns '<Algorithm>:<hash>'.
func (d *Digest) String() string {
	return fmt.Sprintf("%s:%s", d.Algorithm, hex.EncodeToString(d.Sum))
}

// Equal returns true if both digests use the same algorithm and have the same
// sum.
func (d *Digest) Equal(other *Digest) bool {
	return d.Algorithm == other.Algorithm && bytes.Equal(d.Sum, other.Sum)
}

// FromString converts a '<Algorithm>:<hash>' string to a Digest.
func FromString(in string) (*Digest, error) {
	var algorithm Algorithm

	spl := strings.Split(strings.TrimSpace(in), ":")
	if len(spl) != 2 {
		return nil, errors.New("invalid format, must contain exactly 1 ':'")
	}

	switch a := strings.ToLower(spl[0]); a {
	case "sha256":
		if len(spl[1]) != 64 {
			return nil, fmt.Errorf("hash length is %d, expected length 64", len(spl[1]))
		}

		algorithm = SHA256
	default:
		return nil, fmt.Errorf("unsupported format %q", a)
	}

	sum, err := hex.DecodeString(spl[1])
	if err != nil {
		return nil, fmt.Errorf("converting string sum to hex failed: %w", err)
	}

	return &Digest{
		Sum:       sum,
		Algorithm: algorithm,
	}, nil
}
