package utils

import (
	"crypto/sha256"
	"fmt"
	"io"
)

// ContentHash is the hex sha256 of everything read from r, used as an ETag.
func ContentHash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("ContentHash: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
