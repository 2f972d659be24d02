package locker

import (
	"crypto/sha256"
	"fmt"
	"os"
)

// HashBytes computes the SHA256 hash of a byte slice.
func HashBytes(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("sha256:%x", h)
}

// Checksum hashes the locker file as it is on disk.
func (s *Store) Checksum() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return HashBytes(data), nil
}
