package store

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"highways/internal/domain"
	"highways/internal/network"
)

// Fingerprint returns a short hex digest of reg's canonical encoding.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
// Two registries that would save to the same file share a fingerprint.
func Fingerprint(reg *network.Registry) domain.Fingerprint {
	var buf bytes.Buffer
	_ = Encode(&buf, reg) // writes to a bytes.Buffer cannot fail
	sum := blake2b.Sum256(buf.Bytes())
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
