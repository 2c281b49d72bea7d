// Package util holds small cross-cutting helpers; it carries no DICOM domain
// logic. The CLI uses NewRunID; the parsing packages do not import it.
package util

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

// Md5ThenHex hex-encodes the MD5 digest of value, used to derive a stable,
// short fingerprint for log correlation without pulling the full payload
// into a log line.
func Md5ThenHex(value []byte) string {
	hasher := md5.New()
	hasher.Write(value)
	return hex.EncodeToString(hasher.Sum(nil))
}

// ContentUUID deterministically derives a UUID from the JSON encoding of
// value, so that two identical inputs (e.g. two Scans assembled from the
// same directory) are logged under the same identifier. Returns "" if value
// cannot be marshaled.
func ContentUUID(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	hash := md5.Sum(raw)
	id, err := uuid.FromBytes(hash[:16])
	if err != nil {
		return ""
	}
	return id.String()
}

// NewRunID returns a fresh random UUID identifying one CLI invocation, used
// to correlate log lines emitted by the concurrent per-file parses that make
// up a single scan/hu/roundtrip command.
func NewRunID() string {
	return uuid.NewString()
}
