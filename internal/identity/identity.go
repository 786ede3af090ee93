// Package identity computes the stable content key that identifies one job
// posting across scrapes. The same function serves both in-batch
// deduplication and the storage conflict target, so a record can never
// dedup under one key and upsert under another.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/jonathan/jobmarket/internal/textnorm"
)

// fieldSeparator joins the key fields. A control byte that cannot occur in
// normalized text prevents field-boundary collisions ("AB"+"C" vs "A"+"BC").
const fieldSeparator = "\x1f"

// ComputeKey derives the identity key from a record's core fields. Fields
// are whitespace-normalized and lower-cased before hashing, so two records
// that differ only in casing or spacing are the same job.
func ComputeKey(title, companyName, location, sourcePlatform string) string {
	fields := []string{
		strings.ToLower(textnorm.NormalizeWhitespace(title)),
		strings.ToLower(textnorm.NormalizeWhitespace(companyName)),
		strings.ToLower(textnorm.NormalizeWhitespace(location)),
		strings.ToLower(textnorm.NormalizeWhitespace(sourcePlatform)),
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, fieldSeparator)))
	return hex.EncodeToString(sum[:])
}
