package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefixes for content hashes. The version suffix allows the
// hashing scheme to change without colliding with old entries.
const (
	DomainSource = "tryexpand/source/v1"
	DomainOutput = "tryexpand/output/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null separator keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// SourceHash hashes the contents of a directive source.
func SourceHash(src []byte) string {
	return hashWithDomain(DomainSource, src)
}

// OutputHash hashes generated output.
func OutputHash(out []byte) string {
	return hashWithDomain(DomainOutput, out)
}
