package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given bytes. Document blobs store
// this checksum of the uncompressed JSON text to detect corruption.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ChecksumString computes the xxHash64 of the given string without copying.
func ChecksumString(data string) uint64 {
	return xxhash.Sum64String(data)
}
