// Package section defines the fixed binary layout of document blob headers.
//
// A document blob is a 16-byte header followed by the (optionally
// compressed) compact JSON text. The header records a magic number, the byte
// order of its multi-byte fields, the payload compression type, the
// uncompressed text length, and an xxHash64 checksum of the text.
package section
