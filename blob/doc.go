// Package blob frames JSON documents into a compact binary container for
// storage and transport.
//
// A blob is a fixed 16-byte header (see the section package) followed by the
// document's compact serialization, compressed with one of the codecs from
// the compress package. The header carries an xxHash64 checksum of the
// uncompressed text, so corruption is detected before the text is re-parsed.
//
// # Usage
//
//	data, err := blob.Encode(v, blob.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//
//	v, err := blob.Decode(data)
//
// Encode and Decode are pure functions over their inputs and safe for
// concurrent use.
package blob
