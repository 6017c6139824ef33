// Package compress provides compression and decompression codecs for JSON
// document blob payloads.
//
// Compression applies to the compact serialized text of a document before it
// is framed into a blob. JSON text compresses well: keys repeat, structure
// repeats, and the payload is pure ASCII-heavy UTF-8.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through, for already-small or
//     incompressible documents
//   - Zstd (format.CompressionZstd): best ratio, moderate speed; the default
//     for stored documents
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(text)
//
// All codecs are stateless value types; pooled encoder/decoder instances are
// managed internally, so codecs are safe for concurrent use.
package compress
