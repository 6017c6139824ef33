package compress

// ZstdCompressor provides Zstandard compression, the default codec for
// stored JSON document blobs.
//
// Zstd gives the best compression ratio of the supported codecs on JSON
// text, at moderate compression cost and fast decompression. Prefer it when
// storage or bandwidth matters more than encode latency.
//
// Two implementations exist behind build tags: a pure-Go one based on
// klauspost/compress and a cgo one based on valyala/gozstd. Both produce
// interchangeable Zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
