package compress

// NoOpCompressor is a no-operation codec that passes data through without
// compression. Useful for small documents where framing overhead would
// exceed any compression gain, and as a baseline in benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying. The same
// aliasing note as Compress applies.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
