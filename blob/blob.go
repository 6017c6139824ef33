package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/jsonv/compress"
	"github.com/arloliu/jsonv/errs"
	"github.com/arloliu/jsonv/format"
	"github.com/arloliu/jsonv/internal/hash"
	"github.com/arloliu/jsonv/internal/options"
	"github.com/arloliu/jsonv/parser"
	"github.com/arloliu/jsonv/section"
	"github.com/arloliu/jsonv/value"
	"github.com/arloliu/jsonv/writer"
)

// Config holds document blob encoding settings.
type Config struct {
	compression format.CompressionType
	bigEndian   bool
}

// Option is a functional option for Encode.
type Option = options.Option[*Config]

// WithCompression sets the payload compression type.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if !compressionType.IsValid() {
			return fmt.Errorf("invalid compression type: %s", compressionType)
		}
		c.compression = compressionType

		return nil
	})
}

// WithBigEndian encodes the header's multi-byte fields big-endian, for
// interoperability with big-endian consumers.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = true
	})
}

// WithLittleEndian encodes the header's multi-byte fields little-endian.
// This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = false
	})
}

// Encode serializes v compactly, compresses the text and frames it into a
// document blob.
//
// Parameters:
//   - v: Root of the value tree
//   - opts: Blob options; compression defaults to Zstd
//
// Returns:
//   - []byte: Encoded blob, owned by the caller
//   - error: Option validation, serialization or compression error
func Encode(v *value.Value, opts ...Option) ([]byte, error) {
	cfg := Config{compression: format.CompressionZstd}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	text, err := writer.Stringify(v)
	if err != nil {
		return nil, err
	}
	if len(text) > math.MaxUint32 {
		return nil, fmt.Errorf("document text length %d exceeds blob limit", len(text))
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("compress document payload: %w", err)
	}

	header := section.NewDocHeader()
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Compression = cfg.compression
	header.TextLength = uint32(len(text))
	header.Checksum = hash.ChecksumString(text)

	out := make([]byte, 0, section.HeaderSize+len(payload))
	out = header.AppendTo(out)
	out = append(out, payload...)

	return out, nil
}

// Decode validates a document blob and parses the contained JSON text back
// into a value tree.
//
// Returns:
//   - *value.Value: Root of the decoded tree
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidBlobFormat,
//     errs.ErrLengthMismatch, errs.ErrChecksumMismatch, a decompression
//     error, or a parse error for malformed contained text
func Decode(data []byte) (*value.Value, error) {
	text, err := Text(data)
	if err != nil {
		return nil, err
	}

	return parser.Parse(text)
}

// Text validates a document blob and returns the contained JSON text
// without parsing it.
func Text(data []byte) (string, error) {
	header, err := section.ParseDocHeader(data)
	if err != nil {
		return "", err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return "", err
	}

	text, err := codec.Decompress(data[section.HeaderSize:])
	if err != nil {
		return "", fmt.Errorf("decompress document payload: %w", err)
	}

	if len(text) != int(header.TextLength) {
		return "", errs.ErrLengthMismatch
	}
	if hash.Checksum(text) != header.Checksum {
		return "", errs.ErrChecksumMismatch
	}

	return string(text), nil
}
