package section

import (
	"github.com/arloliu/jsonv/endian"
	"github.com/arloliu/jsonv/errs"
	"github.com/arloliu/jsonv/format"
)

// HeaderSize is the fixed size of an encoded document blob header in bytes.
const HeaderSize = 16

const (
	// MagicDocV1Opt is the flag word of a v1 document blob with all option
	// bits clear. Bits 4-15 are the magic number, bits 0-3 are options.
	MagicDocV1Opt uint16 = 0xD010

	// MagicMask selects the magic number bits of the flag word.
	MagicMask uint16 = 0xFFF0

	// EndianMask selects the endianness bit. 0 means little-endian fields,
	// 1 means big-endian fields.
	EndianMask uint16 = 0x0001
)

// DocFlag is the packed flag word at the start of a document blob header.
//
// Bit 0 is the endianness flag for the header's multi-byte fields.
// Bits 1-3 are reserved and must be zero.
// Bits 4-15 are the magic number identifying the blob format version.
//
// The flag word itself is always encoded little-endian so it can be read
// before the endianness of the remaining fields is known.
type DocFlag struct {
	Options uint16
}

// NewDocFlag creates a v1 flag word with little-endian fields.
func NewDocFlag() DocFlag {
	return DocFlag{Options: MagicDocV1Opt}
}

// HasValidMagic reports whether the magic bits identify a v1 document blob.
func (f DocFlag) HasValidMagic() bool {
	return f.Options&MagicMask == MagicDocV1Opt&MagicMask
}

// IsLittleEndian reports whether the header's multi-byte fields are
// little-endian.
func (f DocFlag) IsLittleEndian() bool {
	return f.Options&EndianMask == 0
}

// WithLittleEndian marks the header fields as little-endian.
func (f *DocFlag) WithLittleEndian() {
	f.Options &^= EndianMask
}

// WithBigEndian marks the header fields as big-endian.
func (f *DocFlag) WithBigEndian() {
	f.Options |= EndianMask
}

// GetEndianEngine returns the engine matching the endianness flag.
func (f DocFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// DocHeader is the decoded form of a document blob header.
//
// Encoded layout (16 bytes):
//
//	[0:2]   flag word (always little-endian)
//	[2]     compression type
//	[3]     reserved, must be zero
//	[4:8]   uncompressed text length (flag endianness)
//	[8:16]  xxHash64 checksum of the uncompressed text (flag endianness)
type DocHeader struct {
	Flag        DocFlag
	Compression format.CompressionType
	TextLength  uint32
	Checksum    uint64
}

// NewDocHeader creates a v1 header with little-endian fields and no
// compression.
func NewDocHeader() *DocHeader {
	return &DocHeader{
		Flag:        NewDocFlag(),
		Compression: format.CompressionNone,
	}
}

// AppendTo appends the encoded header to dst and returns the extended slice.
func (h *DocHeader) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = endian.GetLittleEndianEngine().AppendUint16(dst, h.Flag.Options)
	dst = append(dst, uint8(h.Compression), 0)
	dst = engine.AppendUint32(dst, h.TextLength)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseDocHeader decodes and validates a header from the start of data.
//
// Returns:
//   - *DocHeader: Decoded header
//   - error: errs.ErrInvalidHeaderSize when data is shorter than HeaderSize,
//     errs.ErrInvalidBlobFormat on bad magic or unknown compression type
func ParseDocHeader(data []byte) (*DocHeader, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	header := &DocHeader{
		Flag: DocFlag{Options: endian.GetLittleEndianEngine().Uint16(data[0:2])},
	}
	if !header.Flag.HasValidMagic() {
		return nil, errs.ErrInvalidBlobFormat
	}

	header.Compression = format.CompressionType(data[2])
	if !header.Compression.IsValid() {
		return nil, errs.ErrInvalidBlobFormat
	}

	engine := header.Flag.GetEndianEngine()
	header.TextLength = engine.Uint32(data[4:8])
	header.Checksum = engine.Uint64(data[8:16])

	return header, nil
}
