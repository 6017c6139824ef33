// Package jsonv provides a strict JSON value library: parse UTF-8 text into
// an in-memory tree, inspect and mutate it through a typed value API, and
// serialize it back to text, compact or pretty.
//
// # Core Features
//
//   - Strict recursive-descent parsing with byte-position error reporting
//   - Tagged-union value model (null, bool, number, string, array, object)
//   - Verbatim number preservation: literals round-trip exactly as written
//   - Full \uXXXX escape decoding including UTF-16 surrogate pairs
//   - Compact and pretty serialization with configurable escaping
//   - Optional binary document blobs with compression (Zstd, S2, LZ4) and
//     xxHash64 checksums
//
// # Basic Usage
//
// Parsing and typed access:
//
//	v, err := jsonv.Parse(`{"name":"cpu.usage","samples":[1.5e10,2,3]}`)
//	if err != nil {
//	    return err
//	}
//
//	name, _ := v.Find("name").AsString()
//	samples, _ := v.Find("samples").AsArray()
//	first, _ := samples[0].AsNumber()
//	fmt.Println(name, first.Repr()) // cpu.usage 1.5e10
//
// Building and serializing a tree:
//
//	doc := value.NewObject(
//	    value.Member{Key: "ok", Value: value.NewBool(true)},
//	    value.Member{Key: "count", Value: value.NewInt(3)},
//	)
//	text, _ := jsonv.Stringify(doc)                       // {"ok":true,"count":3}
//	pretty, _ := jsonv.Stringify(doc, writer.WithPretty())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the parser,
// writer and blob packages, simplifying the most common use cases. For
// fine-grained control, use those packages directly.
package jsonv

import (
	"github.com/arloliu/jsonv/blob"
	"github.com/arloliu/jsonv/parser"
	"github.com/arloliu/jsonv/value"
	"github.com/arloliu/jsonv/writer"
)

// Value is the JSON node type; see the value package.
type Value = value.Value

// Member is a single (key, value) entry of an object value.
type Member = value.Member

// Number is the verbatim-text numeric payload of a number value.
type Number = value.Number

// Type identifies the active kind of a Value.
type Type = value.Type

// ParseError is the positional error returned for malformed input.
type ParseError = parser.ParseError

// Parse parses input as exactly one JSON value.
//
// Returns:
//   - *Value: Root of the parsed tree
//   - error: *ParseError with byte position and message on failure
func Parse(input string) (*Value, error) {
	return parser.Parse(input)
}

// MustParse parses input and panics on failure. The panic value is the
// *ParseError, whose message includes the byte position.
func MustParse(input string) *Value {
	v, err := parser.Parse(input)
	if err != nil {
		panic(err)
	}

	return v
}

// Validate reports whether input parses as exactly one JSON value.
func Validate(input string) bool {
	return parser.Validate(input)
}

// Stringify serializes v to JSON text. By default the output is compact;
// pass writer options to change the layout:
//
//	text, err := jsonv.Stringify(v, writer.WithPretty(), writer.WithIndent(4))
func Stringify(v *Value, opts ...writer.Option) (string, error) {
	return writer.Stringify(v, opts...)
}

// EncodeBlob frames v into a compressed, checksummed binary document blob.
func EncodeBlob(v *Value, opts ...blob.Option) ([]byte, error) {
	return blob.Encode(v, opts...)
}

// DecodeBlob validates a document blob and parses the contained JSON text.
func DecodeBlob(data []byte) (*Value, error) {
	return blob.Decode(data)
}
