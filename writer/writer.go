package writer

import (
	"fmt"

	"github.com/arloliu/jsonv/internal/options"
	"github.com/arloliu/jsonv/internal/pool"
	"github.com/arloliu/jsonv/value"
)

// DefaultIndent is the number of spaces per nesting level in pretty mode.
const DefaultIndent = 2

// Config holds serializer settings. Use the WithX options to change them.
type Config struct {
	pretty        bool
	indent        int
	escapeSolidus bool
}

// Option is a functional option for the serializer.
type Option = options.Option[*Config]

// WithPretty enables pretty mode: newlines, per-depth indentation and a
// space after object key colons.
func WithPretty() Option {
	return options.NoError(func(c *Config) {
		c.pretty = true
	})
}

// WithIndent sets the number of spaces per nesting level in pretty mode.
// It has no effect unless WithPretty is also applied.
func WithIndent(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("indent must not be negative, got %d", n)
		}
		c.indent = n

		return nil
	})
}

// WithEscapeSolidus escapes '/' as \/ in strings, for consumers that embed
// JSON inside HTML <script> blocks.
func WithEscapeSolidus() Option {
	return options.NoError(func(c *Config) {
		c.escapeSolidus = true
	})
}

// Stringify serializes v to JSON text.
//
// Parameters:
//   - v: Root of the value tree; nil serializes as null
//   - opts: Serializer options (pretty, indent, escape solidus)
//
// Returns:
//   - string: Serialized JSON text
//   - error: Option validation error if any
func Stringify(v *value.Value, opts ...Option) (string, error) {
	cfg := Config{indent: DefaultIndent}
	if err := options.Apply(&cfg, opts...); err != nil {
		return "", err
	}

	buf := pool.GetDocBuffer()
	defer pool.PutDocBuffer(buf)

	w := writer{cfg: cfg, buf: buf}
	w.writeValue(v, 0)

	return buf.String(), nil
}

// AppendTo serializes v and appends the text to dst, returning the extended
// slice. It shares all layout rules with Stringify.
func AppendTo(dst []byte, v *value.Value, opts ...Option) ([]byte, error) {
	cfg := Config{indent: DefaultIndent}
	if err := options.Apply(&cfg, opts...); err != nil {
		return dst, err
	}

	w := writer{cfg: cfg, buf: &pool.ByteBuffer{B: dst}}
	w.writeValue(v, 0)

	return w.buf.B, nil
}

type writer struct {
	cfg Config
	buf *pool.ByteBuffer
}

func (w *writer) writeValue(v *value.Value, depth int) {
	if v == nil {
		w.buf.AppendString("null")
		return
	}

	switch v.Type() {
	case value.TypeNull:
		w.buf.AppendString("null")
	case value.TypeBool:
		if v.BoolOr(false) {
			w.buf.AppendString("true")
		} else {
			w.buf.AppendString("false")
		}
	case value.TypeNumber:
		n, _ := v.AsNumber()
		w.buf.AppendString(n.Repr())
	case value.TypeString:
		s, _ := v.AsString()
		w.writeString(s)
	case value.TypeArray:
		w.writeArray(v, depth)
	case value.TypeObject:
		w.writeObject(v, depth)
	}
}

func (w *writer) writeArray(v *value.Value, depth int) {
	elems, _ := v.AsArray()
	if len(elems) == 0 {
		w.buf.AppendString("[]")
		return
	}

	w.buf.AppendByte('[')
	for i, elem := range elems {
		if i > 0 {
			w.buf.AppendByte(',')
		}
		w.newlineIndent(depth + 1)
		w.writeValue(elem, depth+1)
	}
	w.newlineIndent(depth)
	w.buf.AppendByte(']')
}

func (w *writer) writeObject(v *value.Value, depth int) {
	members, _ := v.AsObject()
	if len(members) == 0 {
		w.buf.AppendString("{}")
		return
	}

	w.buf.AppendByte('{')
	for i, m := range members {
		if i > 0 {
			w.buf.AppendByte(',')
		}
		w.newlineIndent(depth + 1)
		w.writeString(m.Key)
		w.buf.AppendByte(':')
		if w.cfg.pretty {
			w.buf.AppendByte(' ')
		}
		w.writeValue(m.Value, depth+1)
	}
	w.newlineIndent(depth)
	w.buf.AppendByte('}')
}

// newlineIndent writes a newline plus depth levels of indentation in pretty
// mode, and nothing in compact mode.
func (w *writer) newlineIndent(depth int) {
	if !w.cfg.pretty {
		return
	}

	w.buf.AppendByte('\n')
	w.buf.Grow(depth * w.cfg.indent)
	for i := 0; i < depth*w.cfg.indent; i++ {
		w.buf.AppendByte(' ')
	}
}

const hexDigits = "0123456789abcdef"

// writeString writes s double-quoted with JSON escaping. Bytes outside the
// escape set pass through unchanged, including multi-byte UTF-8 sequences.
func (w *writer) writeString(s string) {
	w.buf.AppendByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			w.buf.AppendString(`\"`)
		case '\\':
			w.buf.AppendString(`\\`)
		case '\b':
			w.buf.AppendString(`\b`)
		case '\f':
			w.buf.AppendString(`\f`)
		case '\n':
			w.buf.AppendString(`\n`)
		case '\r':
			w.buf.AppendString(`\r`)
		case '\t':
			w.buf.AppendString(`\t`)
		case '/':
			if w.cfg.escapeSolidus {
				w.buf.AppendString(`\/`)
			} else {
				w.buf.AppendByte('/')
			}
		default:
			if c < 0x20 {
				w.buf.AppendString(`\u00`)
				w.buf.AppendByte(hexDigits[c>>4])
				w.buf.AppendByte(hexDigits[c&0x0F])
			} else {
				w.buf.AppendByte(c)
			}
		}
	}
	w.buf.AppendByte('"')
}
