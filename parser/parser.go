package parser

import (
	"unicode/utf8"

	"github.com/arloliu/jsonv/value"
)

// MaxDepth is the maximum nesting depth of arrays and objects. Inputs nested
// deeper fail with a ParseError instead of exhausting the goroutine stack.
const MaxDepth = 512

// Parse parses input as exactly one JSON value.
//
// Parameters:
//   - input: UTF-8 JSON text
//
// Returns:
//   - *value.Value: Root of the parsed tree
//   - error: *ParseError with byte position and message on failure
func Parse(input string) (*value.Value, error) {
	p := &parser{src: input}
	p.skipWhitespace()

	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()
	if p.pos < len(p.src) {
		return nil, p.fail("Trailing characters after JSON value")
	}

	return v, nil
}

// Validate reports whether input parses as exactly one JSON value. The
// parsed tree is discarded.
func Validate(input string) bool {
	_, err := Parse(input)
	return err == nil
}

type parser struct {
	src string
	pos int
}

// fail creates a ParseError at the current cursor position.
func (p *parser) fail(message string) error {
	return &ParseError{Pos: p.pos, Message: message}
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// peek returns the byte at the cursor without consuming it. ok is false at
// end of input.
func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}

	return p.src[p.pos], true
}

func (p *parser) parseValue(depth int) (*value.Value, error) {
	if depth >= MaxDepth {
		return nil, p.fail("Maximum nesting depth exceeded")
	}

	c, ok := p.peek()
	if !ok {
		return nil, p.fail("Unexpected end of input")
	}

	switch {
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return value.NewString(s), nil
	case c == 'n':
		return p.parseLiteral("null", value.NewNull())
	case c == 't':
		return p.parseLiteral("true", value.NewBool(true))
	case c == 'f':
		return p.parseLiteral("false", value.NewBool(false))
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.fail("Unexpected character")
	}
}

// parseLiteral matches lit as an exact substring at the cursor.
func (p *parser) parseLiteral(lit string, v *value.Value) (*value.Value, error) {
	if len(p.src)-p.pos < len(lit) || p.src[p.pos:p.pos+len(lit)] != lit {
		return nil, p.fail("Invalid literal")
	}
	p.pos += len(lit)

	return v, nil
}

// parseNumber matches -? (0 | [1-9][0-9]*) frac? exp? and stores the matched
// substring verbatim; no numeric evaluation happens here.
func (p *parser) parseNumber() (*value.Value, error) {
	start := p.pos

	if c, ok := p.peek(); ok && c == '-' {
		p.pos++
	}

	c, ok := p.peek()
	switch {
	case !ok:
		return nil, p.fail("Invalid number format")
	case c == '0':
		p.pos++
	case c >= '1' && c <= '9':
		p.consumeDigits()
	default:
		return nil, p.fail("Invalid number format")
	}

	if c, ok := p.peek(); ok && c == '.' {
		p.pos++
		if !p.consumeDigits() {
			return nil, p.fail("Invalid fraction format")
		}
	}

	if c, ok := p.peek(); ok && (c == 'e' || c == 'E') {
		p.pos++
		if c, ok := p.peek(); ok && (c == '+' || c == '-') {
			p.pos++
		}
		if !p.consumeDigits() {
			return nil, p.fail("Invalid exponent format")
		}
	}

	return value.NewNumber(p.src[start:p.pos]), nil
}

// consumeDigits advances past a run of ASCII digits and reports whether at
// least one digit was consumed.
func (p *parser) consumeDigits() bool {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}

	return p.pos > start
}

func (p *parser) parseArray(depth int) (*value.Value, error) {
	p.pos++ // consume '['
	p.skipWhitespace()

	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return value.NewArray(), nil
	}

	var elems []*value.Value
	for {
		elem, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		p.skipWhitespace()
		c, ok := p.peek()
		switch {
		case !ok:
			return nil, p.fail("Expected ',' between array elements")
		case c == ',':
			p.pos++
			p.skipWhitespace()
		case c == ']':
			p.pos++
			return value.NewArray(elems...), nil
		default:
			return nil, p.fail("Expected ',' between array elements")
		}
	}
}

func (p *parser) parseObject(depth int) (*value.Value, error) {
	p.pos++ // consume '{'
	p.skipWhitespace()

	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return value.NewObject(), nil
	}

	var members []value.Member
	for {
		if c, ok := p.peek(); !ok || c != '"' {
			return nil, p.fail("Expected '\"' for object key")
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()
		if c, ok := p.peek(); !ok || c != ':' {
			return nil, p.fail("Expected ':' after object key")
		}
		p.pos++
		p.skipWhitespace()

		child, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		members = append(members, value.Member{Key: key, Value: child})

		p.skipWhitespace()
		c, ok := p.peek()
		switch {
		case !ok:
			return nil, p.fail("Expected ',' between object members")
		case c == ',':
			p.pos++
			p.skipWhitespace()
		case c == '}':
			p.pos++
			return value.NewObject(members...), nil
		default:
			return nil, p.fail("Expected ',' between object members")
		}
	}
}

// parseString consumes a quoted string starting at the cursor and returns
// its decoded content. Escapes are resolved; \uXXXX escapes are re-encoded
// as UTF-8.
func (p *parser) parseString() (string, error) {
	p.pos++ // consume opening '"'

	var buf []byte
	for {
		c, ok := p.peek()
		switch {
		case !ok:
			return "", p.fail("Unterminated string")
		case c == '"':
			p.pos++
			return string(buf), nil
		case c == '\\':
			decoded, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			buf = append(buf, decoded...)
		case c < 0x20:
			return "", p.fail("Control character in string")
		default:
			// Multi-byte UTF-8 sequences pass through byte by byte.
			buf = append(buf, c)
			p.pos++
		}
	}
}

// parseEscape consumes a backslash escape and returns its decoded bytes.
func (p *parser) parseEscape() ([]byte, error) {
	p.pos++ // consume '\'

	c, ok := p.peek()
	if !ok {
		return nil, p.fail("Unterminated escape sequence")
	}

	switch c {
	case '"', '\\', '/':
		p.pos++
		return []byte{c}, nil
	case 'b':
		p.pos++
		return []byte{'\b'}, nil
	case 'f':
		p.pos++
		return []byte{'\f'}, nil
	case 'n':
		p.pos++
		return []byte{'\n'}, nil
	case 'r':
		p.pos++
		return []byte{'\r'}, nil
	case 't':
		p.pos++
		return []byte{'\t'}, nil
	case 'u':
		p.pos++
		return p.parseUnicodeEscape()
	default:
		return nil, p.fail("Invalid escape sequence")
	}
}

// parseUnicodeEscape decodes the XXXX of a \uXXXX escape, pairing UTF-16
// surrogates, and returns the code point encoded as 1-4 bytes of UTF-8.
// The leading \u has already been consumed.
func (p *parser) parseUnicodeEscape() ([]byte, error) {
	cp, err := p.parseHex4()
	if err != nil {
		return nil, err
	}

	if cp >= 0xD800 && cp <= 0xDBFF {
		// High surrogate: a \u-escaped low surrogate must follow.
		if len(p.src)-p.pos < 2 || p.src[p.pos] != '\\' || p.src[p.pos+1] != 'u' {
			return nil, p.fail("Missing low surrogate for unicode escape")
		}
		p.pos += 2

		low, err := p.parseHex4()
		if err != nil {
			return nil, err
		}
		if low < 0xDC00 || low > 0xDFFF {
			return nil, p.fail("Invalid low surrogate in unicode escape")
		}
		cp = 0x10000 + ((cp - 0xD800) << 10) + (low - 0xDC00)
	}

	if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return nil, p.fail("Invalid unicode codepoint")
	}

	return utf8.AppendRune(nil, rune(cp)), nil
}

// parseHex4 consumes exactly four hex digits.
func (p *parser) parseHex4() (uint32, error) {
	if len(p.src)-p.pos < 4 {
		return 0, p.fail("Invalid hex in unicode escape")
	}

	var cp uint32
	for i := 0; i < 4; i++ {
		c := p.src[p.pos]
		switch {
		case c >= '0' && c <= '9':
			cp = cp<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			cp = cp<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			cp = cp<<4 | uint32(c-'A'+10)
		default:
			return 0, p.fail("Invalid hex in unicode escape")
		}
		p.pos++
	}

	return cp, nil
}
