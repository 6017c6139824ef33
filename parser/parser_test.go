package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Literals(t *testing.T) {
	v, err := Parse("null")
	require.NoError(t, err)
	require.True(t, v.IsNull())

	v, err = Parse("true")
	require.NoError(t, err)
	require.True(t, v.BoolOr(false))

	v, err = Parse("false")
	require.NoError(t, err)
	require.False(t, v.BoolOr(true))
}

func TestParse_InvalidLiterals(t *testing.T) {
	for _, input := range []string{"nul", "nulL", "tru", "truE", "fals", "falsey"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			requireParseError(t, err, "Invalid literal")
		})
	}
}

func TestParse_LeadingTrailingWhitespace(t *testing.T) {
	v, err := Parse(" \t\r\n true \t\r\n ")
	require.NoError(t, err)
	require.True(t, v.BoolOr(false))
}

func TestParse_TrailingCharacters(t *testing.T) {
	_, err := Parse(`{"a":1} extra`)
	perr := requireParseError(t, err, "Trailing characters after JSON value")
	require.Equal(t, 8, perr.Pos)

	_, err = Parse("1 2")
	requireParseError(t, err, "Trailing characters after JSON value")
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("")
	requireParseError(t, err, "Unexpected end of input")

	_, err = Parse("   ")
	requireParseError(t, err, "Unexpected end of input")
}

func TestParse_Numbers(t *testing.T) {
	valid := []string{
		"0", "-0", "7", "-7", "42", "123456789",
		"0.5", "-0.5", "3.14159", "0.000001",
		"1e3", "1E3", "1e+3", "1e-3", "1.5e10", "-2.5E-7", "0e0",
	}
	for _, input := range valid {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			require.NoError(t, err)

			n, err := v.AsNumber()
			require.NoError(t, err)
			// The matched substring is stored verbatim
			require.Equal(t, input, n.Repr())
		})
	}
}

func TestParse_InvalidNumbers(t *testing.T) {
	testCases := []struct {
		input   string
		message string
	}{
		{input: "-", message: "Invalid number format"},
		{input: "-x", message: "Invalid number format"},
		{input: "1.", message: "Invalid fraction format"},
		{input: "1.e3", message: "Invalid fraction format"},
		{input: "1e", message: "Invalid exponent format"},
		{input: "1e+", message: "Invalid exponent format"},
		{input: "1e-", message: "Invalid exponent format"},
		{input: "1ex", message: "Invalid exponent format"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := Parse(tc.input)
			requireParseError(t, err, tc.message)
		})
	}
}

func TestParse_LeadingZeroIsSingleNumber(t *testing.T) {
	// The grammar allows either a single 0 or a nonzero-leading digit run,
	// so "0123" parses as 0 followed by trailing characters.
	_, err := Parse("0123")
	requireParseError(t, err, "Trailing characters after JSON value")
}

func TestParse_Strings(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `"hello"`, want: "hello"},
		{name: "empty", input: `""`, want: ""},
		{name: "named escapes", input: `"\"\\\/\b\f\n\r\t"`, want: "\"\\/\b\f\n\r\t"},
		{name: "embedded utf8 passthrough", input: `"héllo ♥"`, want: "héllo ♥"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Parse(tc.input)
			require.NoError(t, err)

			s, err := v.AsString()
			require.NoError(t, err)
			require.Equal(t, tc.want, s)
		})
	}
}

func TestParse_StringErrors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{name: "unterminated", input: `"abc`, message: "Unterminated string"},
		{name: "raw newline", input: "\"a\nb\"", message: "Control character in string"},
		{name: "raw control byte", input: "\"a\x01b\"", message: "Control character in string"},
		{name: "unknown escape", input: `"\x"`, message: "Invalid escape sequence"},
		{name: "eof after backslash", input: `"\`, message: "Unterminated escape sequence"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			requireParseError(t, err, tc.message)
		})
	}
}

func TestParse_UnicodeEscapes(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		want      string
		byteCount int
	}{
		{name: "one byte", input: `"\u0041"`, want: "A", byteCount: 1},
		{name: "two bytes", input: `"\u00E9"`, want: "é", byteCount: 2},
		{name: "three bytes", input: `"\u2665"`, want: "♥", byteCount: 3},
		{name: "surrogate pair four bytes", input: `"\uD834\uDD1E"`, want: "\U0001D11E", byteCount: 4},
		{name: "lowercase hex", input: `"\u00e9"`, want: "é", byteCount: 2},
		{name: "boundary 7F", input: `"\u007F"`, want: "\u007f", byteCount: 1},
		{name: "boundary 0800", input: `"\u0800"`, want: "ࠀ", byteCount: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Parse(tc.input)
			require.NoError(t, err)

			s, err := v.AsString()
			require.NoError(t, err)
			require.Equal(t, tc.want, s)
			require.Len(t, s, tc.byteCount)
		})
	}
}

func TestParse_UnicodeEscapeErrors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{name: "short hex", input: `"\u00"`, message: "Invalid hex in unicode escape"},
		{name: "bad hex digit", input: `"\u00GG"`, message: "Invalid hex in unicode escape"},
		{name: "lone high surrogate", input: `"\uD834"`, message: "Missing low surrogate for unicode escape"},
		{name: "high surrogate then text", input: `"\uD834abc"`, message: "Missing low surrogate for unicode escape"},
		{name: "high surrogate then non-u escape", input: `"\uD834\n"`, message: "Missing low surrogate for unicode escape"},
		{name: "invalid low surrogate", input: `"\uD834\u0041"`, message: "Invalid low surrogate in unicode escape"},
		{name: "lone low surrogate", input: `"\uDD1E"`, message: "Invalid unicode codepoint"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			requireParseError(t, err, tc.message)
		})
	}
}

func TestParse_Arrays(t *testing.T) {
	v, err := Parse(`[1, "two", null, true, [3]]`)
	require.NoError(t, err)

	elems, err := v.AsArray()
	require.NoError(t, err)
	require.Len(t, elems, 5)

	n, err := elems[0].AsNumber()
	require.NoError(t, err)
	require.Equal(t, "1", n.Repr())

	inner, err := elems[4].AsArray()
	require.NoError(t, err)
	require.Len(t, inner, 1)
}

func TestParse_EmptyContainers(t *testing.T) {
	v, err := Parse("[]")
	require.NoError(t, err)
	require.True(t, v.IsArray())
	require.Equal(t, 0, v.Len())

	v, err = Parse("{}")
	require.NoError(t, err)
	require.True(t, v.IsObject())
	require.Equal(t, 0, v.Len())

	v, err = Parse(" [ ] ")
	require.NoError(t, err)
	require.True(t, v.IsArray())
}

func TestParse_ArrayErrors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{name: "missing comma", input: `[1 2]`, message: "Expected ',' between array elements"},
		{name: "missing close", input: `[1, 2`, message: "Expected ',' between array elements"},
		{name: "trailing comma", input: `[1,]`, message: "Unexpected character"},
		{name: "bare comma", input: `[,]`, message: "Unexpected character"},
		{name: "eof after open", input: `[`, message: "Unexpected end of input"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			requireParseError(t, err, tc.message)
		})
	}
}

func TestParse_Objects(t *testing.T) {
	v, err := Parse(`{"a": 1, "b": {"c": [true]}, "a": 2}`)
	require.NoError(t, err)

	members, err := v.AsObject()
	require.NoError(t, err)
	require.Len(t, members, 3)

	// Insertion order preserved, duplicate keys coexist, first match wins
	require.Equal(t, "a", members[0].Key)
	require.Equal(t, "b", members[1].Key)
	require.Equal(t, "a", members[2].Key)

	n, err := v.Find("a").AsNumber()
	require.NoError(t, err)
	require.Equal(t, "1", n.Repr())

	inner := v.Find("b").Find("c")
	require.NotNil(t, inner)
	require.True(t, inner.IsArray())
}

func TestParse_ObjectKeyEscapes(t *testing.T) {
	v, err := Parse(`{"A": 1}`)
	require.NoError(t, err)
	require.NotNil(t, v.Find("A"))
}

func TestParse_ObjectErrors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{name: "unquoted key", input: `{a: 1}`, message: "Expected '\"' for object key"},
		{name: "missing colon", input: `{"a" 1}`, message: "Expected ':' after object key"},
		{name: "missing comma", input: `{"a": 1 "b": 2}`, message: "Expected ',' between object members"},
		{name: "missing close", input: `{"a": 1`, message: "Expected ',' between object members"},
		{name: "trailing comma", input: `{"a": 1,}`, message: "Expected '\"' for object key"},
		{name: "missing value", input: `{"bad":}`, message: "Unexpected character"},
		{name: "eof after open", input: `{`, message: "Expected '\"' for object key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			requireParseError(t, err, tc.message)
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := Parse(`{"bad":}`)
	perr := requireParseError(t, err, "Unexpected character")

	// Position points at the '}' where the missing value was detected
	require.Equal(t, 7, perr.Pos)
	require.NotEmpty(t, perr.Message)
	require.Contains(t, perr.Error(), "JSON parse error at position 7:")
}

func TestParse_MaxDepth(t *testing.T) {
	// MaxDepth nested arrays parse fine; one more level fails
	ok := strings.Repeat("[", MaxDepth) + strings.Repeat("]", MaxDepth)
	_, err := Parse(ok)
	require.NoError(t, err)

	tooDeep := strings.Repeat("[", MaxDepth+1) + strings.Repeat("]", MaxDepth+1)
	_, err = Parse(tooDeep)
	requireParseError(t, err, "Maximum nesting depth exceeded")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{input: "{}", want: true},
		{input: "[]", want: true},
		{input: `{"a":1}`, want: true},
		{input: "", want: false},
		{input: "   ", want: false},
		{input: `{"a":1} extra`, want: false},
		{input: `[1,]`, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.want, Validate(tc.input))
		})
	}
}

// Validate must agree with Parse success for arbitrary inputs.
func TestValidate_MatchesParse(t *testing.T) {
	inputs := []string{
		"null", "true", "0", `"s"`, "[]", "{}", `{"a":[1,2,{"b":null}]}`,
		"", "x", "[", "{", `"\uD800"`, "1.5e10", "01", `{"a":}`,
	}
	for _, input := range inputs {
		_, err := Parse(input)
		require.Equal(t, err == nil, Validate(input), "input: %q", input)
	}
}

func TestParse_NumberPreservation(t *testing.T) {
	v, err := Parse("[1.5e10, 1.50, -0.0, 2E+2]")
	require.NoError(t, err)

	elems, err := v.AsArray()
	require.NoError(t, err)

	want := []string{"1.5e10", "1.50", "-0.0", "2E+2"}
	for i, elem := range elems {
		n, err := elem.AsNumber()
		require.NoError(t, err)
		require.Equal(t, want[i], n.Repr())
	}
}

// requireParseError asserts err is a *ParseError with the given message and
// returns it for further inspection.
func requireParseError(t *testing.T, err error, message string) *ParseError {
	t.Helper()

	require.Error(t, err)

	perr, ok := err.(*ParseError)
	require.True(t, ok, "expected *ParseError, got %T: %v", err, err)
	require.Equal(t, message, perr.Message)

	return perr
}

func BenchmarkParse(b *testing.B) {
	input := `{"name":"cpu.usage","tags":{"host":"server1","region":"us-west"},"samples":[1.5,2.25,3.125,4.0625,5.03125]}`

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
