package value

import (
	"strconv"

	"github.com/arloliu/jsonv/errs"
)

// Type identifies the active kind of a Value.
type Type uint8

const (
	TypeNull   Type = 0x1 // TypeNull represents the JSON null literal.
	TypeBool   Type = 0x2 // TypeBool represents true or false.
	TypeNumber Type = 0x3 // TypeNumber represents a numeric literal.
	TypeString Type = 0x4 // TypeString represents a string.
	TypeArray  Type = 0x5 // TypeArray represents an ordered sequence of values.
	TypeObject Type = 0x6 // TypeObject represents an ordered sequence of members.
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Member is a single (key, value) entry of an object. Objects keep members
// in insertion order and do not require keys to be unique.
type Member struct {
	Key   string
	Value *Value
}

// Value is a JSON node: a tagged union over the six JSON kinds. The zero
// Value is not valid; use the NewX factory functions or the parser.
type Value struct {
	typ Type
	b   bool
	num Number
	str string
	arr []*Value
	obj []Member
}

// NewNull creates a null value.
func NewNull() *Value {
	return &Value{typ: TypeNull}
}

// NewBool creates a boolean value.
func NewBool(b bool) *Value {
	return &Value{typ: TypeBool, b: b}
}

// NewString creates a string value holding s.
func NewString(s string) *Value {
	return &Value{typ: TypeString, str: s}
}

// NewFloat creates a number value from f, formatted as decimal text with 15
// significant digits in the shortest general form (neither fixed nor
// scientific notation is forced).
func NewFloat(f float64) *Value {
	return NewNumber(strconv.FormatFloat(f, 'g', 15, 64))
}

// NewInt creates a number value from i.
func NewInt(i int64) *Value {
	return NewNumber(strconv.FormatInt(i, 10))
}

// NewNumber creates a number value directly from literal text.
//
// The text is stored without validation; callers must supply syntactically
// valid JSON number text. The parser uses this constructor to preserve the
// matched source substring verbatim.
func NewNumber(repr string) *Value {
	return &Value{typ: TypeNumber, num: Number{repr: repr}}
}

// NewArray creates an array value holding the given elements in order.
func NewArray(elems ...*Value) *Value {
	return &Value{typ: TypeArray, arr: elems}
}

// NewObject creates an object value holding the given members in order.
func NewObject(members ...Member) *Value {
	return &Value{typ: TypeObject, obj: members}
}

// Type returns the active kind of v.
func (v *Value) Type() Type {
	return v.typ
}

// IsNull reports whether v is null.
func (v *Value) IsNull() bool { return v.typ == TypeNull }

// IsBool reports whether v is a boolean.
func (v *Value) IsBool() bool { return v.typ == TypeBool }

// IsNumber reports whether v is a number.
func (v *Value) IsNumber() bool { return v.typ == TypeNumber }

// IsString reports whether v is a string.
func (v *Value) IsString() bool { return v.typ == TypeString }

// IsArray reports whether v is an array.
func (v *Value) IsArray() bool { return v.typ == TypeArray }

// IsObject reports whether v is an object.
func (v *Value) IsObject() bool { return v.typ == TypeObject }

// BoolOr returns the boolean payload, or fallback when v is not a boolean.
// This is the only accessor with graceful fallback behavior; it never fails.
func (v *Value) BoolOr(fallback bool) bool {
	if v.typ != TypeBool {
		return fallback
	}

	return v.b
}

// AsNumber returns the Number payload.
//
// Returns:
//   - Number: Stored number when v is a number
//   - error: errs.ErrNotNumber when the active kind differs
func (v *Value) AsNumber() (Number, error) {
	if v.typ != TypeNumber {
		return Number{}, errs.ErrNotNumber
	}

	return v.num, nil
}

// AsString returns the string payload.
//
// Returns:
//   - string: Stored string when v is a string
//   - error: errs.ErrNotString when the active kind differs
func (v *Value) AsString() (string, error) {
	if v.typ != TypeString {
		return "", errs.ErrNotString
	}

	return v.str, nil
}

// AsArray returns the element slice of an array value.
//
// The returned slice aliases the value's own storage: elements may be
// mutated through it, but appending must go through Append so the parent
// sees the growth.
//
// Returns:
//   - []*Value: Elements in order when v is an array
//   - error: errs.ErrNotArray when the active kind differs
func (v *Value) AsArray() ([]*Value, error) {
	if v.typ != TypeArray {
		return nil, errs.ErrNotArray
	}

	return v.arr, nil
}

// AsObject returns the member slice of an object value.
//
// The returned slice aliases the value's own storage, like AsArray.
//
// Returns:
//   - []Member: Members in insertion order when v is an object
//   - error: errs.ErrNotObject when the active kind differs
func (v *Value) AsObject() ([]Member, error) {
	if v.typ != TypeObject {
		return nil, errs.ErrNotObject
	}

	return v.obj, nil
}

// Len returns the element count of an array or member count of an object,
// and 0 for every other kind.
func (v *Value) Len() int {
	switch v.typ {
	case TypeArray:
		return len(v.arr)
	case TypeObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Append appends child to an array value and returns the inserted element.
//
// Returns:
//   - *Value: The appended child
//   - error: errs.ErrNotArray when v is not an array
func (v *Value) Append(child *Value) (*Value, error) {
	if v.typ != TypeArray {
		return nil, errs.ErrNotArray
	}
	v.arr = append(v.arr, child)

	return child, nil
}

// Member returns the value of the first member with the given key, appending
// a new (key, null) member when no match exists.
//
// Returns:
//   - *Value: Existing or freshly appended member value
//   - error: errs.ErrNotObject when v is not an object
func (v *Value) Member(key string) (*Value, error) {
	if v.typ != TypeObject {
		return nil, errs.ErrNotObject
	}
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, nil
		}
	}

	child := NewNull()
	v.obj = append(v.obj, Member{Key: key, Value: child})

	return child, nil
}

// Set replaces the value of the first member with the given key, appending a
// new member when no match exists, and returns the stored child.
//
// Returns:
//   - *Value: The stored child
//   - error: errs.ErrNotObject when v is not an object
func (v *Value) Set(key string, child *Value) (*Value, error) {
	if v.typ != TypeObject {
		return nil, errs.ErrNotObject
	}
	for i := range v.obj {
		if v.obj[i].Key == key {
			v.obj[i].Value = child
			return child, nil
		}
	}
	v.obj = append(v.obj, Member{Key: key, Value: child})

	return child, nil
}

// Find returns the value of the first member with the given key, or nil when
// no member matches or v is not an object. Find never fails.
func (v *Value) Find(key string) *Value {
	if v == nil || v.typ != TypeObject {
		return nil
	}
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value
		}
	}

	return nil
}

// Equal reports whether v and other are structurally equal: same kind, same
// payload, same order of elements and members. Numbers compare by literal
// text, not numeric value, so 1.0 and 1 are not equal.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.typ != other.typ {
		return false
	}

	switch v.typ {
	case TypeNull:
		return true
	case TypeBool:
		return v.b == other.b
	case TypeNumber:
		return v.num.repr == other.num.repr
	case TypeString:
		return v.str == other.str
	case TypeArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != other.obj[i].Key {
				return false
			}
			if !v.obj[i].Value.Equal(other.obj[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
