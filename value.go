package nanojson

// Offset is the set of unsigned widths a descriptor array can be indexed
// and sized with. Pick uint16 for small, tightly-bounded documents, uint32
// for larger ones. Whatever is chosen also bounds the maximum input length
// a Parse call will accept.
type Offset interface {
	~uint16 | ~uint32
}

// Kind is the closed set of JSON value kinds a descriptor can hold.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindString
	KindInteger
	KindDecimal
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// maxNestingLevel is the nesting_level at which no further container may be
// opened (so containers sit at most at level 254 and their elements at 255);
// nesting_level is an unsigned byte, so 255 is the hard ceiling regardless
// of the configured offset width.
const maxNestingLevel uint8 = 255

// Descriptor is the fixed-size record the parser fills one-per-value, laid
// out in pre-order depth-first traversal order across the caller-owned
// array: each value is followed directly by its own subtree, and a zeroed
// descriptor after the last value ends the layout when the array has room
// for one. O parameterizes the
// offset/count width: uint16 for documents up to 65535 bytes, uint32 beyond
// that.
type Descriptor[O Offset] struct {
	NestingLevel uint8
	Kind         Kind

	// NameStart/NameSize locate the member name in the input buffer,
	// excluding the surrounding quotes and without unescape processing.
	// Both are zero when the value has no name (root, array element, or
	// the end-of-array/object sentinel).
	NameStart O
	NameSize  O

	// ValueStart/ValueSize locate the value's textual representation in
	// the input buffer for primitive kinds (unquoted for strings). For
	// composite kinds ValueSize is instead the immediate element/member
	// count, and ValueStart points just past the opening bracket - except
	// for the root descriptor, whose ValueStart is the bracket's own
	// index (see parse.go).
	ValueStart O
	ValueSize  O
}
