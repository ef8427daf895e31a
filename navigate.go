package nanojson

// Value is a read-only handle onto one descriptor plus the input buffer it
// indexes into. All operations are pure reads; the only way to mutate
// anything reachable from a Value is the in-place variant of Unescape.
type Value[O Offset] struct {
	input []byte
	desc  []Descriptor[O]
	at    int
}

// Root returns a Value handle over the descriptor array's root, same as
// the handle Parse returns on success. It's useful when a descriptor array
// produced by an earlier Parse call is retained and revisited without
// re-parsing.
func Root[O Offset](input []byte, desc []Descriptor[O]) Value[O] {
	return Value[O]{input: input, desc: desc, at: 0}
}

func (v Value[O]) d() *Descriptor[O] { return &v.desc[v.at] }

// Kind reports the value's kind.
func (v Value[O]) Kind() Kind { return v.d().Kind }

func (v Value[O]) IsNull() bool   { return v.d().Kind == KindNull }
func (v Value[O]) IsBool() bool   { return v.d().Kind == KindBool }
func (v Value[O]) IsString() bool { return v.d().Kind == KindString }
func (v Value[O]) IsInteger() bool { return v.d().Kind == KindInteger }
func (v Value[O]) IsArray() bool  { return v.d().Kind == KindArray }
func (v Value[O]) IsObject() bool { return v.d().Kind == KindObject }

// IsDecimal is true for both Decimal and Integer kinds: integers are a
// subset of decimals for predicate purposes.
func (v Value[O]) IsDecimal() bool {
	k := v.d().Kind
	return k == KindDecimal || k == KindInteger
}

// Size returns value_size directly: member count for objects, element
// count for arrays, byte length of the raw text for primitives.
func (v Value[O]) Size() int { return int(v.d().ValueSize) }

// Raw returns the value's textual representation: input[value_start,
// value_start+value_size), unquoted and still escaped for strings.
// Meaningless for composite kinds (use Size/First/Next/Walk instead).
func (v Value[O]) Raw() []byte {
	d := v.d()
	return v.input[d.ValueStart : int(d.ValueStart)+int(d.ValueSize)]
}

// Name returns the member name this value was parsed under, excluding
// quotes and without unescape processing. Empty for the root, array
// elements, and the sentinel.
func (v Value[O]) Name() []byte {
	d := v.d()
	return v.input[d.NameStart : int(d.NameStart)+int(d.NameSize)]
}

// Bool reports whether the raw slice equals "true". Meaningful only when
// Kind() == KindBool.
func (v Value[O]) Bool() bool {
	return bytesEqual(v.Raw(), "true")
}

// AsInt parses the raw slice as a signed integer of width T. Go methods
// can't carry their own type parameters, so the integer width is chosen at
// the call site instead of fixed on Value: AsInt[int32](v).
func AsInt[T Signed, O Offset](v Value[O]) (T, bool) {
	return ParseInt[T](v.Raw())
}

// AsFloat parses the raw slice as a floating point number of width T.
func AsFloat[T Float, O Offset](v Value[O]) (T, bool) {
	return ParseFloat[T](v.Raw())
}

// Unescape decodes the raw (still-escaped) string value into dst, which
// must be at least as large as the raw slice (decoded length never exceeds
// source length). It decodes \\ \/ \" \n \r \b \f \t into their single-byte
// forms; an unknown escape letter emits a zero byte, a deliberate quirk.
// Returns the written prefix of dst and true, or false if dst is too small.
func (v Value[O]) Unescape(dst []byte) ([]byte, bool) {
	raw := v.Raw()
	if len(dst) < len(raw) {
		return nil, false
	}
	n := unescapeInto(dst, raw)
	return dst[:n], true
}

// UnescapeInPlace decodes the raw string value in place, reusing the input
// buffer's own bytes as storage, and returns a view aliasing them. Callers
// that use this must accept that the original JSON bytes underlying this
// Value are mutated, and must not race this call against concurrent
// readers of the same input buffer.
func (v Value[O]) UnescapeInPlace() []byte {
	raw := v.Raw()
	n := unescapeInto(raw, raw)
	return raw[:n]
}

func unescapeInto(dst, raw []byte) int {
	n := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 == len(raw) {
			dst[n] = c
			n++
			continue
		}
		switch raw[i+1] {
		case '\\':
			dst[n] = '\\'
		case '/':
			dst[n] = '/'
		case '"':
			dst[n] = '"'
		case 'n':
			dst[n] = '\n'
		case 'r':
			dst[n] = '\r'
		case 'b':
			dst[n] = '\b'
		case 'f':
			dst[n] = '\f'
		case 't':
			dst[n] = '\t'
		default:
			dst[n] = 0
		}
		n++
		i++
	}
	return n
}

// First returns the first immediate child of a composite value, and true.
// Returns the zero Value and false for a primitive, or an empty composite.
func (v Value[O]) First() (Value[O], bool) {
	d := v.d()
	if d.Kind != KindArray && d.Kind != KindObject {
		return Value[O]{}, false
	}
	if d.ValueSize == 0 {
		return Value[O]{}, false
	}
	return Value[O]{input: v.input, desc: v.desc, at: v.at + 1}, true
}

// Next returns the sibling immediately following v in the flat array -
// found by skipping v's own subtree - and true. Returns the zero Value and
// false if v was the last child of its parent.
func (v Value[O]) Next() (Value[O], bool) {
	k := v.end()
	if k >= len(v.desc) || v.desc[k].NestingLevel != v.d().NestingLevel {
		return Value[O]{}, false
	}
	return Value[O]{input: v.input, desc: v.desc, at: k}, true
}

// end returns the first index after v's subtree: the first k > v.at with
// nesting_level <= v's own nesting_level. The sentinel (nesting_level 0)
// satisfies this when present; when the array was filled exactly and holds
// no sentinel, the scan stops at len(desc).
func (v Value[O]) end() int {
	level := v.d().NestingLevel
	k := v.at + 1
	for k < len(v.desc) && v.desc[k].NestingLevel > level {
		k++
	}
	return k
}

// Cursor is a resumable pull-style iterator over a composite's immediate
// children, seeking forward by skipping each subtree in turn (via First/
// Next) rather than holding a separate stack.
type Cursor[O Offset] struct {
	next Value[O]
	more bool
}

// Cursor starts a traversal of v's immediate children. Safe to call on a
// primitive or empty composite: Next will simply report no more elements.
func (v Value[O]) Cursor() Cursor[O] {
	first, ok := v.First()
	return Cursor[O]{next: first, more: ok}
}

// Next returns the next child and true, or the zero Value and false once
// the cursor is exhausted.
func (c *Cursor[O]) Next() (Value[O], bool) {
	if !c.more {
		return Value[O]{}, false
	}
	cur := c.next
	c.next, c.more = cur.Next()
	return cur, true
}

// WalkFunc is called once per descriptor visited by Walk, in pre-order -
// the same order the flat array itself is laid out in.
type WalkFunc[O Offset] func(Value[O]) bool

// Walk visits v and every descendant in pre-order, calling fn for each.
// Walk stops early if fn returns false.
func (v Value[O]) Walk(fn WalkFunc[O]) {
	limit := v.end()
	for i := v.at; i < limit; i++ {
		if !fn(Value[O]{input: v.input, desc: v.desc, at: i}) {
			return
		}
	}
}

// ByName scans v's immediate children (objects only) for the first whose
// raw, still-escaped name matches name byte-for-byte. ok is false for
// non-objects or no match.
func (v Value[O]) ByName(name []byte) (Value[O], bool) {
	if v.d().Kind != KindObject {
		return Value[O]{}, false
	}
	c := v.Cursor()
	for {
		child, more := c.Next()
		if !more {
			return Value[O]{}, false
		}
		if bytesEqualBytes(child.Name(), name) {
			return child, true
		}
	}
}

// ByIndex returns the i-th immediate element of v (arrays only), counting
// from 0. ok is false for non-arrays or i >= Size().
func (v Value[O]) ByIndex(i int) (Value[O], bool) {
	if v.d().Kind != KindArray || i < 0 {
		return Value[O]{}, false
	}
	c := v.Cursor()
	for n := 0; ; n++ {
		child, more := c.Next()
		if !more {
			return Value[O]{}, false
		}
		if n == i {
			return child, true
		}
	}
}

func bytesEqualBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
