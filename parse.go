package nanojson

// state is one of the five parser states from the state table.
type state uint8

const (
	stateStartOfMemberName state = iota
	stateMemberName
	stateValueSeparator
	stateStartOfValue
	stateMemberSeparator
)

// parseConfig collects ParseOption settings, a functional-options knob
// for the one true runtime behavior this package exposes.
type parseConfig struct {
	onError ErrorHandler
}

// ParseOption configures a Parse call. The zero value of every option is
// "do nothing", so omitting options entirely is always valid.
type ParseOption func(*parseConfig)

// WithErrorHandler registers a callback invoked at most once, with the
// byte index and kind of the first error encountered.
func WithErrorHandler(h ErrorHandler) ParseOption {
	return func(c *parseConfig) { c.onError = h }
}

// maxOffset returns the largest value representable by O, used to reject
// input longer than the configured offset width can index.
func maxOffset[O Offset]() uint64 {
	var zero O
	bits := 0
	switch any(zero).(type) {
	case uint16:
		bits = 16
	case uint32:
		bits = 32
	}
	return uint64(1)<<bits - 1
}

// Parse validates input as JSON and fills descriptors in pre-order,
// depth-first layout. On success it returns a handle to the root value and
// true. On failure it returns the zero Value and false; if opts registers
// an error handler, it was called exactly once with the offending byte
// index and the reason.
//
// input and descriptors are both borrowed for the duration of the call and,
// on success, for the lifetime of every Value derived from the result -
// neither the parser nor the navigator ever allocates.
func Parse[O Offset](input []byte, descriptors []Descriptor[O], opts ...ParseOption) (Value[O], bool) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	report := func(index int, kind ErrorKind) {
		if cfg.onError != nil {
			cfg.onError(index, kind)
		}
	}

	if uint64(len(input)) > maxOffset[O]() {
		report(0, ErrJSONTooBig)
		return Value[O]{}, false
	}
	if len(descriptors) == 0 {
		report(0, ErrNotEnoughMemory)
		return Value[O]{}, false
	}

	rel, c, found := scanNonBlank(input)
	if !found {
		report(0, ErrNotAJSONString)
		return Value[O]{}, false
	}
	if c != '{' && c != '[' {
		report(rel, ErrNotAJSONString)
		return Value[O]{}, false
	}

	p := &parser[O]{input: input, desc: descriptors, onError: cfg.onError}
	p.desc[0] = Descriptor[O]{ValueStart: O(rel)}
	if c == '{' {
		p.desc[0].Kind = KindObject
		p.state = stateStartOfMemberName
	} else {
		p.desc[0].Kind = KindArray
		p.state = stateStartOfValue
	}
	p.index = rel + 1
	p.currentIdx = 1
	p.parentIdx = 0
	p.nestingLevel = 1

	if !p.run() {
		return Value[O]{}, false
	}

	end := p.currentIdx
	if end < len(p.desc) {
		end++
	}
	return Value[O]{input: input, desc: p.desc[:end]}, true
}

// parser holds the mutable state of one Parse call: the dispatch loop and
// the five state handlers below track byte position, write cursor, and a
// single rewinding parent pointer in place of an explicit ancestor stack.
type parser[O Offset] struct {
	input   []byte
	desc    []Descriptor[O]
	onError ErrorHandler

	state        state
	nestingLevel uint8
	index        int
	parentIdx    int
	currentIdx   int
}

func (p *parser[O]) report(kind ErrorKind) {
	if p.onError != nil {
		p.onError(p.index, kind)
	}
}

// allocate reports NotEnoughMemory and returns false if the next descriptor
// write would fall outside desc. It is called immediately before every
// write to desc[currentIdx] so that values which are never committed (an
// immediately-closed empty array, for instance) never need a slot.
func (p *parser[O]) allocate() bool {
	if p.currentIdx >= len(p.desc) {
		p.report(ErrNotEnoughMemory)
		return false
	}
	return true
}

// beginValue reserves desc[currentIdx] for a new value about to be
// recorded: it stamps the inherited nesting level and, for array elements,
// clears the name fields (object members already got theirs from
// parseMemberName).
func (p *parser[O]) beginValue() bool {
	if !p.allocate() {
		return false
	}
	p.desc[p.currentIdx].NestingLevel = p.nestingLevel
	if p.desc[p.parentIdx].Kind == KindArray {
		p.desc[p.currentIdx].NameStart = 0
		p.desc[p.currentIdx].NameSize = 0
	}
	return true
}

func (p *parser[O]) run() bool {
	for p.index < len(p.input) && p.nestingLevel > 0 {
		var ok bool
		switch p.state {
		case stateStartOfMemberName:
			ok = p.parseStartOfMemberName()
		case stateMemberName:
			ok = p.parseMemberName()
		case stateValueSeparator:
			ok = p.parseValueSeparator()
		case stateStartOfValue:
			ok = p.parseStartOfValue()
		case stateMemberSeparator:
			ok = p.parseMemberSeparator()
		}
		if !ok {
			return false
		}
	}

	if p.nestingLevel > 0 {
		p.index = len(p.input)
		p.report(ErrUnexpectedEndOfJSONString)
		return false
	}

	if p.index < len(p.input) {
		if rel, _, found := scanNonBlank(p.input[p.index:]); found {
			p.index += rel
			p.report(ErrTrailingChars)
			return false
		}
	}

	if p.currentIdx < len(p.desc) {
		p.desc[p.currentIdx] = Descriptor[O]{}
	}
	return true
}

func (p *parser[O]) parseStartOfMemberName() bool {
	rel, c, found := scanNonBlank(p.input[p.index:])
	p.index += rel
	if !found {
		p.report(ErrUnexpectedEndOfJSONString)
		return false
	}
	switch c {
	case '}':
		if p.desc[p.parentIdx].ValueSize == 0 {
			p.index++
			p.finalizeComposite()
			return true
		}
		p.report(ErrExpectedMemberName)
		return false
	case '"':
		p.index++
		p.state = stateMemberName
		return true
	default:
		p.report(ErrUnexpectedChar)
		return false
	}
}

func (p *parser[O]) parseMemberName() bool {
	if !p.allocate() {
		return false
	}
	start := p.index
	raw, ok := p.scanString(start)
	if !ok {
		return false
	}
	p.desc[p.currentIdx].NameStart = O(start)
	p.desc[p.currentIdx].NameSize = O(len(raw))
	p.state = stateValueSeparator
	return true
}

func (p *parser[O]) parseValueSeparator() bool {
	rel, c, found := scanNonBlank(p.input[p.index:])
	p.index += rel
	if found && c == ':' {
		p.index++
		p.state = stateStartOfValue
		return true
	}
	p.report(ErrMissingValueSeparator)
	return false
}

func (p *parser[O]) parseMemberSeparator() bool {
	rel, c, found := scanNonBlank(p.input[p.index:])
	p.index += rel
	if !found {
		p.report(ErrUnexpectedEndOfJSONString)
		return false
	}
	parentKind := p.desc[p.parentIdx].Kind
	switch {
	case c == ',' && parentKind == KindArray:
		p.state = stateStartOfValue
	case c == ',':
		p.state = stateStartOfMemberName
	case c == '}' && parentKind == KindObject:
		p.finalizeComposite()
	case c == ']' && parentKind == KindArray:
		p.finalizeComposite()
	default:
		p.report(ErrUnexpectedChar)
		return false
	}
	p.index++
	return true
}

func (p *parser[O]) parseStartOfValue() bool {
	rel, c, found := scanNonBlank(p.input[p.index:])
	p.index += rel
	if !found {
		p.report(ErrUnexpectedEndOfJSONString)
		return false
	}
	switch c {
	case 'n':
		return p.parseLiteral("null", KindNull)
	case 't':
		return p.parseLiteral("true", KindBool)
	case 'f':
		return p.parseLiteral("false", KindBool)
	case '"':
		return p.parseStringValue()
	case '[':
		return p.parseCompound(KindArray, stateStartOfValue)
	case '{':
		return p.parseCompound(KindObject, stateStartOfMemberName)
	case ']':
		if p.desc[p.parentIdx].Kind == KindArray && p.desc[p.parentIdx].ValueSize == 0 {
			p.index++
			p.finalizeComposite()
			return true
		}
		p.report(ErrUnexpectedChar)
		return false
	default:
		if c == '-' || (c >= '0' && c <= '9') {
			return p.parseNumber()
		}
		p.report(ErrInvalidValue)
		return false
	}
}

// parseLiteral matches the exact literal text. The strict '<' below (not
// '<=') is a deliberate quirk: a literal cannot be the very last byte of
// the input with nothing following, which never arises for a well-formed
// document since the enclosing container always contributes at least one
// more byte.
func (p *parser[O]) parseLiteral(lit string, kind Kind) bool {
	if !p.beginValue() {
		return false
	}
	if p.index+len(lit) < len(p.input) && bytesEqual(p.input[p.index:p.index+len(lit)], lit) {
		p.desc[p.currentIdx].Kind = kind
		p.desc[p.currentIdx].ValueStart = O(p.index)
		p.desc[p.currentIdx].ValueSize = O(len(lit))
		p.currentIdx++
		p.desc[p.parentIdx].ValueSize++
		p.index += len(lit)
		p.state = stateMemberSeparator
		return true
	}
	p.report(ErrInvalidValue)
	return false
}

func (p *parser[O]) parseStringValue() bool {
	if !p.beginValue() {
		return false
	}
	start := p.index + 1
	if start >= len(p.input) {
		p.index = start
		p.report(ErrMissingEndOfString)
		return false
	}
	p.index = start
	raw, ok := p.scanString(start)
	if !ok {
		return false
	}
	p.desc[p.currentIdx].Kind = KindString
	p.desc[p.currentIdx].ValueStart = O(start)
	p.desc[p.currentIdx].ValueSize = O(len(raw))
	p.currentIdx++
	p.desc[p.parentIdx].ValueSize++
	p.state = stateMemberSeparator
	return true
}

// scanString scans a string body starting at p.input[start:], just after
// the opening quote, reporting and leaving p.index positioned at the fault
// on error, or just past the closing quote on success.
func (p *parser[O]) scanString(start int) (raw []byte, ok bool) {
	s := p.input[start:]
	i := 0
	for {
		j, c, found := scanByteIn2(s[i:], '\\', '"')
		if !found {
			p.index = start + i
			p.report(ErrMissingEndOfString)
			return nil, false
		}
		i += j
		if c == '"' {
			p.index = start + i + 1
			return s[:i], true
		}
		if i+1 >= len(s) {
			p.index = start + i
			p.report(ErrMissingEndOfString)
			return nil, false
		}
		switch s[i+1] {
		case '\\', '/', '"', 'n', 'r', 'b', 'f', 't':
			i += 2
		default:
			p.index = start + i
			p.report(ErrInvalidEscapedChar)
			return nil, false
		}
	}
}

func isNumberChar(c byte) bool {
	return c == '.' || c == '-' || (c >= '0' && c <= '9')
}

func (p *parser[O]) parseNumber() bool {
	if !p.beginValue() {
		return false
	}
	start := p.index
	rel, found := scanWhile(p.input[start:], isNumberChar)
	if !found {
		// The digit run reached end of input with no delimiter: a number
		// can never legitimately terminate a well-formed document by
		// itself, since whatever opened the enclosing container still
		// needs its matching close.
		p.index = start + rel
		p.report(ErrUnexpectedEndOfJSONString)
		return false
	}

	raw := p.input[start : start+rel]
	digits := raw
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	// A '.' must sit between digits, and a leading '0' may only be
	// followed by the '.'.
	if len(digits) == 0 || digits[0] == '.' || digits[len(digits)-1] == '.' ||
		(len(digits) > 1 && digits[0] == '0' && digits[1] != '.') {
		p.report(ErrInvalidValue)
		return false
	}
	isInteger := true
	for _, c := range digits {
		switch c {
		case '.':
			if !isInteger {
				p.report(ErrInvalidValue)
				return false
			}
			isInteger = false
		case '-':
			p.report(ErrInvalidValue)
			return false
		}
	}

	kind := KindInteger
	if !isInteger {
		kind = KindDecimal
	}
	p.desc[p.currentIdx].Kind = kind
	p.desc[p.currentIdx].ValueStart = O(start)
	p.desc[p.currentIdx].ValueSize = O(rel)
	p.currentIdx++
	p.desc[p.parentIdx].ValueSize++
	p.index += rel
	p.state = stateMemberSeparator
	return true
}

func (p *parser[O]) parseCompound(kind Kind, next state) bool {
	if p.nestingLevel == maxNestingLevel {
		p.report(ErrMaxNestingLevel)
		return false
	}
	if !p.beginValue() {
		return false
	}
	p.desc[p.parentIdx].ValueSize++
	p.parentIdx = p.currentIdx
	p.index++
	p.desc[p.currentIdx].Kind = kind
	p.desc[p.currentIdx].ValueStart = O(p.index)
	p.desc[p.currentIdx].ValueSize = 0
	p.currentIdx++
	p.nestingLevel++
	p.state = next
	return true
}

func (p *parser[O]) finalizeComposite() {
	p.nestingLevel--
	for p.desc[p.parentIdx].NestingLevel != 0 && p.desc[p.parentIdx].NestingLevel >= p.nestingLevel {
		p.parentIdx--
	}
	p.state = stateMemberSeparator
}

// --- byte scanning helpers, no allocation, no backtracking ---

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// scanNonBlank returns the first non-blank byte in s, and how many blank
// bytes preceded it. found is false if s is entirely blank (or empty).
func scanNonBlank(s []byte) (skipped int, c byte, found bool) {
	for i := 0; i < len(s); i++ {
		if !isBlank(s[i]) {
			return i, s[i], true
		}
	}
	return len(s), 0, false
}

// scanByteIn2 returns the offset and identity of the first occurrence of a
// or b in s. found is false if neither occurs before s ends.
func scanByteIn2(s []byte, a, b byte) (idx int, c byte, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == a || s[i] == b {
			return i, s[i], true
		}
	}
	return len(s), 0, false
}

// scanWhile returns the length of the maximal prefix of s for which pred
// holds. found is false if pred held for the entire remainder of s without
// ever hitting a terminating byte.
func scanWhile(s []byte, pred func(byte) bool) (n int, found bool) {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return i, true
		}
	}
	return len(s), false
}

func bytesEqual(a []byte, b string) bool {
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
