package nanojson

// ErrorKind is the closed taxonomy of parse failures. Each parse call
// reports at most one, together with the byte index of the offending byte.
type ErrorKind uint8

const (
	ErrNotEnoughMemory ErrorKind = iota
	ErrJSONTooBig
	ErrNotAJSONString
	ErrUnexpectedEndOfJSONString
	ErrUnexpectedChar
	ErrExpectedMemberName
	ErrMissingValueSeparator
	ErrInvalidValue
	ErrInvalidEscapedChar
	ErrMissingEndOfString
	ErrMaxNestingLevel
	ErrTrailingChars

	errKindCount
)

var errKindNames = [errKindCount]string{
	ErrNotEnoughMemory:           "not enough memory",
	ErrJSONTooBig:                "json too big",
	ErrNotAJSONString:            "not a json string",
	ErrUnexpectedEndOfJSONString: "unexpected end of json string",
	ErrUnexpectedChar:            "unexpected char",
	ErrExpectedMemberName:        "expected member name",
	ErrMissingValueSeparator:     "missing value separator",
	ErrInvalidValue:              "invalid value",
	ErrInvalidEscapedChar:        "invalid escaped char",
	ErrMissingEndOfString:        "missing end of string",
	ErrMaxNestingLevel:           "max nesting level",
	ErrTrailingChars:             "trailing chars",
}

func (k ErrorKind) String() string {
	if k >= errKindCount {
		return "unknown error"
	}
	return errKindNames[k]
}

// ErrorHandler is invoked at most once per Parse call, with the byte index
// of the offending byte and the reason. It is fire-and-forget: the
// authoritative failure signal is Parse's own boolean return.
type ErrorHandler func(index int, kind ErrorKind)
