package fracdex

import "fmt"

// ErrorKind identifies one of the ways key generation can fail.
type ErrorKind int

const (
	// KindInvalidOrderKey: the key is empty, too short for its head, the
	// bare smallest integer, or has a fractional part ending in '0'.
	KindInvalidOrderKey ErrorKind = iota + 1
	// KindInvalidOrderKeyHead: the first character is not a letter.
	KindInvalidOrderKeyHead
	// KindKeysOutOfOrder: both bounds were given but a >= b.
	KindKeysOutOfOrder
	// KindRangeUnderflow: no key exists below the given upper bound.
	KindRangeUnderflow
	// KindRangeOverflow: no integer exists above the given lower bound.
	KindRangeOverflow
	// KindInvalidKeyInteger: an integer part whose length does not match its head.
	KindInvalidKeyInteger
	// KindInvalidKey: a key that could not be decoded.
	KindInvalidKey
	// KindInvalidMidpoint: the midpoint digit fell outside the alphabet.
	KindInvalidMidpoint
	// KindInvalidDigit: a character outside the base62 alphabet.
	KindInvalidDigit
	// KindInvalidLexorank: a lexorank string not of the form "bucket|key".
	KindInvalidLexorank
	// KindBucketMismatch: two lexoranks from different buckets.
	KindBucketMismatch
)

var kindText = map[ErrorKind]string{
	KindInvalidOrderKey:     "invalid order key",
	KindInvalidOrderKeyHead: "invalid order key head",
	KindKeysOutOfOrder:      "keys out of order",
	KindRangeUnderflow:      "range underflow",
	KindRangeOverflow:       "range overflow",
	KindInvalidKeyInteger:   "invalid key integer",
	KindInvalidKey:          "invalid key",
	KindInvalidMidpoint:     "invalid midpoint",
	KindInvalidDigit:        "invalid digit",
	KindInvalidLexorank:     "invalid lexorank",
	KindBucketMismatch:      "bucket mismatch",
}

func (k ErrorKind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Error is the only error type returned by this package. Input holds the
// offending key, head or digit; Upper is only set for kinds that compare
// two values.
type Error struct {
	Kind  ErrorKind
	Input string
	Upper string
}

func newError(kind ErrorKind, input string) *Error {
	return &Error{Kind: kind, Input: input}
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindKeysOutOfOrder:
		return fmt.Sprintf("%s: %s >= %s", e.Kind, e.Input, e.Upper)
	case e.Kind == KindBucketMismatch:
		return fmt.Sprintf("%s: %s != %s", e.Kind, e.Input, e.Upper)
	case e.Input == "":
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Input)
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrRangeOverflow) works regardless of payload.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrInvalidOrderKey     = &Error{Kind: KindInvalidOrderKey}
	ErrInvalidOrderKeyHead = &Error{Kind: KindInvalidOrderKeyHead}
	ErrKeysOutOfOrder      = &Error{Kind: KindKeysOutOfOrder}
	ErrRangeUnderflow      = &Error{Kind: KindRangeUnderflow}
	ErrRangeOverflow       = &Error{Kind: KindRangeOverflow}
	ErrInvalidKeyInteger   = &Error{Kind: KindInvalidKeyInteger}
	ErrInvalidKey          = &Error{Kind: KindInvalidKey}
	ErrInvalidMidpoint     = &Error{Kind: KindInvalidMidpoint}
	ErrInvalidDigit        = &Error{Kind: KindInvalidDigit}
	ErrInvalidLexorank     = &Error{Kind: KindInvalidLexorank}
	ErrBucketMismatch      = &Error{Kind: KindBucketMismatch}
)
