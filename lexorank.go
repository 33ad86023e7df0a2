package fracdex

import (
	"fmt"
	"strconv"
	"strings"
)

// Bucket namespaces lexoranks, for example one bucket per list or tenant.
// Ranks in different buckets are never interleaved.
type Bucket uint8

// Lexorank represents a lexicographically sortable rank within a bucket.
// It combines a bucket identifier with an order key generated by
// KeyBetween, so new ranks can always be inserted between two existing
// ranks of the same bucket without touching the others.
type Lexorank struct {
	bucket Bucket
	key    string
}

// String returns a string representation of the Lexorank in the format "bucket|key".
//
// Example: "1|a1" represents bucket 1 with key "a1"
func (rk Lexorank) String() string {
	return fmt.Sprintf("%d|%s", rk.bucket, rk.key)
}

// NewLexorank creates a new Lexorank with the specified bucket and key.
// The key is not validated; use ParseLexorank for untrusted input.
func NewLexorank(bucket Bucket, key string) Lexorank {
	return Lexorank{bucket: bucket, key: key}
}

// ParseLexorank parses the "bucket|key" form produced by String. The key
// must be a valid order key.
func ParseLexorank(s string) (Lexorank, error) {
	bs, key, ok := strings.Cut(s, "|")
	if !ok {
		return Lexorank{}, newError(KindInvalidLexorank, s)
	}
	b, err := strconv.ParseUint(bs, 10, 8)
	if err != nil {
		return Lexorank{}, newError(KindInvalidLexorank, s)
	}
	if err := validateOrderKey(key); err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: Bucket(b), key: key}, nil
}

// Bucket returns the bucket identifier for this lexorank.
func (rk Lexorank) Bucket() Bucket {
	return rk.bucket
}

// Key returns the order key for this lexorank.
func (rk Lexorank) Key() string {
	return rk.key
}

// Compare returns -1, 0 or +1. Ranks are ordered by bucket first and by key
// within a bucket.
func (rk Lexorank) Compare(other Lexorank) int {
	switch {
	case rk.bucket < other.bucket:
		return -1
	case rk.bucket > other.bucket:
		return 1
	}
	return strings.Compare(rk.key, other.key)
}

// LexorankBetween returns a rank strictly between a and b. Both ranks must
// share a bucket; a zero-value key on either side means that side is open.
func LexorankBetween(a, b Lexorank) (Lexorank, error) {
	if a.bucket != b.bucket {
		return Lexorank{}, &Error{
			Kind:  KindBucketMismatch,
			Input: strconv.Itoa(int(a.bucket)),
			Upper: strconv.Itoa(int(b.bucket)),
		}
	}
	key, err := KeyBetween(a.key, b.key)
	if err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: a.bucket, key: key}, nil
}
