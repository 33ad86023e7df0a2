// Package fracdex generates order keys: strings whose plain lexicographic
// order is the order of the items they label. A new key can always be made
// between two existing ones, so a list can be reordered by rewriting a
// single key.
//
// A key is an integer part followed by an optional fractional part, both in
// base62. The first character of the integer part (the head) encodes its
// length: "a0".."az" are the 62 smallest non-negative integers, "b00".."bzz"
// the next 3844, and uppercase heads count down from "Zz" (-1) in the same
// way. The fractional part never ends in '0', so every position has exactly
// one spelling.
//
//	KeyBetween("", "")       // "a0"
//	KeyBetween("a0", "")     // "a1"
//	KeyBetween("a0", "a1")   // "a0V"
//	KeyBetween("", "a0")     // "Zz"
//
// Keys must be compared with ordinary byte-wise string comparison. All
// functions are pure and safe for concurrent use; two callers asking for a
// key between the same bounds get the same answer, which KeyBetweenJitter
// makes less likely.
//
// Errors are *Error values; use errors.Is with the Err* sentinels to test
// their kind.
package fracdex
