package internal

// Package internal: fixed digit alphabets for password encoding.
//
// Every derived password is a 512-bit digest rendered in one of three fixed
// positional alphabets. Ordering is part of the contract: index 0 is the
// symbol emitted for the least-significant digit, and changing any symbol or
// its position changes every derived password.
//
// Alphabets:
//   - normal:       the 94 printable ASCII characters '!' (0x21) .. '~' (0x7E),
//                   ascending codepoint order.
//   - alphanumeric: '0'-'9', then 'A'-'Z', then 'a'-'z' (62 symbols). Master
//                   password hashes always use this alphabet.
//   - numeric:      '0'-'9' (10 symbols).

import (
	"fmt"
	"strings"
)

// Kind selects the digit alphabet for a derived password.
type Kind int

const (
	// KindNormal renders in the full 94-symbol printable ASCII alphabet.
	KindNormal Kind = iota
	// KindAlphanumeric renders in the 62-symbol 0-9A-Za-z alphabet.
	KindAlphanumeric
	// KindNumeric renders in the 10-symbol decimal alphabet.
	KindNumeric
)

// AlphabetAlphanumeric is the base-62 alphabet: digit value 0 maps to '0',
// value 10 to 'A', value 36 to 'a'. It is also the fixed alphabet for
// master password hashes.
const AlphabetAlphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// AlphabetNumeric is the base-10 alphabet.
const AlphabetNumeric = "0123456789"

// AlphabetNormal is the base-94 alphabet: every printable ASCII character
// from '!' through '~', built once at init so ordering cannot drift from the
// codepoint range it is defined by.
var AlphabetNormal = func() string {
	var sb strings.Builder
	for c := byte('!'); c <= '~'; c++ {
		sb.WriteByte(c)
	}
	return sb.String()
}()

// String returns the flag-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindAlphanumeric:
		return "alphanumeric"
	case KindNumeric:
		return "numeric"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Alphabet returns the ordered digit alphabet for the kind.
func (k Kind) Alphabet() string {
	switch k {
	case KindAlphanumeric:
		return AlphabetAlphanumeric
	case KindNumeric:
		return AlphabetNumeric
	default:
		return AlphabetNormal
	}
}

// ParseKind maps a flag value to a Kind. Matching is case-insensitive and
// accepts the shorthands "alnum" and "num".
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return KindNormal, true
	case "alphanumeric", "alnum":
		return KindAlphanumeric, true
	case "numeric", "num":
		return KindNumeric, true
	}
	return KindNormal, false
}
