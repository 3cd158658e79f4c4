package internal

import (
	"crypto/sha512"
	"errors"
	"math/big"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Separator placed before each identifier in the composed plaintext. NUL can
// never occur inside a legitimate master password or identifier, so
// ["a","b"] and ["ab"] compose to different byte strings.
const identifierSep = "\x00"

var (
	// ErrEmptyMaster is returned when the master password is the empty string.
	ErrEmptyMaster = errors.New("master password must not be empty")
	// ErrInvalidLength is returned when a requested password length is zero
	// or negative. It is reported before any digest is computed.
	ErrInvalidLength = errors.New("password length must be a positive integer")
)

// Normalize canonicalizes text to Unicode Normalization Form D, so that
// precomposed and decomposed spellings of the same text digest identically.
func Normalize(text string) string {
	return norm.NFD.String(text)
}

// Compose joins the master password and the ordered identifiers into the
// canonical plaintext: master, then each identifier preceded by exactly one
// NUL. The whole concatenation is normalized once; NUL is normalization-
// stable, so this is equivalent to normalizing each part separately.
func Compose(master string, identifiers []string) string {
	var sb strings.Builder
	sb.WriteString(master)
	for _, id := range identifiers {
		sb.WriteString(identifierSep)
		sb.WriteString(id)
	}
	return Normalize(sb.String())
}

// DigestText computes the SHA-512 digest of the UTF-8 encoding of text.
func DigestText(text string) [sha512.Size]byte {
	return sha512.Sum512([]byte(text))
}

// EncodeDigest renders digest as digits of the given alphabet.
//
// The digest bytes are interpreted as one little-endian unsigned integer
// (first byte = least-significant 8 bits) and repeatedly divided by the
// alphabet size; each remainder indexes the alphabet. Digits are emitted
// least-significant first, so the result is prefix-stable under truncation.
// A zero-valued digest encodes to the empty string.
//
// 512-bit values overflow every native integer type, so the division runs on
// math/big.
func EncodeDigest(digest []byte, alphabet string) string {
	be := make([]byte, len(digest))
	for i, b := range digest {
		be[len(digest)-1-i] = b
	}
	value := new(big.Int).SetBytes(be)

	base := big.NewInt(int64(len(alphabet)))
	rem := new(big.Int)
	var sb strings.Builder
	for value.Sign() > 0 {
		value.QuoRem(value, base, rem)
		sb.WriteByte(alphabet[rem.Int64()])
	}
	return sb.String()
}

// DerivePassword derives the password for the given master password and
// ordered identifiers, truncated to at most maxLength symbols of the kind's
// alphabet. Identical inputs always produce identical output; nothing is
// stored anywhere.
//
// Input validation happens before any hashing: maxLength must be positive
// (ErrInvalidLength) and master must be non-empty (ErrEmptyMaster). If the
// encoded digest is shorter than maxLength it is returned unpadded.
func DerivePassword(master string, identifiers []string, maxLength int, kind Kind) (string, error) {
	if maxLength <= 0 {
		return "", ErrInvalidLength
	}
	if master == "" {
		return "", ErrEmptyMaster
	}

	digest := DigestText(Compose(master, identifiers))
	encoded := EncodeDigest(digest[:], kind.Alphabet())
	if len(encoded) > maxLength {
		// Every alphabet symbol is single-byte ASCII, so a byte slice is a
		// symbol-count truncation.
		encoded = encoded[:maxLength]
	}
	return encoded, nil
}

// DeriveMasterHash derives the base-62, untruncated hash of the master
// password alone (no identifiers, no separator). It exists so a caller can
// verify a re-entered master password against a remembered hash; it is not a
// password and never substitutes for proving knowledge of the real one.
func DeriveMasterHash(master string) (string, error) {
	if master == "" {
		return "", ErrEmptyMaster
	}
	digest := DigestText(Compose(master, nil))
	return EncodeDigest(digest[:], AlphabetAlphanumeric), nil
}
