package internal

import (
	"crypto/subtle"
	"fmt"
	"strings"
)

// VerifyMasterHash checks a master password entry against a previously
// recorded master-password hash (as produced by DeriveMasterHash). The
// comparison is constant-time. A nil return means the entry may be passed to
// the derivation core; any error means the core must not be invoked.
//
// The remembered hash is a convenience that replaces the second interactive
// entry. It is never a substitute for entering the master password itself.
func VerifyMasterHash(master, rememberedHash string) error {
	got, err := DeriveMasterHash(master)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(rememberedHash)) != 1 {
		return ErrMasterMismatch
	}
	return nil
}

// DeriveVerified derives the password and immediately re-derives it from the
// same inputs, comparing the two results and checking that every output
// symbol belongs to the kind's alphabet. If any check fails, an error is
// returned and no password is produced.
func DeriveVerified(master string, identifiers []string, maxLength int, kind Kind) (string, error) {
	password, err := DerivePassword(master, identifiers, maxLength, kind)
	if err != nil {
		return "", err
	}
	again, err := DerivePassword(master, identifiers, maxLength, kind)
	if err != nil {
		return "", fmt.Errorf("verification derive failed: %w", err)
	}
	if password != again {
		return "", fmt.Errorf("derivation is not reproducible")
	}
	alphabet := kind.Alphabet()
	for i := 0; i < len(password); i++ {
		if strings.IndexByte(alphabet, password[i]) < 0 {
			return "", fmt.Errorf("derived symbol at position %d is outside the %s alphabet", i, kind)
		}
	}
	return password, nil
}
