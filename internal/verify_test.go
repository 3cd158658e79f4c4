package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyMasterHash(t *testing.T) {
	t.Parallel()

	hash, err := DeriveMasterHash("correct horse battery staple")
	require.NoError(t, err)

	assert.NoError(t, VerifyMasterHash("correct horse battery staple", hash))
	assert.ErrorIs(t, VerifyMasterHash("correct horse battery stapler", hash), ErrMasterMismatch)
	assert.ErrorIs(t, VerifyMasterHash("anything", ""), ErrMasterMismatch)
	assert.ErrorIs(t, VerifyMasterHash("", hash), ErrEmptyMaster)
}

func TestVerifyMasterHash_NormalizationInvariance(t *testing.T) {
	t.Parallel()

	hash, err := DeriveMasterHash("éü")
	require.NoError(t, err)
	// The decomposed spelling of the same text must verify.
	assert.NoError(t, VerifyMasterHash("éü", hash))
}

func TestDeriveVerified(t *testing.T) {
	t.Parallel()

	want, err := DerivePassword("password", []string{"example.com"}, 15, KindNormal)
	require.NoError(t, err)

	got, err := DeriveVerified("password", []string{"example.com"}, 15, KindNormal)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = DeriveVerified("", []string{"example.com"}, 15, KindNormal)
	assert.ErrorIs(t, err, ErrEmptyMaster)

	_, err = DeriveVerified("password", []string{"example.com"}, 0, KindNormal)
	assert.ErrorIs(t, err, ErrInvalidLength)
}
