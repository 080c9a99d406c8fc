package loyalty

import (
	"bytes"
	"crypto/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}-[A-Z0-9]{6}$`)

func TestNewCardCode_Format(t *testing.T) {
	seen := make(map[string]struct{})
	for range 200 {
		code, err := NewCardCode(rand.Reader)
		require.NoError(t, err)
		assert.Regexp(t, cardCodePattern, code)
		seen[code] = struct{}{}
	}

	assert.Len(t, seen, 200)
}

func TestNewCardCode_RejectsBiasedBytes(t *testing.T) {
	// 0xFF is outside the accepted range and must be skipped.
	src := bytes.NewReader(append(bytes.Repeat([]byte{0xFF}, 12), bytes.Repeat([]byte{0, 1}, 12)...))

	code, err := NewCardCode(src)
	require.NoError(t, err)
	assert.Equal(t, "ABABAB-ABABAB", code)
}

func TestNewCardCode_ReaderError(t *testing.T) {
	_, err := NewCardCode(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestNewRedemptionCode(t *testing.T) {
	code, err := NewRedemptionCode(rand.Reader)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "RWD-"))
	assert.Regexp(t, `^RWD-[A-Z0-9]{8}$`, code)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ABC123-XYZ789", NormalizeCode("  abc123-xyz789\n"))
}

func TestSignAndVerify(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sig := SignCode("s3cret", "ABC123-XYZ789", createdAt)

	assert.Len(t, sig, 64)
	assert.True(t, VerifyCodeSignature("s3cret", "ABC123-XYZ789", createdAt, sig))
	// Sub-second precision does not affect the signature.
	assert.True(t, VerifyCodeSignature("s3cret", "ABC123-XYZ789", createdAt.Add(999*time.Millisecond), sig))

	assert.False(t, VerifyCodeSignature("other", "ABC123-XYZ789", createdAt, sig))
	assert.False(t, VerifyCodeSignature("s3cret", "ABC123-XYZ780", createdAt, sig))
	assert.False(t, VerifyCodeSignature("s3cret", "ABC123-XYZ789", createdAt.Add(time.Second), sig))
	assert.False(t, VerifyCodeSignature("s3cret", "ABC123-XYZ789", createdAt, "not-hex"))
}
