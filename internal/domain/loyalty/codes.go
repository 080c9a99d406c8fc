package loyalty

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// CodeAlphabet is the symbol set of card and redemption codes.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	cardCodeGroupLen   = 6
	cardCodeSymbols    = 2 * cardCodeGroupLen
	redemptionSymbols  = 8
	redemptionPrefix   = "RWD-"
	acceptedByteCutoff = 252 // largest multiple of 36 below 256
)

// NewCardCode draws a XXXXXX-XXXXXX code from r. Callers pass crypto/rand.Reader.
func NewCardCode(r io.Reader) (string, error) {
	symbols, err := randomSymbols(r, cardCodeSymbols)
	if err != nil {
		return "", err
	}

	return symbols[:cardCodeGroupLen] + "-" + symbols[cardCodeGroupLen:], nil
}

// NewRedemptionCode draws a RWD-XXXXXXXX code from r.
func NewRedemptionCode(r io.Reader) (string, error) {
	symbols, err := randomSymbols(r, redemptionSymbols)
	if err != nil {
		return "", err
	}

	return redemptionPrefix + symbols, nil
}

// randomSymbols uses rejection sampling so every symbol is equally likely.
func randomSymbols(r io.Reader, n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)

	buf := make([]byte, n)
	for sb.Len() < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		for _, b := range buf {
			if b >= acceptedByteCutoff {
				continue
			}
			sb.WriteByte(CodeAlphabet[int(b)%len(CodeAlphabet)])
			if sb.Len() == n {
				break
			}
		}
	}

	return sb.String(), nil
}

// NormalizeCode trims and upper-cases a scanned or typed code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// SignCode returns hex(HMAC-SHA256(secret, code + ":" + unix seconds of createdAt)).
func SignCode(secret, code string, createdAt time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(code + ":" + strconv.FormatInt(createdAt.Unix(), 10)))

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyCodeSignature recomputes the signature and compares it in constant time.
func VerifyCodeSignature(secret, code string, createdAt time.Time, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString(SignCode(secret, code, createdAt))

	return hmac.Equal(got, want)
}
