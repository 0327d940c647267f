package order

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"fooddelivery/internal/pkg/errs"
)

const (
	NumberPrefix       = "FD"
	numberSuffixLength = 5
	numberAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Number is the human facing order identifier, distinct from the storage key.
// Format: "FD" + unix milliseconds + 5 uppercase alphanumerics, e.g. "FD1718031234567K3ZQ9".
type Number string

// NewNumber generates a number for an order placed at now. Two orders placed in the
// same millisecond differ by their random suffix; the store also enforces uniqueness.
func NewNumber(now time.Time) Number {
	var b strings.Builder
	b.Grow(len(NumberPrefix) + 13 + numberSuffixLength)
	b.WriteString(NumberPrefix)
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	for range numberSuffixLength {
		b.WriteByte(numberAlphabet[rand.IntN(len(numberAlphabet))]) //nolint:gosec // not a secret
	}
	return Number(b.String())
}

// ParseNumber validates the shape of an order number.
func ParseNumber(s string) (Number, error) {
	if !LooksLikeNumber(s) {
		return "", errs.NewValueIsInvalidError("orderNumber")
	}
	return Number(s), nil
}

// LooksLikeNumber reports whether s has the "FD<digits><5 alphanumerics>" shape.
func LooksLikeNumber(s string) bool {
	if !strings.HasPrefix(s, NumberPrefix) {
		return false
	}
	rest := s[len(NumberPrefix):]
	if len(rest) <= numberSuffixLength {
		return false
	}
	millis, suffix := rest[:len(rest)-numberSuffixLength], rest[len(rest)-numberSuffixLength:]
	for _, r := range millis {
		if r < '0' || r > '9' {
			return false
		}
	}
	for _, r := range suffix {
		if !strings.ContainsRune(numberAlphabet, r) {
			return false
		}
	}
	return true
}

func (n Number) String() string {
	return string(n)
}
