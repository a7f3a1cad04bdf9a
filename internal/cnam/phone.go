package cnam

import (
	"fmt"
	"strings"

	"github.com/tbckr/cnam/internal/apperr"
)

// PhoneDigits is the number of digits OpenCNAM expects in a phone number.
const PhoneDigits = 10

// NormalizePhoneNumber strips every non-digit from raw and returns its rightmost
// PhoneDigits digits. Longer inputs lose their prefix (a leading country code
// "1", or stray digits mixed into noise). Fewer than PhoneDigits digits is an error.
func NormalizePhoneNumber(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	digits := b.String()
	if len(digits) < PhoneDigits {
		return "", fmt.Errorf("%w: phone number must contain at least %d digits, got %d",
			apperr.ErrInvalidInput, PhoneDigits, len(digits))
	}
	return digits[len(digits)-PhoneDigits:], nil
}
