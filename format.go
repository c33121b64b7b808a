package cadastro

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// NewClientToken generates a client identifier token of the form "AUT-NNNN".
func NewClientToken() (string, error) {
	return newToken("AUT")
}

// NewEstimateToken generates an estimate identifier token of the form "ART-NNNN".
func NewEstimateToken() (string, error) {
	return newToken("ART")
}

func newToken(prefix string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("reading random int: %w", err)
	}
	return fmt.Sprintf("%s-%d", prefix, n.Int64()+1000), nil
}

// FormatPhone reformats the digits of a phone entry into "(XX) X XXXX-XXXX".
// Partial input is formatted as far as the digits go, mirroring what the
// phone field does while the user types. Input with no digits is returned
// unchanged.
func FormatPhone(raw string) string {
	var digits []rune
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return raw
	}
	if len(digits) > 11 {
		digits = digits[:11]
	}

	var b strings.Builder
	b.WriteString("(")
	b.WriteString(string(digits[:min(2, len(digits))]))
	if len(digits) > 2 {
		b.WriteString(") ")
		b.WriteString(string(digits[2:3]))
	}
	if len(digits) > 3 {
		b.WriteString(" ")
		b.WriteString(string(digits[3:min(7, len(digits))]))
	}
	if len(digits) > 7 {
		b.WriteString("-")
		b.WriteString(string(digits[7:]))
	}
	return b.String()
}

// FormatPrice renders centavos as currency text, e.g. 123456 -> "R$ 1.234,56".
func FormatPrice(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, strings.Join(groups, "."), frac)
}

// ParsePrice reads currency text back into centavos. It accepts the formats
// the price field produces and the ones users actually type: "R$ 1.234,56",
// "1234,56", "1234.56" and plain "1234".
func ParsePrice(text string) (int64, error) {
	s := Sanitize(text)
	s = strings.TrimPrefix(s, "R$")
	s = Sanitize(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole := s
	decimal := ""
	if comma := strings.LastIndex(s, ","); comma != -1 {
		// Comma is always the decimal mark; dots before it group thousands.
		whole = s[:comma]
		decimal = s[comma+1:]
	} else if dot := strings.LastIndex(s, "."); dot != -1 {
		// A single dot followed by one or two digits is a decimal mark;
		// otherwise dots group thousands ("1.234").
		if strings.Count(s, ".") == 1 && len(s)-dot-1 <= 2 {
			whole = s[:dot]
			decimal = s[dot+1:]
		}
	}
	whole = strings.ReplaceAll(whole, ".", "")
	if whole == "" {
		whole = "0"
	}

	if len(decimal) > 2 {
		return 0, fmt.Errorf("invalid price %q", text)
	}
	for len(decimal) < 2 {
		decimal += "0"
	}

	var cents int64
	for _, r := range whole + decimal {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid price %q", text)
		}
		cents = cents*10 + int64(r-'0')
	}
	if negative {
		cents = -cents
	}
	return cents, nil
}
