package domain

import (
	"encoding/json"
	"strings"
)

// Card brands recognised by CardNumber.Brand.
const (
	CardBrandVisa            = "visa"
	CardBrandMastercard      = "mastercard"
	CardBrandAmericanExpress = "american_express"
	CardBrandOther           = "other"
)

const (
	minCardDigits = 12
	maxCardDigits = 19
)

// CardNumber is a payment card number. Surrounding whitespace is ignored.
type CardNumber string

func (c CardNumber) digits() string {
	return strings.TrimSpace(string(c))
}

// Check validates the number: digits only, 12 to 19 of them, a length that
// matches the brand and a valid Luhn checksum.
func (c CardNumber) Check() error {
	d := c.digits()
	for _, r := range d {
		if r < '0' || r > '9' {
			return ErrCardNotDigits
		}
	}
	if len(d) < minCardDigits || len(d) > maxCardDigits {
		return ErrCardLength
	}
	if !luhnValid(d) {
		return ErrCardLuhn
	}

	switch c.Brand() {
	case CardBrandVisa:
		if len(d) != 13 && len(d) != 16 && len(d) != 19 {
			return ErrCardLength
		}
	case CardBrandMastercard:
		if len(d) != 16 {
			return ErrCardLength
		}
	case CardBrandAmericanExpress:
		if len(d) != 15 {
			return ErrCardLength
		}
	}
	return nil
}

// Brand infers the issuing network from the number prefix.
func (c CardNumber) Brand() string {
	d := c.digits()
	switch {
	case strings.HasPrefix(d, "4"):
		return CardBrandVisa
	case len(d) >= 2 && d[:2] >= "51" && d[:2] <= "55":
		return CardBrandMastercard
	case len(d) >= 4 && d[:4] >= "2221" && d[:4] <= "2720":
		return CardBrandMastercard
	case strings.HasPrefix(d, "34"), strings.HasPrefix(d, "37"):
		return CardBrandAmericanExpress
	default:
		return CardBrandOther
	}
}

// Last4 returns the last four digits.
func (c CardNumber) Last4() string {
	d := c.digits()
	if len(d) <= 4 {
		return d
	}
	return d[len(d)-4:]
}

// Masked replaces every digit but the last four with '*'.
func (c CardNumber) Masked() string {
	d := c.digits()
	if len(d) <= 4 {
		return d
	}
	return strings.Repeat("*", len(d)-4) + d[len(d)-4:]
}

// String implements fmt.Stringer with the masked form.
func (c CardNumber) String() string {
	return c.Masked()
}

// MarshalJSON encodes the masked form so a full number is never written out.
func (c CardNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Masked())
}

func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		n := int(digits[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}
