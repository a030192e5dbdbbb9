// Package domain holds the card value objects shared by the bridge and the SDK adapter.
package domain

import (
	"strings"
	"time"
	"unicode"
)

// Card type codes as the processor reports them.
const (
	CardTypeVisa       = "vi"
	CardTypeMastercard = "mc"
	CardTypeAmex       = "ax"
	CardTypeDiners     = "di"
	CardTypeDiscover   = "dc"
	CardTypeJCB        = "jc"
	CardTypeMaestro    = "ms"
)

// Card is the raw card submitted for tokenization.
type Card struct {
	Number      string
	ExpiryMonth int
	ExpiryYear  int
	CVC         string
	HolderName  string
}

// CardBuilder assembles a Card from caller input.
type CardBuilder struct {
	card Card
}

func NewCardBuilder(number string, expMonth, expYear int, cvc string) *CardBuilder {
	return &CardBuilder{card: Card{
		Number:      normalizeNumber(number),
		ExpiryMonth: expMonth,
		ExpiryYear:  expYear,
		CVC:         strings.TrimSpace(cvc),
	}}
}

func (b *CardBuilder) Name(holderName string) *CardBuilder {
	b.card.HolderName = strings.TrimSpace(holderName)
	return b
}

func (b *CardBuilder) Build() *Card {
	c := b.card
	return &c
}

// Type returns the brand code detected from the number prefix, or "".
func (c *Card) Type() string {
	return detectType(c.Number)
}

// Last4 returns the trailing four digits of the number.
func (c *Card) Last4() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

// ValidateNumber checks length, brand length rules and the Luhn checksum.
func (c *Card) ValidateNumber() bool {
	n := c.Number
	if len(n) < 12 || len(n) > 19 || !isDigits(n) {
		return false
	}

	switch c.Type() {
	case CardTypeAmex:
		if len(n) != 15 {
			return false
		}
	case CardTypeDiners:
		if len(n) != 14 {
			return false
		}
	case CardTypeVisa:
		if len(n) != 13 && len(n) != 16 && len(n) != 19 {
			return false
		}
	case CardTypeMaestro:
	case CardTypeMastercard, CardTypeDiscover, CardTypeJCB:
		if len(n) != 16 {
			return false
		}
	}

	return luhnValid(n)
}

// ValidateExpiryDate reports whether the card is still valid now.
func (c *Card) ValidateExpiryDate() bool {
	return c.ValidateExpiryDateAt(time.Now())
}

// ValidateExpiryDateAt reports whether the card has not expired at the given
// instant. A card is valid through the last instant of its expiry month (UTC).
func (c *Card) ValidateExpiryDateAt(at time.Time) bool {
	if c.ExpiryMonth < 1 || c.ExpiryMonth > 12 || c.ExpiryYear < 0 {
		return false
	}

	year := c.ExpiryYear
	if year < 100 {
		year += 2000
	}

	endOfMonth := time.Date(year, time.Month(c.ExpiryMonth), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, 0).
		Add(-time.Nanosecond)

	return !at.UTC().After(endOfMonth)
}

// ValidateCVC checks the security code length for the card brand.
func (c *Card) ValidateCVC() bool {
	if !isDigits(c.CVC) {
		return false
	}
	if c.Type() == CardTypeAmex {
		return len(c.CVC) == 4
	}
	return len(c.CVC) == 3
}

func normalizeNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(number))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func luhnValid(number string) bool {
	sum, dbl := 0, false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum%10 == 0
}

func detectType(number string) string {
	if !isDigits(number) {
		return ""
	}

	switch {
	case hasPrefix(number, "34", "37"):
		return CardTypeAmex
	case hasPrefix(number, "300", "301", "302", "303", "304", "305", "36", "38", "39"):
		return CardTypeDiners
	case hasPrefix(number, "6011", "644", "645", "646", "647", "648", "649", "65"):
		return CardTypeDiscover
	case prefixInRange(number, 4, 3528, 3589):
		return CardTypeJCB
	case prefixInRange(number, 2, 51, 55), prefixInRange(number, 4, 2221, 2720):
		return CardTypeMastercard
	case hasPrefix(number, "50", "56", "57", "58", "6"):
		return CardTypeMaestro
	case hasPrefix(number, "4"):
		return CardTypeVisa
	}
	return ""
}

func hasPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func prefixInRange(s string, width, lo, hi int) bool {
	if len(s) < width {
		return false
	}
	v := 0
	for i := 0; i < width; i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v >= lo && v <= hi
}
