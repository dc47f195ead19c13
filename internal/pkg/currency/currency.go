// Package currency formats monetary amounts for the NVP wire format.
package currency

import (
	"fmt"
	"strings"

	"github.com/oxipay/payflow/internal/pkg/sdkerr"
	"github.com/shopspring/decimal"
)

// DefaultCode is used when no currency code is given
const DefaultCode = "USD"

// DefaultDecimalDigits is the number of digits after the decimal point
const DefaultDecimalDigits = 2

// Currency is an amount plus the policy used to render it. The value is kept
// as a decimal until the request is serialized so the policy can change at
// any point before that.
type Currency struct {
	Value decimal.Decimal
	// Code is the three letter currency code, e.g. USD
	Code string
	// Round and Truncate are mutually exclusive
	Round         bool
	Truncate      bool
	DecimalDigits int
}

// New returns a USD amount with two decimal digits
func New(value decimal.Decimal) *Currency {
	return &Currency{
		Value:         value,
		Code:          DefaultCode,
		DecimalDigits: DefaultDecimalDigits,
	}
}

// NewFromFloat returns a USD amount from a float
func NewFromFloat(value float64) *Currency {
	return New(decimal.NewFromFloat(value))
}

// NewFromString parses a decimal string such as "25.10"
func NewFromString(value string) (*Currency, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("parsing currency value %q: %w", value, err)
	}
	return New(d), nil
}

// WithCode sets the currency code and returns c
func (c *Currency) WithCode(code string) *Currency {
	c.Code = code
	return c
}

// Render returns the canonical wire form of the amount.
func (c *Currency) Render() (string, error) {
	if c.Round && c.Truncate {
		return "", sdkerr.Config(sdkerr.CodeCurrencyProcess, "currency round and truncate cannot both be set")
	}
	if c.DecimalDigits < 0 {
		return "", sdkerr.Config(sdkerr.CodeCurrencyProcess, fmt.Sprintf("invalid number of decimal digits %d", c.DecimalDigits))
	}

	value := c.Value
	places := int32(c.DecimalDigits)
	switch {
	case c.Round:
		value = value.Round(places)
	case c.Truncate:
		value = value.Truncate(places)
	}

	return padFraction(value.String(), c.DecimalDigits), nil
}

// CurrencyCode returns the code, falling back to DefaultCode
func (c *Currency) CurrencyCode() string {
	if c.Code == "" {
		return DefaultCode
	}
	return c.Code
}

// padFraction right-pads the fractional part of s with zeros until it has at
// least digits characters. Longer fractions are left alone.
func padFraction(s string, digits int) string {
	point := strings.IndexByte(s, '.')
	if point < 0 {
		if digits == 0 {
			return s
		}
		return s + "." + strings.Repeat("0", digits)
	}

	fraction := len(s) - point - 1
	if fraction < digits {
		s += strings.Repeat("0", digits-fraction)
	}
	return s
}
