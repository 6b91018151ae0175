// Package rate - expression parser
package rate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"datarate/core/units"
	"datarate/internal/errors"
)

// Parsed is the structured result of parsing a rate expression
type Parsed struct {
	Amount decimal.Decimal
	Unit   units.ByteUnit
	Period units.Period
}

// Parse reads an expression like "10 MB / s" or "14tb/day" into its
// (amount, unit, period) triple. Whitespace is tolerated anywhere between
// tokens, and the unit may be glued to the amount. Matching is
// case-insensitive for both the unit and the period.
func Parse(input string) (Parsed, error) {
	c := &cursor{buf: []byte(input)}

	c.skipSpace()
	if c.eof() {
		return Parsed{}, errors.MissingArgument("rate expression")
	}

	amount, err := c.number()
	if err != nil {
		return Parsed{}, err
	}

	c.skipSpace()
	unitToken := c.letters()
	unit, ok := units.ParseByteUnit(unitToken)
	if !ok {
		return Parsed{}, errors.UnknownUnit(unitToken, units.AcceptedUnits())
	}

	c.skipSpace()
	if b := c.advance(); b != '/' {
		return Parsed{}, errors.Syntax('/', b)
	}

	c.skipSpace()
	periodToken := c.letters()
	period, ok := units.ParsePeriod(periodToken)
	if !ok {
		return Parsed{}, errors.UnknownPeriod(periodToken, units.AcceptedPeriods())
	}

	c.skipSpace()
	if !c.eof() {
		return Parsed{}, errors.Newf(errors.TypeSyntax,
			"unexpected trailing input %q", string(c.buf[c.pos:]))
	}

	return Parsed{Amount: amount, Unit: unit, Period: period}, nil
}

// cursor is a byte-level scanner over the input expression. peek returns 0
// at end of input, which no valid expression contains.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) peek() byte {
	if c.pos >= len(c.buf) {
		return 0
	}
	return c.buf[c.pos]
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.buf)
}

func (c *cursor) advance() byte {
	b := c.peek()
	if b != 0 {
		c.pos++
	}
	return b
}

func (c *cursor) skipSpace() {
	for !c.eof() && isSpace(c.peek()) {
		c.advance()
	}
}

// letters consumes the longest run of ASCII letters at the cursor
func (c *cursor) letters() string {
	start := c.pos
	for !c.eof() && isLetter(c.peek()) {
		c.advance()
	}
	return string(c.buf[start:c.pos])
}

// number consumes a plain decimal number: optional sign, digits, optional
// fractional part. Scientific notation and negative amounts are rejected,
// a rate is a plain non-negative quantity.
func (c *cursor) number() (decimal.Decimal, error) {
	start := c.pos
	if b := c.peek(); b == '+' || b == '-' {
		c.advance()
	}

	digitsStart := c.pos
	for !c.eof() && isDigit(c.peek()) {
		c.advance()
	}
	if c.pos == digitsStart {
		return decimal.Zero, errors.InvalidAmount(c.wordFrom(start))
	}

	if c.peek() == '.' {
		c.advance()
		fracStart := c.pos
		for !c.eof() && isDigit(c.peek()) {
			c.advance()
		}
		if c.pos == fracStart {
			return decimal.Zero, errors.InvalidAmount(c.wordFrom(start))
		}
	}

	if b := c.peek(); b == 'e' || b == 'E' {
		if next := c.peekAt(1); isDigit(next) || next == '+' || next == '-' {
			return decimal.Zero, errors.Newf(errors.TypeInvalidAmount,
				"%q is not a valid number: scientific notation is not supported", c.wordFrom(start))
		}
	}

	token := string(c.buf[start:c.pos])
	if token[0] == '-' {
		return decimal.Zero, errors.Newf(errors.TypeInvalidAmount,
			"%q is not a valid number: rate cannot be negative", token)
	}

	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, errors.Wrap(errors.TypeInvalidAmount,
			fmt.Sprintf("%q is not a valid number", token), err)
	}
	return amount, nil
}

// wordFrom returns the whitespace- and slash-delimited run starting at the
// given offset, used to name the offending token in error messages
func (c *cursor) wordFrom(start int) string {
	end := start
	for end < len(c.buf) && !isSpace(c.buf[end]) && c.buf[end] != '/' {
		end++
	}
	return string(c.buf[start:end])
}

func (c *cursor) peekAt(offset int) byte {
	if c.pos+offset >= len(c.buf) {
		return 0
	}
	return c.buf[c.pos+offset]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
