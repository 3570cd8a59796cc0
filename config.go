package yopt

import (
	"fmt"
	"strings"
	"unicode"
)

type specConstant uint8

// Special character constants for Config methods.
const (
	SpecDash specConstant = iota
	SpecQuote
	SpecEqual
)

// DefaultMaxLength is the number of characters scanned per parse call unless
// configured otherwise. Input beyond the bound is ignored.
const DefaultMaxLength = 4096

// Config holds configurable special characters, the scan length bound and the
// converter used for wide text.
type Config struct {
	specList  [3]rune
	maxLength int
	converter Converter
}

var specialDescription = [3]string{
	"dash",
	"quote",
	"equal sign",
}

// NewConfig returns the address of a new default Config.
func NewConfig() *Config {
	return &Config{
		specList:  [3]rune{'-', '"', '='},
		maxLength: DefaultMaxLength,
		converter: UTF16Converter{},
	}
}

func (c *Config) copy() *Config {
	var sc [3]rune
	copy(sc[:], c.specList[:])
	return &Config{specList: sc, maxLength: c.maxLength, converter: c.converter}
}

// GetSpecial returns the character currently corresponding to a special
// character identified by its constant.
func (c *Config) GetSpecial(which specConstant) rune {
	switch which {
	case SpecDash, SpecQuote, SpecEqual:
		return c.specList[which]
	}
	panic(fmt.Errorf(`unknown special: %v`, which))
}

// SetSpecial changes a special character identified by a constant. Panics if
// ch is invalid, or is already used, or if spec is unknown.
func (c *Config) SetSpecial(spec specConstant, ch rune) {
	switch spec {
	case SpecDash:
	case SpecQuote:
	case SpecEqual:
	default:
		panic(fmt.Errorf(`unknown special: %v`, spec))
	}
	if !validSpecial(ch) {
		panic(fmt.Errorf("cannot use '%c' as %s: not a valid special character", ch, specialDescription[spec]))
	}
	if c.isDuplicate(spec, ch) {
		panic(fmt.Errorf("cannot use '%c' as %s: already used", ch, specialDescription[spec]))
	}
	c.specList[spec] = ch
}

func (c *Config) isDuplicate(spec specConstant, ch rune) bool {
	for i, r := range c.specList {
		if specConstant(i) != spec && r == ch {
			return true
		}
	}
	return false
}

// MaxLength returns the maximum number of characters scanned per parse call.
func (c *Config) MaxLength() int {
	return c.maxLength
}

// SetMaxLength changes the maximum number of characters scanned per parse
// call. Panics if n is less than 1.
func (c *Config) SetMaxLength(n int) {
	if n < 1 {
		panic(fmt.Errorf("invalid maximum length: %d", n))
	}
	c.maxLength = n
}

// Converter returns the converter used for UTF-16 text.
func (c *Config) Converter() Converter {
	return c.converter
}

// SetConverter replaces the converter used for UTF-16 text. Panics if conv is
// nil.
func (c *Config) SetConverter(conv Converter) {
	if conv == nil {
		panic(fmt.Errorf("converter is nil"))
	}
	c.converter = conv
}

func (c *Config) String() string {
	var b strings.Builder
	for i, r := range c.specList {
		fmt.Fprintf(&b, "  %-8c %s\n", r, specialDescription[i])
	}
	fmt.Fprintf(&b, "  max length: %d\n", c.maxLength)
	return b.String()
}

// validSpecial returns true iff char is valid as a special character.
// Valid special characters are printable ASCII, not white space, not a letter
// or a digit.
func validSpecial(char rune) bool {
	return char < unicode.MaxASCII && unicode.IsGraphic(char) && !unicode.IsSpace(char) &&
		!unicode.IsLetter(char) && !unicode.IsDigit(char)
}
