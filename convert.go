package yopt

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Converter converts UTF-16 text to UTF-8 and back. It is used for option
// values which must be interpreted as Go strings (integers, booleans) and to
// look up options by a Go string key. The default is UTF16Converter; a
// replacement can be set with Config.SetConverter.
type Converter interface {
	Narrow(wide []uint16) (string, error)
	Widen(narrow string) ([]uint16, error)
}

// UTF16Converter converts little-endian UTF-16 code units. A byte order mark is
// treated as an ordinary character. Unpaired surrogates and invalid UTF-8 are
// errors.
type UTF16Converter struct{}

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Narrow converts wide to UTF-8.
func (UTF16Converter) Narrow(wide []uint16) (string, error) {
	if i := unpairedSurrogate(wide); i >= 0 {
		return "", fmt.Errorf("%w: unpaired surrogate %#04x at %d", ErrConversion, wide[i], i)
	}
	b := make([]byte, 2*len(wide))
	for i, u := range wide {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	s, _, err := transform.Bytes(utf16LE.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return string(s), nil
}

// Widen converts narrow to UTF-16.
func (UTF16Converter) Widen(narrow string) ([]uint16, error) {
	if !utf8.ValidString(narrow) {
		return nil, fmt.Errorf("%w: invalid UTF-8 in %q", ErrConversion, narrow)
	}
	b, _, err := transform.Bytes(utf16LE.NewEncoder(), []byte(narrow))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}
	wide := make([]uint16, len(b)/2)
	for i := range wide {
		wide[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return wide, nil
}

// unpairedSurrogate returns the index of the first surrogate not part of a
// valid pair, or -1.
func unpairedSurrogate(wide []uint16) int {
	for i := 0; i < len(wide); i++ {
		switch u := wide[i]; {
		case u >= 0xd800 && u < 0xdc00:
			if i+1 == len(wide) || wide[i+1] < 0xdc00 || wide[i+1] >= 0xe000 {
				return i
			}
			i++
		case u >= 0xdc00 && u < 0xe000:
			return i
		}
	}
	return -1
}

// narrow returns s as a Go string. Narrow text is copied as is, UTF-16 goes
// through conv, UTF-32 must hold valid code points.
func narrow[C Char](conv Converter, s []C) (string, error) {
	switch v := any(s).(type) {
	case []byte:
		return string(v), nil
	case []uint16:
		return conv.Narrow(v)
	case []rune:
		for i, r := range v {
			if !utf8.ValidRune(r) {
				return "", fmt.Errorf("%w: invalid code point %#x at %d", ErrConversion, r, i)
			}
		}
		return string(v), nil
	}
	panic(fmt.Errorf("bug: unexpected text type %T", s))
}

// widen is the reverse of narrow.
func widen[C Char](conv Converter, s string) ([]C, error) {
	var w interface{}
	switch any(*new(C)).(type) {
	case byte:
		w = []byte(s)
	case uint16:
		u, err := conv.Widen(s)
		if err != nil {
			return nil, err
		}
		w = u
	case rune:
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: invalid UTF-8 in %q", ErrConversion, s)
		}
		w = []rune(s)
	}
	return w.([]C), nil
}
