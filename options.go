package yopt

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// entry holds a key and its value as found in the input.
type entry[C Char] struct {
	key   []C
	value []C
}

// Options holds the positional arguments and the options found in a command
// line. It is built once by one of the constructors and never modified
// afterwards, so it can be shared by concurrent readers.
//
// Keys, values and arguments returned as []C are views into the input given to
// the constructor. They remain valid as long as the caller does not modify that
// input, and callers must not modify them either.
type Options[C Char] struct {
	config *Config
	args   [][]C
	opts   map[string]entry[C]
}

// Parse tokenizes a complete command line. White space separates tokens.
// The string is copied, the result does not depend on it.
func Parse(cmdLine string) *Options[byte] {
	return New([]byte(cmdLine))
}

// ParseArgs tokenizes an argument vector, typically os.Args. The first element
// (the program name) is skipped. Every other element is tokenized on its own
// and white space inside an element does not separate tokens. The strings are
// copied, the result does not depend on them.
func ParseArgs(argv []string) *Options[byte] {
	b := make([][]byte, len(argv))
	for i, s := range argv {
		b[i] = []byte(s)
	}
	return NewArgs(b)
}

// New tokenizes a complete command line with a default configuration.
func New[C Char](cmdLine []C) *Options[C] {
	return CustomNew(NewConfig(), cmdLine)
}

// NewArgs tokenizes an argument vector with a default configuration. The
// first element is skipped.
func NewArgs[C Char](argv [][]C) *Options[C] {
	return CustomNewArgs(NewConfig(), argv)
}

// CustomNew tokenizes a complete command line with a specific configuration.
// Because a copy of the configuration is kept and not the original, changes
// to the configuration after the call have no effect on the result.
func CustomNew[C Char](configuration *Config, cmdLine []C) *Options[C] {
	o := newOptions[C](configuration)
	newTokenizer[C](o.config, o).scan(cmdLine, false)
	return o
}

// CustomNewArgs tokenizes an argument vector with a specific configuration.
// The first element is skipped.
func CustomNewArgs[C Char](configuration *Config, argv [][]C) *Options[C] {
	o := newOptions[C](configuration)
	t := newTokenizer[C](o.config, o)
	for i := 1; i < len(argv); i++ {
		t.scan(argv[i], true)
	}
	return o
}

func newOptions[C Char](configuration *Config) *Options[C] {
	return &Options[C]{
		config: configuration.copy(),
		args:   make([][]C, 0),
		opts:   make(map[string]entry[C]),
	}
}

func (o *Options[C]) arg(value []C) {
	o.args = append(o.args, value)
}

func (o *Options[C]) option(key, value []C, replace bool) {
	k := mapKey(key)
	if _, ok := o.opts[k]; ok && !replace {
		return
	}
	o.opts[k] = entry[C]{key: key, value: value}
}

// mapKey encodes characters of any width into a map key without loss.
func mapKey[C Char](s []C) string {
	if b, ok := any(s).([]byte); ok {
		return string(b)
	}
	k := make([]byte, 4*len(s))
	for i, c := range s {
		binary.BigEndian.PutUint32(k[4*i:], uint32(c))
	}
	return string(k)
}

func (o *Options[C]) find(key string) (entry[C], bool) {
	k, err := widen[C](o.config.converter, key)
	if err != nil {
		return entry[C]{}, false
	}
	e, ok := o.opts[mapKey(k)]
	return e, ok
}

// Has returns true iff the option was specified, with or without a value.
func (o *Options[C]) Has(key string) bool {
	_, ok := o.find(key)
	return ok
}

// Get returns the value of an option and true, or nil and false if the option
// was not specified. The value of a flag is empty.
func (o *Options[C]) Get(key string) ([]C, bool) {
	e, ok := o.find(key)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// GetOr returns the value of an option or def if the option was not
// specified.
func (o *Options[C]) GetOr(key string, def []C) []C {
	if v, ok := o.Get(key); ok {
		return v
	}
	return def
}

// Required returns the value of an option. The error wraps ErrMissingOption
// if the option was not specified.
func (o *Options[C]) Required(key string) ([]C, error) {
	v, ok := o.Get(key)
	if !ok {
		return nil, fmt.Errorf(`option "%s": %w`, key, ErrMissingOption)
	}
	return v, nil
}

// Text returns the value of an option as a Go string and true. It returns an
// empty string and false if the option was not specified or if its value
// cannot be converted to UTF-8.
func (o *Options[C]) Text(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, err := narrow(o.config.converter, v)
	if err != nil {
		return "", false
	}
	return s, true
}

// Bool returns the boolean value of an option, or def if the option was not
// specified. A flag is true. Otherwise the value must be one of TRUE, true, T,
// YES, yes, Y, y, 1 or FALSE, false, F, NO, no, N, n, 0. For any other value
// the error wraps ErrBoolLiteral.
func (o *Options[C]) Bool(key string, def bool) (bool, error) {
	v, ok := o.Get(key)
	if !ok {
		return def, nil
	}
	if len(v) == 0 {
		return true, nil
	}
	s, err := narrow(o.config.converter, v)
	if err != nil {
		return false, fmt.Errorf(`option "%s": %w (%v)`, key, ErrBoolLiteral, err)
	}
	b, err := parseBool(s)
	if err != nil {
		return false, fmt.Errorf(`option "%s": %w`, key, err)
	}
	return b, nil
}

// Int returns the integer value of an option and true. It returns 0 and false
// if the option was not specified or if the value is not a base 10 integer in
// the range of int. An optional sign is accepted, anything else around the
// digits is not.
func (o *Options[C]) Int(key string) (int, bool) {
	s, ok := o.Text(key)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// IntOr returns the integer value of an option, or def when Int would
// return false.
func (o *Options[C]) IntOr(key string, def int) int {
	if i, ok := o.Int(key); ok {
		return i
	}
	return def
}

// Arg returns the positional argument at index i. The error wraps
// ErrIndexOutOfRange if there is no such argument.
func (o *Options[C]) Arg(i int) ([]C, error) {
	if i < 0 || i >= len(o.args) {
		return nil, fmt.Errorf("argument %d of %d: %w", i, len(o.args), ErrIndexOutOfRange)
	}
	return o.args[i], nil
}

// ArgText returns the positional argument at index i as a Go string.
func (o *Options[C]) ArgText(i int) (string, error) {
	a, err := o.Arg(i)
	if err != nil {
		return "", err
	}
	s, err := narrow(o.config.converter, a)
	if err != nil {
		return "", fmt.Errorf("argument %d: %w", i, err)
	}
	return s, nil
}

// ArgCount returns the number of positional arguments.
func (o *Options[C]) ArgCount() int {
	return len(o.args)
}

// Args returns the positional arguments in input sequence.
func (o *Options[C]) Args() [][]C {
	return append([][]C(nil), o.args...)
}

// Keys returns the keys of all options, sorted. Keys which cannot be converted
// to UTF-8 are shown with their character codes.
func (o *Options[C]) Keys() []string {
	keys := make([]string, 0, len(o.opts))
	for _, e := range o.opts {
		keys = append(keys, o.display(e.key))
	}
	sort.Strings(keys)
	return keys
}

func (o *Options[C]) display(s []C) string {
	if t, err := narrow(o.config.converter, s); err == nil {
		return t
	}
	return fmt.Sprint(s)
}

// String returns positional arguments followed by options sorted by key, in
// the form "<arg> <key>=<value> ".
func (o *Options[C]) String() string {
	var b strings.Builder
	for _, a := range o.args {
		fmt.Fprintf(&b, "<%s> ", o.display(a))
	}
	entries := make([][2]string, 0, len(o.opts))
	for _, e := range o.opts {
		entries = append(entries, [2]string{o.display(e.key), o.display(e.value)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i][0] < entries[j][0] })
	for _, e := range entries {
		fmt.Fprintf(&b, "<%s>=<%s> ", e[0], e[1])
	}
	return b.String()
}
