package yopt

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

var tokTestData = []struct {
	input  string
	expect string
}{
	{"", ""},
	{"foo", "<foo> "},
	{" foo bar", "<foo> <bar> "},
	{"-a", "<a>=<> "},
	{"--a", "<a>=<> "},
	{"--a=b", "<a>=<b> "},
	{"-a=b", "<a>=<b> "},
	{"--a=b c", "<c> <a>=<b> "},
	{"a=b", "<a=b> "},
	{"-a-b", "<a-b>=<> "},
	{"--k=v=w", "<k>=<v=w> "},
	{`--t="x x" "x x x"`, "<x x x> <t>=<x x> "},
	{`--first-option --second-option=value "first quoted argument"`,
		"<first quoted argument> <first-option>=<> <second-option>=<value> "},
	{"\t--x\r\n--y=1\n", "<x>=<> <y>=<1> "},
	{"--k=1 --k=2", "<k>=<2> "},
	{"--k=1 --k", "<k>=<1> "},
	{"--k --k=1", "<k>=<1> "},
	{`""`, "<> "},
	{`"`, "<> "},
	{`--k=""`, "<k>=<> "},
	{`--k="`, "<k>=<> "},
	{"--k=", "<k>=<> "},
	{"--k= v", "<v> <k>=<> "},
	{`"abc`, "<abc> "},
	{`--k="a b`, "<k>=<a b> "},
	{`a"b"`, `<a"b"> `},
	{`--k=a"b`, `<k>=<a"b> `},
	{`"a b"c`, "<a b> <c> "},
	{"--k = v", "<=> <v> <k>=<> "},
	{"- a", "<a> "},
	{"--", ""},
	{"-- a", "<a> "},
	{"---a", "<-a>=<> "},
	{"x\x00y", "<x> "},
	{"--k=v\x00 --z", "<k>=<v> "},
	// no guard against an empty key: the equal sign becomes part of the key
	{"--=value", "<=value>=<> "},
	{"-=value", "<=value>=<> "},
	{"--a==b", "<a>=<=b> "},
	{"--ключ=значение 日本語", "<日本語> <ключ>=<значение> "},
}

var tokArgsTestData = []struct {
	input  []string
	expect string
}{
	{nil, ""},
	{[]string{"prog"}, ""},
	{[]string{"prog", ""}, ""},
	{[]string{"prog", "--t=42", "--u", `"param param"`, "param param"},
		"<param param> <param param> <t>=<42> <u>=<> "},
	{[]string{"prog", "--name=John Doe"}, "<name>=<John Doe> "},
	{[]string{"prog", "--name=John", "Doe"}, "<Doe> <name>=<John> "},
	{[]string{"prog", "a b"}, "<a b> "},
	{[]string{"prog", `"a b" c`}, "<a b> <c> "},
	{[]string{"prog", `--k="a b"`}, "<k>=<a b> "},
	{[]string{"prog", "--k", "--k=1"}, "<k>=<1> "},
	{[]string{"prog", "--k=v w", "--z"}, "<k>=<v w> <z>=<> "},
	{[]string{"--skipped", "--kept"}, "<kept>=<> "},
}

func TestTokenizerOnGenericData(t *testing.T) {
	for _, data := range tokTestData {
		if s := Parse(data.input).String(); s != data.expect {
			t.Errorf(`"%s": result: %s expected: %s`, data.input, s, data.expect)
		}
	}
}

func TestTokenizerOnWideData(t *testing.T) {
	for _, data := range tokTestData {
		wide := utf16.Encode([]rune(data.input))
		if s := New(wide).String(); s != data.expect {
			t.Errorf(`UTF-16 "%s": result: %s expected: %s`, data.input, s, data.expect)
		}
		if s := New([]rune(data.input)).String(); s != data.expect {
			t.Errorf(`UTF-32 "%s": result: %s expected: %s`, data.input, s, data.expect)
		}
	}
}

func TestTokenizerOnArgs(t *testing.T) {
	for _, data := range tokArgsTestData {
		if s := ParseArgs(data.input).String(); s != data.expect {
			t.Errorf(`%q: result: %s expected: %s`, data.input, s, data.expect)
		}
	}
}

func TestTokenizerSpansAreViews(t *testing.T) {
	input := []byte(`--k=value "arg"`)
	o := New(input)
	v, ok := o.Get("k")
	assert.True(t, ok)
	a, err := o.Arg(0)
	assert.NoError(t, err)
	input[4] = 'V'
	input[11] = 'A'
	assert.Equal(t, "Value", string(v))
	assert.Equal(t, "Arg", string(a))
}

func TestTokenizerMaxLength(t *testing.T) {
	c := NewConfig()
	c.SetMaxLength(5)
	assert.Equal(t, "<abc>=<> ", CustomNew(c, []byte("--abc=def")).String())
	assert.Equal(t, "<k>=<ab> ", CustomNew(c, []byte("-k=abcdef")).String())
	assert.Equal(t, "<abcde> ", CustomNew(c, []byte("abcdefgh ijk")).String())
	assert.Equal(t, "<k>=<a> ", CustomNew(c, []byte(`-k="ab`)).String())
	// the bound applies to each element
	assert.Equal(t, "<abcde> <fghij> ", CustomNewArgs(c, [][]byte{
		[]byte("prog"),
		[]byte("abcdefgh"),
		[]byte("fghijklm"),
	}).String())
}

func TestTokenizerDefaultMaxLength(t *testing.T) {
	long := strings.Repeat("x", DefaultMaxLength+100)
	o := Parse(long + " --after")
	assert.Equal(t, 1, o.ArgCount())
	a, err := o.ArgText(0)
	assert.NoError(t, err)
	assert.Len(t, a, DefaultMaxLength)
	assert.False(t, o.Has("after"))
}

func TestTokenizerCustomSpecials(t *testing.T) {
	c := NewConfig()
	c.SetSpecial(SpecDash, '/')
	c.SetSpecial(SpecEqual, ':')
	c.SetSpecial(SpecQuote, '\'')
	o := CustomNew(c, []byte(`/k:v //flag 'a b' -x "y z"`))
	assert.Equal(t, `<a b> <-x> <"y> <z"> <flag>=<> <k>=<v> `, o.String())
}

func TestTokenizerDebugLog(t *testing.T) {
	var buf bytes.Buffer
	Debug.SetOutput(&buf)
	defer Debug.SetOutput(io.Discard)

	c := NewConfig()
	c.SetMaxLength(3)
	CustomNew(c, []byte("abcdef"))
	assert.Contains(t, buf.String(), "input truncated at 3 characters (state: value)")
	assert.Contains(t, buf.String(), "positional argument (3 characters)")

	buf.Reset()
	CustomNew(c, []byte("abc"))
	assert.NotContains(t, buf.String(), "truncated")
}

type recorder struct {
	events []string
}

func (r *recorder) arg(value []byte) {
	r.events = append(r.events, "arg:"+string(value))
}

func (r *recorder) option(key, value []byte, replace bool) {
	kind := "flag:"
	if replace {
		kind = "option:"
	}
	r.events = append(r.events, kind+string(key)+"="+string(value))
}

func TestTokenizerEvents(t *testing.T) {
	r := &recorder{}
	newTokenizer[byte](NewConfig(), r).scan([]byte(`a --b --c=d "e f" --g="h" i`), false)
	assert.Equal(t, []string{
		"arg:a",
		"flag:b=",
		"option:c=d",
		"arg:e f",
		"option:g=h",
		"arg:i",
	}, r.events)
}

func TestScanStateString(t *testing.T) {
	assert.Equal(t, "quoted value", stateQuotedValue.String())
	assert.Equal(t, "unknown", scanState(42).String())
}
