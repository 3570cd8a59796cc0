package yopt

// Char is the set of character types the tokenizer operates on: byte for
// UTF-8 text, uint16 for UTF-16 text and rune for UTF-32 text.
type Char interface {
	byte | uint16 | rune
}

// sink receives what the tokenizer finds. Values are views into the input.
type sink[C Char] interface {
	// arg receives a positional argument.
	arg(value []C)
	// option receives a key and its value. A value following an equal sign
	// replaces any previous value of the key; a flag (replace is false) is
	// only recorded if the key is not yet present.
	option(key, value []C, replace bool)
}

type scanState uint8

const (
	stateNone          scanState = iota
	stateKeyPrefix               // seen one dash
	stateLongKeyPrefix           // seen two dashes
	stateKey
	stateValue
	stateQuotedValue
)

var stateNames = [...]string{
	"none",
	"key prefix",
	"long key prefix",
	"key",
	"value",
	"quoted value",
}

func (s scanState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// tokenizer classifies the characters of an input into keys, values and
// positional arguments in a single forward pass.
type tokenizer[C Char] struct {
	dash      C
	quote     C
	equal     C
	maxLength int
	sink      sink[C]
}

func newTokenizer[C Char](config *Config, s sink[C]) *tokenizer[C] {
	return &tokenizer[C]{
		dash:      C(config.GetSpecial(SpecDash)),
		quote:     C(config.GetSpecial(SpecQuote)),
		equal:     C(config.GetSpecial(SpecEqual)),
		maxLength: config.MaxLength(),
		sink:      s,
	}
}

func isWhitespace[C Char](c C) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// scan tokenizes input up to its end, the first zero character or the
// configured maximum length, whichever comes first. When single is true,
// white space does not terminate a value: this is the mode for one element of
// an argument vector, already delimited by the shell.
func (t *tokenizer[C]) scan(input []C, single bool) {
	limit := len(input)
	if limit > t.maxLength {
		limit = t.maxLength
	}

	state := stateNone
	start := 0
	var key []C

	i := 0
	for ; i < limit && input[i] != 0; i++ {
		c := input[i]
		switch state {

		case stateNone:
			switch {
			case isWhitespace(c):
			case c == t.dash:
				state = stateKeyPrefix
				if len(key) > 0 {
					t.flag(key)
					key = nil
				}
			case c == t.quote:
				state = stateQuotedValue
				start = i
			default:
				state = stateValue
				start = i
			}

		case stateKeyPrefix:
			switch {
			case c == t.dash:
				state = stateLongKeyPrefix
			case isWhitespace(c):
				state = stateNone
			default:
				state = stateKey
				start = i
			}

		case stateLongKeyPrefix:
			if isWhitespace(c) {
				state = stateNone
			} else {
				state = stateKey
				start = i
			}

		case stateKey:
			switch {
			case isWhitespace(c):
				state = stateNone
				t.flag(input[start:i])
			case c == t.equal:
				state = stateValue
				key = input[start:i]
				start = i + 1
			}

		case stateValue:
			switch {
			case c == t.quote && start == i:
				state = stateQuotedValue
			case isWhitespace(c) && !single:
				state = stateNone
				t.value(key, input[start:i])
				key = nil
			}

		case stateQuotedValue:
			if c == t.quote {
				state = stateNone
				t.value(key, input[start+1:i])
				key = nil
			}
		}
	}

	if i == t.maxLength && i < len(input) && input[i] != 0 {
		Debug.Printf("input truncated at %d characters (state: %v)", i, state)
	}

	// end of input: flush the token in progress
	switch state {
	case stateKey:
		if start < i {
			t.flag(input[start:i])
		}
	case stateValue:
		if len(key) > 0 || start < i {
			t.value(key, input[start:i])
		}
	case stateQuotedValue:
		t.value(key, input[start+1:i])
	}
}

func (t *tokenizer[C]) flag(key []C) {
	Debug.Printf("flag (%d characters)", len(key))
	t.sink.option(key, key[len(key):], false)
}

// value stores v for key, or as a positional argument when there is no key.
func (t *tokenizer[C]) value(key, v []C) {
	if len(key) > 0 {
		Debug.Printf("option (%d characters) value (%d characters)", len(key), len(v))
		t.sink.option(key, v, true)
		return
	}
	Debug.Printf("positional argument (%d characters)", len(v))
	t.sink.arg(v)
}
