package yopt

// StripQuotes removes one leading double quote if present and one trailing
// double quote if present. Both ends are handled independently, so a value
// with a quote at one end only loses that quote. The result is a view into s.
func StripQuotes[C Char](s []C) []C {
	return stripQuotes(s, '"')
}

// StripQuotesWith is like StripQuotes but removes the quote character of the
// configuration.
func StripQuotesWith[C Char](configuration *Config, s []C) []C {
	return stripQuotes(s, C(configuration.GetSpecial(SpecQuote)))
}

func stripQuotes[C Char](s []C, quote C) []C {
	if len(s) > 0 && s[0] == quote {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == quote {
		s = s[:len(s)-1]
	}
	return s
}
