package report

// Field identifies one counter to print.
type Field int

const (
	Lines Field = iota
	Words
	Chars
)

// String returns the string representation of the field.
func (f Field) String() string {
	switch f {
	case Lines:
		return "lines"
	case Words:
		return "words"
	case Chars:
		return "chars"
	default:
		return "unknown"
	}
}

// Selector is the ordered list of counters to print. Duplicates are
// allowed; each occurrence prints that counter again.
type Selector []Field

// Default returns the selector used when the caller gives none: lines,
// words, chars in that order.
func Default() Selector {
	return Selector{Lines, Words, Chars}
}

// Parse maps a selector string ('l', 'w', 'c' per counter) to a Selector.
// Unrecognized characters are collected and returned separately; the
// valid characters still take effect in the order given.
func Parse(s string) (Selector, string) {
	sel := make(Selector, 0, len(s))
	var invalid []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'l':
			sel = append(sel, Lines)
		case 'w':
			sel = append(sel, Words)
		case 'c':
			sel = append(sel, Chars)
		default:
			invalid = append(invalid, s[i])
		}
	}
	return sel, string(invalid)
}
