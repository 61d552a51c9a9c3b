package scanner

// Class is the category a single input byte falls into during a scan.
type Class int

const (
	// ClassWord is a printable non-space byte, strictly between space and DEL.
	// It starts a word when the scanner is not already inside one.
	ClassWord Class = iota
	// ClassNewline terminates a line and any current word.
	ClassNewline
	// ClassBlank is a space or horizontal tab; it terminates a word.
	ClassBlank
	// ClassOther covers control bytes, DEL and high-bit bytes. They neither
	// start a word nor terminate one.
	ClassOther
)

// String returns the string representation of the class.
func (c Class) String() string {
	switch c {
	case ClassWord:
		return "word"
	case ClassNewline:
		return "newline"
	case ClassBlank:
		return "blank"
	case ClassOther:
		return "other"
	default:
		return "unknown"
	}
}

// Classify maps a byte to its scanning class. Word bytes are exactly the
// range (0x20, 0x7F); only newline, space and tab act as word terminators.
func Classify(b byte) Class {
	switch {
	case b > 0x20 && b < 0x7F:
		return ClassWord
	case b == '\n':
		return ClassNewline
	case b == ' ' || b == '\t':
		return ClassBlank
	default:
		return ClassOther
	}
}
