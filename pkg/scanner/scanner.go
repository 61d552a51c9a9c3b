package scanner

import (
	"io"
)

// Scanner counts lines, words and bytes in a stream.
type Scanner struct {
	options *options
}

// New creates a new Scanner instance
func New(opts ...Option) *Scanner {
	return &Scanner{
		options: makeOptions(opts...),
	}
}

// Count reads r to exhaustion and returns the accumulated counts.
//
// The stream is consumed in fixed-size chunks; a read error or a
// zero-length read ends the scan with whatever was counted so far, the
// same as a normal end of stream. Count therefore never fails.
func (s *Scanner) Count(r io.Reader) Counts {
	buf := make([]byte, s.options.bufferSize)
	var counts Counts
	inWord := false

	for {
		n, err := r.Read(buf)
		counts.Chars += int64(n)
		for _, b := range buf[:n] {
			switch Classify(b) {
			case ClassWord:
				if !inWord {
					counts.Words++
					inWord = true
				}
			case ClassNewline:
				counts.Lines++
				inWord = false
			case ClassBlank:
				inWord = false
			case ClassOther:
				// inert: does not start or end a word
			}
		}
		if err != nil || n == 0 {
			break
		}
	}
	// A source ending mid-word needs no fixup: the word was counted
	// when its first byte was seen.
	return counts
}
