package scanner

// Counts holds the result of scanning one input source.
type Counts struct {
	Lines int64 // Number of newline bytes seen
	Words int64 // Number of maximal runs of word bytes
	Chars int64 // Total bytes read
}

// Add accumulates another source's counts into c.
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Chars += other.Chars
}
