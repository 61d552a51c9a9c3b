package cmd

import "fmt"

// Status is the accumulated non-fatal error bitmask, returned as the
// process exit code. Bits are only ever OR'd in, never cleared.
type Status int

const (
	// StatusUsageError is set when the selector contained an
	// unrecognized character.
	StatusUsageError Status = 1 << iota
	// StatusCannotOpen is set when at least one file failed to open.
	StatusCannotOpen
)

// ExitError carries a non-zero Status out of a command run so that the
// process can exit with it.
type ExitError struct {
	Status Status
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", int(e.Status))
}
