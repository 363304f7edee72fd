package assembler

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failure categories. Errors returned by this package wrap one of these;
// use errors.Cause or errors.Is to test for them.
var (
	ErrFileNotFound       = errors.New("file not found")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidRegister    = errors.New("invalid register")
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrInvalidOpcode      = errors.New("invalid opcode")
	ErrInvalidDefine      = errors.New("invalid define")
	ErrInvalidDirective   = errors.New("invalid directive")
	ErrDuplicateLabel     = errors.New("duplicate label")
)

// Position defines the source position of a node.
type Position struct {
	File string // File in which the node was defined.
	Line int    // Line number at which the node starts.
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Error defines an assembly error with source context.
type Error struct {
	Pos Position
	Err error
}

// newError wraps err with the position of the node that caused it.
func newError(pos Position, err error) *Error {
	return &Error{Pos: pos, Err: err}
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Err.Error()
}

// Cause returns the underlying error, for errors.Cause.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error, for errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }
