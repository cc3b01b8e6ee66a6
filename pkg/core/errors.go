package core

import "fmt"

// Kind classifies the failures the core pipeline can report. Parsers and
// the CLI treat all failures as fatal; within the core, every failure
// surfaces as one of these through a normal error return.
type Kind int

const (
	// InvalidInput covers non-positive patch sizes, non-positive iteration
	// counts, and other malformed configuration the core defensively
	// re-checks even though the parser is nominally responsible for it.
	InvalidInput Kind = iota

	// DegenerateGeometry marks a quad with a zero-length edge or zero-area
	// face. Callers are expected to skip the offending quad with a warning
	// rather than abort the whole solve.
	DegenerateGeometry

	// NumericBreakdown marks a hemicube whose multiplier tables summed to
	// zero during normalization — not reachable with the default geometry,
	// but checked for defensively since it would otherwise divide by zero.
	NumericBreakdown

	// Inconsistent marks a patch whose viewable and form-factor sequences
	// have mismatched lengths after being loaded from disk.
	Inconsistent
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case DegenerateGeometry:
		return "DegenerateGeometry"
	case NumericBreakdown:
		return "NumericBreakdown"
	case Inconsistent:
		return "Inconsistent"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by the core pipeline stages.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewInvalidInput constructs an InvalidInput error
func NewInvalidInput(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewDegenerateGeometry constructs a DegenerateGeometry error
func NewDegenerateGeometry(format string, args ...interface{}) *Error {
	return &Error{Kind: DegenerateGeometry, Message: fmt.Sprintf(format, args...)}
}

// NewNumericBreakdown constructs a NumericBreakdown error
func NewNumericBreakdown(format string, args ...interface{}) *Error {
	return &Error{Kind: NumericBreakdown, Message: fmt.Sprintf(format, args...)}
}

// NewInconsistent constructs an Inconsistent error
func NewInconsistent(format string, args ...interface{}) *Error {
	return &Error{Kind: Inconsistent, Message: fmt.Sprintf(format, args...)}
}

// Is allows errors.Is(err, core.NewInvalidInput("")) style checks by comparing
// Kind rather than identity. errors.As should be used to recover the
// *Error itself when the message is needed.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
