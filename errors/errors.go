package errors

import "fmt"

// NotFoundError reports an id that did not resolve within the scope
// that was searched (a rep's own portfolio, or the full registry).
type NotFoundError struct {
	Scope string
	ID    int
	Err   error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: id %d not found in %s", e.Err, e.ID, e.Scope)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError wraps a specific error with context about where it occurred.
type ParseError struct {
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v (record: %v)", e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Lookup failures, the only recoverable outcome the engine reports.
var (
	ErrCustomerNotFound = fmt.Errorf("customer not found")
	ErrRepNotFound      = fmt.Errorf("sales rep not found")
	ErrNotCorporate     = fmt.Errorf("customer has no contract to renew")
)

// Scenario-file errors, raised at the parse boundary.
var (
	ErrInvalidFieldCount = fmt.Errorf("invalid field count")
	ErrUnknownOp         = fmt.Errorf("unknown operation")
	ErrInvalidKind       = fmt.Errorf("invalid customer kind")
	ErrInvalidDuration   = fmt.Errorf("invalid duration")
	ErrInvalidEmployees  = fmt.Errorf("invalid employee count")
	ErrInvalidAmount     = fmt.Errorf("invalid amount")
	ErrInvalidID         = fmt.Errorf("invalid id")
	ErrEmptyRecord       = fmt.Errorf("empty record")
)
