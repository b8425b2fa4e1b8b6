package jpeghuff

// Error represents a table construction error code.
type Error int

// Error codes.
const (
	ErrNone              Error = 0
	ErrCapacityExceeded  Error = 1
	ErrEmptyTable        Error = 2
	ErrMaxLengthTooSmall Error = 3
	ErrInvalidClass      Error = 4
	ErrInvalidComponent  Error = 5
	ErrDuplicateSymbol   Error = 6
	ErrCollectorClosed   Error = 7
	ErrInvalidTable      Error = 8
)

var errMessages = [9]string{
	"No error",
	"Too many distinct symbols for table",
	"No symbols to encode",
	"Maximum code length too small for symbol count",
	"Invalid table class",
	"Invalid color component",
	"Duplicate symbol in input",
	"Collector closed, call Reset before counting a new frame",
	"Invalid Huffman table",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
