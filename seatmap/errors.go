package seatmap

import "fmt"

// UnsupportedFormatError indicates the document's root element matches
// neither recognized seat-map schema.
type UnsupportedFormatError struct {
	Root string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported XML format: root element %q (use OpenTravel or IATA)", e.Root)
}

// MalformedDocumentError indicates a required element or attribute is
// missing, a numeric field failed to decode, or a cross-reference did not
// resolve. Context names the offending element or identifier.
type MalformedDocumentError struct {
	Context string
	Err     error
}

func (e *MalformedDocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed seat-map document: %s: %v", e.Context, e.Err)
	}
	return fmt.Sprintf("malformed seat-map document: %s", e.Context)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// malformedf builds a MalformedDocumentError with a formatted context.
func malformedf(format string, args ...any) *MalformedDocumentError {
	return &MalformedDocumentError{Context: fmt.Sprintf(format, args...)}
}
