package domain

import "fmt"

// DecodeError reports that no candidate text encoding could decode a source
// file. Fatal for that file only; callers skip the file and continue with
// the rest of the batch.
type DecodeError struct {
	Path      string
	Encodings []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: no candidate encoding succeeded (tried %v)", e.Path, e.Encodings)
}

// MalformedOutputError reports extraction output that failed to parse even
// after repair and one full retry. The document degrades to zero records.
type MalformedOutputError struct {
	Document string
	Err      error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed extraction output for %s: %v", e.Document, e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// MissingInputError reports that a downstream stage ran before its expected
// input file was produced.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input file: %s", e.Path)
}
