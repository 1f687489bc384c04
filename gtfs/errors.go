package gtfs

import "fmt"

// NoActiveServiceError reports that no service runs on the requested date.
// Terminal for the whole request: with an empty service set there is nothing
// to filter.
type NoActiveServiceError struct {
	Date string // display form, DD/MM/YYYY
}

func (e *NoActiveServiceError) Error() string {
	return fmt.Sprintf("no train services run on %s", e.Date)
}

// MissingFeedFileError reports that a mandatory feed member (trips.txt or
// stop_times.txt) is absent from the bundle.
type MissingFeedFileError struct {
	Name string
}

func (e *MissingFeedFileError) Error() string {
	return fmt.Sprintf("feed bundle is missing required file %s", e.Name)
}

// MalformedColumnError reports that a mandatory file's header lacks a
// required column. The optional calendar files tolerate this; trips.txt and
// stop_times.txt do not.
type MalformedColumnError struct {
	File   string
	Column string
}

func (e *MalformedColumnError) Error() string {
	return fmt.Sprintf("%s: required column %q not found in header", e.File, e.Column)
}

// ParseError reports a numeric field that failed to parse. A bad
// stop_sequence aborts the whole request rather than skipping the row, so
// corrupt data cannot silently drop stops.
type ParseError struct {
	File  string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: bad %s value %q: %v", e.File, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
