package wing

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("invalid wing configuration")
	ErrAttachment    = errors.New("wing segment could not be attached")
)

// ConfigurationError reports malformed or missing segment input. It is raised
// at construction time and names the offending field.
type ConfigurationError struct {
	Segment string
	Field   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Segment != "" && e.Field != "":
		return fmt.Sprintf("segment %q: %s: %s", e.Segment, e.Field, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	default:
		return e.Reason
	}
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// AttachmentError reports that the parent ID of a new segment was not found
// among the segments on its side of the tree.
type AttachmentError struct {
	Segment  string
	ParentID int
	Side     Side
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("could not attach wing segment %q: no %s segment with ID %d", e.Segment, e.Side, e.ParentID)
}

func (e *AttachmentError) Is(target error) bool { return target == ErrAttachment }

// IntegrationError reports a quadrature failure while resolving geometry.
type IntegrationError struct {
	Segment  string
	Quantity string
	Err      error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("segment %q: integrating %s: %v", e.Segment, e.Quantity, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }

func configErr(segment, field, format string, args ...any) error {
	return &ConfigurationError{Segment: segment, Field: field, Reason: fmt.Sprintf(format, args...)}
}
