package typereg

import "fmt"

// MergeConflictError reports two different records for the same type name
// within one platform. The input data must be fixed upstream.
type MergeConflictError struct {
	Platform string
	Name     string
	Stored   Record
	Incoming Record
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("%s: conflicting records for %s: %s vs %s", e.Platform, e.Name, e.Incoming, e.Stored)
}
