package planner

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidInput rejects a malformed verification request.
var ErrInvalidInput = errors.New("invalid planner input")

// GroupStore reads prerequisite groups.
type GroupStore interface {
	// GroupsForDependents returns groups whose dependent course is in courseIDs.
	GroupsForDependents(ctx context.Context, courseIDs []string) ([]GroupRow, error)
	// GroupMembers returns member rows of the given groups.
	GroupMembers(ctx context.Context, groupIDs []int64) ([]MemberRow, error)
}

// Catalog reads course metadata.
type Catalog interface {
	// MatchPattern returns courses whose id starts with prefix and whose
	// code starts with pattern, case-insensitively.
	MatchPattern(ctx context.Context, prefix, pattern string) ([]CourseRef, error)
	// LookupCourses returns display data of known course ids.
	LookupCourses(ctx context.Context, ids []string) (map[string]CourseRef, error)
	// OfferedTerms returns the terms each known course is offered in.
	OfferedTerms(ctx context.Context, ids []string) (map[string][]string, error)
}

// StoreError wraps a failure of GroupStore or Catalog. It aborts verification.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("planner store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidInput}, args...)...)
}
