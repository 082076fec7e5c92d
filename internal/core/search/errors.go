package search

import (
	"errors"
	"fmt"
)

var ErrFold = errors.New("case fold failed")

// FoldError reports a case folding failure. Line is 1-based, or 0 when no
// line number is known (the query, or a single FindMatches call).
type FoldError struct {
	Line int
	Err  error
}

func (e *FoldError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("fold: %v", e.Err)
	}
	return fmt.Sprintf("fold line %d: %v", e.Line, e.Err)
}

func (e *FoldError) Unwrap() error { return e.Err }

func (e *FoldError) Is(target error) bool { return target == ErrFold }
