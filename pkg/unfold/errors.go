package unfold

import (
	"fmt"
	"time"
)

// DegenerateEdgeError reports a hinge whose shared segment has no usable
// length, so the child face's placement is underdetermined. The breadth-
// first planner routes around such hinges; the ribbon search prunes them.
type DegenerateEdgeError struct {
	Edge   int
	FaceA  int
	FaceB  int
	Length float64
}

func (e *DegenerateEdgeError) Error() string {
	return fmt.Sprintf("degenerate hinge %d between faces %d and %d (length %g)", e.Edge, e.FaceA, e.FaceB, e.Length)
}

// FaceTooWideError reports a face whose smallest bounding height over all
// rotations still exceeds the tape width. No plan of any kind can place it,
// so both planners fail fast with this error instead of emitting an
// overflowing strip.
type FaceTooWideError struct {
	Face int
	Need float64
	Tape float64
}

func (e *FaceTooWideError) Error() string {
	return fmt.Sprintf("face %d needs %.2fmm of tape width, have %.2fmm", e.Face, e.Need, e.Tape)
}

// FailureReason classifies why a ribbon search came up empty.
type FailureReason string

const (
	// FailureDeadline means the wall-clock budget ran out first.
	FailureDeadline FailureReason = "deadline exceeded"
	// FailureExhausted means every candidate path was pruned or dead-ended.
	FailureExhausted FailureReason = "search space exhausted"
)

// SearchFailure is the value result of a ribbon search that found no
// serpentine path. It satisfies error so a caller that refuses to fall back
// can surface it directly, but returning it in [RibbonResult] keeps the
// fallback decision in the caller's hands.
type SearchFailure struct {
	Reason   FailureReason
	Expanded int
	Elapsed  time.Duration
}

func (f *SearchFailure) Error() string {
	return fmt.Sprintf("no serpentine ribbon found: %s after %d expansions in %s", f.Reason, f.Expanded, f.Elapsed.Round(time.Millisecond))
}
