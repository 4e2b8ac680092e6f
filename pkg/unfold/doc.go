// Package unfold flattens a die blank's faces into tape-width strips.
//
// # Overview
//
// Unfolding walks the face-adjacency graph and lays faces into a shared 2D
// plane one hinge at a time: a child face is rotated so its copy of the
// shared segment lands exactly on the parent's placed copy, then mirrored to
// the far side of that segment. Because every face already carries flat
// local coordinates, placement is a rigid motion and never distorts shape.
//
// Two planners produce strips:
//
//   - [BFSPlanner] (breadth-first): always succeeds on a valid blank. It
//     grows a strip outward from a high-degree seed face, deferring any face
//     that would overlap or push the strip past the tape width, and seeds
//     new strips until every face is placed. Robust, but cutting the result
//     means several pieces of tape.
//   - [RibbonSearch] (serpentine): beam search for a Hamiltonian path
//     through the adjacency graph whose unfolding stays within the tape
//     width, so the whole blank wraps as one continuous ribbon. The search
//     is deadline-bounded and reports failure as a value, never a panic;
//     callers decide whether to fall back to strips.
//
// # Strips
//
// A finished [Strip] is in canonical pose: rotated to its minimum bounding
// height (1° resolution), translated into the positive quadrant, with
// Width and Height recorded. The height of every strip a planner returns is
// at most the tape width; inputs that cannot satisfy that (a face whose
// narrow dimension exceeds the tape) fail early with [*FaceTooWideError].
//
// # Overlap policy
//
// [OverlapChecker] rejects any placement whose interior intersects an
// already-placed face. Touching along the shared hinge segment is not an
// overlap; the checker uses a small metric tolerance so exact-touch cases
// stay stable across platforms.
package unfold
