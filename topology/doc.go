// Package topology extracts the structural model of a parsed template:
// ordered corner anchors, contiguous wall segments, and ground contact
// points, traced clockwise around the structure's outline.
//
// What:
//
//   - Trace walks wall cells from the top-left-most corner, hugging the
//     boundary clockwise, out and back along attached spurs, and returns
//     every connected outline it finds.
//   - Extract validates the primary outline (closed, non-degenerate) and
//     builds an immutable Template: the grid, anchors in traversal
//     order, and the maximal same-orientation segments between them.
//
// Why:
//
//   - Anchors and segments are plain records referencing grid
//     coordinates — trivially serializable and safe to share across
//     goroutines for concurrent batch generation.
//   - The clockwise anchor order is the canonical correspondence used
//     by the resizer and the geometry emitter.
//
// Complexity:
//
//   - Trace/Extract: O(W×H) time, O(W×H) memory (each directed wall
//     edge is traversed at most once).
//
// Errors:
//
//   - ErrNoStructure: no wall cells at all.
//   - ErrOpenOutline: the primary outline does not close back on its
//     starting corner through a continuous wall path.
//   - ErrDegenerate: fewer than 3 anchors, or fewer than 3 turns — not
//     a polygon.
package topology
