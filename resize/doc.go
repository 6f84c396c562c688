// Package resize rescales an extracted template to arbitrary target
// dimensions while preserving its topology: same anchors, same
// connectivity, same clockwise sequence of segment orientations.
//
// What:
//
//   - Anchors project onto each axis as sorted structural coordinates;
//     the runs between consecutive coordinates are the scalable segment
//     interiors, the coordinates themselves the fixed overhead.
//   - Each axis scales independently. Interior lengths are multiplied by
//     (target − overhead) / (original − overhead) and rounded with an
//     error-diffusion accumulator carried along the axis, so the resized
//     lengths sum exactly to the target minus overhead — no drift.
//   - Interiors that would vanish clamp to length 1, the deficit carried
//     to the neighboring run on the same axis, never dropped.
//   - The grid is re-laid by sampling the source band for every output
//     coordinate, then re-extracted and verified isomorphic to the
//     source template.
//
// Why:
//
//   - A wall template drawn once serves every size: a 9×5 keep scales to
//     80×24 with the same four corners, spur and ground posts.
//   - Independent per-segment rounding drifts; diffusion rounding is
//     what makes the dimension-exactness guarantee hold for any
//     feasible size.
//
// Complexity:
//
//   - Resize: O(W'×H' + W×H) time, O(W'×H') memory.
//
// Errors:
//
//   - ErrTooSmall: a target dimension is below the structure's minimum
//     feasible size along that axis.
//   - ErrDegenerateSegment: internal invariant violation — the resized
//     grid is not isomorphic to the source. Signals a bug, not bad
//     input.
package resize
