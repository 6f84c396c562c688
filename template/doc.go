// Package template parses siege-engine templates — small ASCII drawings
// of walls, floors and ground posts — into typed, immutable cell grids.
//
// What:
//
//   - Parse turns template text into a rectangular Grid of Cell values.
//   - Each rune maps to exactly one Cell: '+' corner, '-' horizontal
//     wall, '|' vertical wall, '.' floor, 'o' ground anchor, ' ' empty.
//   - A single neighbor-classification pass resolves every '+' into a
//     true corner, a straight-run crossing, or a run terminal, so later
//     stages never re-inspect raw runes.
//   - Grid re-renders to ASCII with String, bit-exact with the input.
//
// Why:
//
//   - Procedural structures: towers, keeps, ramps and bridges described
//     in a handful of lines of text.
//   - A typed grid is the contract every downstream stage (topology,
//     resize, geometry) builds on.
//
// Complexity:
//
//   - Parse:  O(W×H) time, O(W×H) memory (single scan + one neighbor pass).
//   - String: O(W×H).
//
// Options:
//
//   - ParseOptions.Strict: reject ragged rows instead of padding them
//     with Empty cells on the right.
//
// Errors:
//
//   - ErrEmptyTemplate: input contains no non-blank lines.
//   - ErrNonRectangular: rows of differing lengths in Strict mode.
//   - ErrUnknownRune: a rune outside the template character set.
package template
