// Package geometry lowers a template grid to vector path primitives
// ready for a vector-graphics backend, and writes them as SVG.
//
// What:
//
//   - Emit traces the grid and produces one Path per disjoint outline:
//     a MoveTo at the first anchor followed by a LineTo per subsequent
//     anchor, clockwise, with closed polygons flagged Closed instead of
//     repeating their start point.
//   - Winding matches the topology package's anchor ordering, so every
//     emitted polygon has consistent orientation for downstream
//     fill/stroke operations.
//   - WriteSVG renders the paths as a standalone SVG document: closed
//     outlines stroked and filled, open spurs stroked only.
//
// Why:
//
//   - Renderers (tessellators, canvases, plotters) consume point lists,
//     not cell grids. The emitter is the boundary between the discrete
//     template world and continuous vector space.
//
// Complexity:
//
//   - Emit: O(W×H). WriteSVG: O(total primitives).
//
// Errors:
//
//   - ErrNoPaths: the grid contains nothing traceable.
package geometry
