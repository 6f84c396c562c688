// Package siegegrid turns compact ASCII templates of siege-engine
// structures — walls, towers, ramps, bridges — into resizable,
// render-ready vector geometry.
//
// 🚀 What is siegegrid?
//
//	A deterministic, pure-Go generation pipeline:
//		• template/ — parse template text into a typed cell grid
//		• topology/ — trace the outline into anchors & segments
//		• resize/   — rescale to any feasible size, topology intact
//		• geometry/ — lower a grid to MoveTo/LineTo vector paths & SVG
//		• catalog/  — built-in shapes and YAML template catalogs
//
// ✨ Why choose siegegrid?
//
//   - Deterministic – the same template and target size always produce
//     the same structure, cell for cell
//   - Rock-solid guarantees – closed outlines stay closed, corner counts
//     never drift, resized grids hit the requested dimensions exactly
//   - Pure Go – no cgo, no hidden deps in the core packages
//   - Composable – every stage is a total function from an immutable
//     input to a new immutable output, safe for concurrent batches
//
// Quick ASCII example:
//
//	+-------+
//	|.......|
//	|.......+----+
//	|.......|
//	o---o---o
//
//	a keep with a side spur and three ground posts; resize it to any
//	feasible size and the spur, the posts and all four corners survive.
//
// The cmd/siegegrid CLI wraps the pipeline for ASCII and SVG output.
// Dive into README.md and the examples/ directory for full walkthroughs.
//
//	go get github.com/katalvlaran/siegegrid
package siegegrid
