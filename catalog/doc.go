// Package catalog manages named siege-engine templates: a built-in set
// embedded in the binary and user catalogs loaded from YAML files.
//
// What:
//
//   - Builtin returns the embedded shapes: tower, wall, ramp, bridge.
//   - Load / LoadFS read a YAML catalog mapping names to template text
//     and optional default target dimensions.
//   - Every entry is parsed on load, so a catalog either opens fully
//     valid or not at all.
//
// Why:
//
//   - Demos and editors need shapes by name, not by file path.
//   - Validating at load time keeps generation-time failures down to
//     sizing errors only.
//
// Errors:
//
//   - ErrUnknownTemplate: no entry with the requested name.
//   - ErrDuplicateTemplate: two entries share a name.
//   - ErrInvalidEntry: an entry is missing a name or its grid fails to
//     parse.
package catalog
