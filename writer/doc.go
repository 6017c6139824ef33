// Package writer serializes value.Value trees back to JSON text.
//
// Serialization is a pure recursive walk: no state beyond the recursion
// depth, which drives indentation in pretty mode. Numbers are emitted
// verbatim from their stored literal text, so a parse/stringify round-trip
// preserves numeric formatting exactly.
//
// Output layout is controlled with functional options:
//
//	text, err := writer.Stringify(v,
//	    writer.WithPretty(),
//	    writer.WithIndent(4),
//	)
//
// Compact mode (the default) emits no interior whitespace. Pretty mode
// breaks arrays and objects across lines with per-depth indentation and a
// space after each object key's colon. Empty arrays and objects render as
// [] and {} in both modes.
package writer
