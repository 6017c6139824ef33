// Package parser implements a strict, one-pass recursive-descent JSON
// parser producing value.Value trees.
//
// The parser accepts exactly one JSON value per input: leading and trailing
// whitespace (space, tab, CR, LF) is skipped, and any other trailing content
// fails the parse. The grammar is standard JSON with no extensions — no
// comments, no trailing commas, no unquoted keys.
//
// Numeric literals are stored verbatim: the matched substring becomes the
// Number payload with no evaluation at parse time, so stringifying a parsed
// tree reproduces numbers exactly as written.
//
// Unicode escapes are decoded to code points and re-encoded as UTF-8.
// Surrogate pairs combine per UTF-16 rules; a lone or mismatched surrogate
// fails the parse with a specific diagnostic.
//
// Every failure carries the byte offset where it was detected:
//
//	v, err := parser.Parse(`{"a":}`)
//	var perr *parser.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Pos, perr.Message)
//	}
package parser
