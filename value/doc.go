// Package value defines the JSON data model: a tagged union over the six
// JSON kinds (null, bool, number, string, array, object) plus the Number
// payload type that preserves numeric literals verbatim.
//
// # Value Trees
//
// A Value is created by the parser or by the NewX factory functions and owns
// its children exclusively: arrays hold ordered child values, objects hold
// ordered (key, value) members. Insertion order is preserved and duplicate
// object keys may coexist; lookup returns the first match. Construction is
// bottom-up, so trees are always acyclic.
//
// # Typed Access
//
// The active kind strictly determines which accessor succeeds. AsNumber,
// AsString, AsArray and AsObject return a sentinel error from the errs
// package when the kind differs; nothing coerces. BoolOr is the single
// graceful accessor: it takes an explicit fallback and never fails.
//
// # Thread Safety
//
// Values carry no internal synchronization. Independent trees may be used
// concurrently; a single tree must not be mutated from more than one
// goroutine at a time.
package value
