// Package marker reads test-routine markers from source, not at run
// time: directive comments on function declarations are parsed with
// go/parser, so every query is decidable before anything executes.
//
// Directives attach to the declaration they document:
//
//	//affirm:skip flaky on CI
//	//affirm:xfail
//	//affirm:name Renders the empty diff
//	func TestEmptyDiff() error { ... }
//
// A marker kind may appear at most once per declaration; a duplicate is
// a configuration error surfaced when the table is loaded.
package marker
