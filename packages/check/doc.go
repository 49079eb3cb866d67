// Package check provides the named assertion predicates.
//
// Every predicate returns nil on success or a *Failure on a failed
// check. A *Failure carries the message lines and the call site; any
// other error returned from this package is a configuration error (a
// malformed schema, say) and must not be treated as a test failure.
//
// Supported checks:
//   - Boolean: True, False
//   - Equality: Equal, NotEqual (deep, with diff output; Strict opt-in)
//   - Nil-ness: Nil, NotNil
//   - Membership: In, NotIn
//   - Ordering: Greater, Less
//   - Size: Empty, NotEmpty
//   - Multisets: SameSet, NotSameSet
//   - Panics: Panics, PanicsAs, PanicsExactly, NotPanics
//   - JSON: JSONEqual, MatchesSchema
package check
